// Package cli wires the cobra command tree around the calendar core.
// It owns argument parsing, config/flag merging and process output; the
// conversion arithmetic lives in internal/calendar.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Armin-kho/scal/internal/calendar"
	"github.com/Armin-kho/scal/internal/config"
	"github.com/Armin-kho/scal/internal/render"
	"github.com/Armin-kho/scal/internal/utils"
)

var (
	gregorianArg  string
	shamsiArg     string
	verbose       bool
	noColor       bool
	persianDigits bool

	logger *zap.Logger
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scal",
	Short: "Convert between the Gregorian and Shamsi calendars",
	Long: `scal converts dates between the Gregorian and Solar Hijri (Shamsi)
calendars and renders month grids in the terminal.

Run without arguments to print today's date in both systems.`,
	Example: `  scal
  scal -g 2023-07-13
  scal -s 1402/04/22
  scal cal 1403 1`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load("")
		if err != nil {
			return err
		}
		// Flags win over config; an unset flag falls back to it.
		noColor = noColor || cfg.NoColor
		persianDigits = persianDigits || cfg.PersianDigits
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runRoot,
}

// Execute runs the command tree; the caller maps the error to the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&gregorianArg, "gregorian", "g", "",
		"convert a Gregorian date (YYYY-MM-DD) to Shamsi")
	rootCmd.Flags().StringVarP(&shamsiArg, "shamsi", "s", "",
		"convert a Shamsi date (YYYY-MM-DD) to Gregorian")
	rootCmd.MarkFlagsMutuallyExclusive("gregorian", "shamsi")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI styling")
	rootCmd.PersistentFlags().BoolVar(&persianDigits, "persian-digits", false, "print digits as ۰-۹")

	rootCmd.AddCommand(calCmd)
}

func opts() render.Options {
	return render.Options{NoColor: noColor, PersianDigits: persianDigits}
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case gregorianArg != "":
		return runConvert(cmd, gregorianArg, calendar.Gregorian)
	case shamsiArg != "":
		return runConvert(cmd, shamsiArg, calendar.Shamsi)
	}

	today := utils.Today()
	s, err := calendar.ToShamsi(today)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Today(today, s, opts()))
	return nil
}

func runConvert(cmd *cobra.Command, arg string, sys calendar.System) error {
	d, err := parseDate(arg, sys)
	if err != nil {
		return err
	}
	out, err := calendar.Convert(d)
	if err != nil {
		return err
	}
	logger.Debug("converted date",
		zap.Stringer("system", sys),
		zap.Stringer("from", d),
		zap.Stringer("to", out))
	fmt.Fprintln(cmd.OutOrStdout(), render.Conversion(d, out, opts()))
	return nil
}
