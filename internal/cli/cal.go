package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Armin-kho/scal/internal/calendar"
	"github.com/Armin-kho/scal/internal/render"
	"github.com/Armin-kho/scal/internal/utils"
)

var calGregorian bool

var calCmd = &cobra.Command{
	Use:   "cal [year [month]]",
	Short: "Show a Shamsi or Gregorian month grid",
	Long: `Renders a cal-style month grid, Saturday-first for Shamsi months.

With no arguments the current month is shown with today highlighted;
with a year only, all twelve months of that year.`,
	Example: `  scal cal
  scal cal 1403
  scal cal 1403 1
  scal cal -g 2024 3`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCal,
}

func init() {
	calCmd.Flags().BoolVarP(&calGregorian, "gregorian", "g", false,
		"show Gregorian months instead of Shamsi")
}

func runCal(cmd *cobra.Command, args []string) error {
	sys := calendar.Shamsi
	if calGregorian || (!cmd.Flags().Changed("gregorian") && cfg.DefaultCalendar == "gregorian") {
		sys = calendar.Gregorian
	}

	cur := utils.Today()
	if sys == calendar.Shamsi {
		var err error
		cur, err = calendar.ToShamsi(cur)
		if err != nil {
			return err
		}
	}
	logger.Debug("rendering calendar", zap.Stringer("system", sys), zap.Stringer("today", cur))

	year, month := cur.Year, cur.Month
	highlight := cur.Day

	switch len(args) {
	case 1:
		y, err := parseNumber(args[0], "year")
		if err != nil {
			return err
		}
		hm, hd := 0, 0
		if y == cur.Year {
			hm, hd = cur.Month, cur.Day
		}
		out, err := render.YearGrid(sys, y, hm, hd, opts())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	case 2:
		var err error
		if year, err = parseNumber(args[0], "year"); err != nil {
			return err
		}
		if month, err = parseNumber(args[1], "month"); err != nil {
			return err
		}
		highlight = 0
		if year == cur.Year && month == cur.Month {
			highlight = cur.Day
		}
	}

	out, err := render.MonthGrid(sys, year, month, highlight, opts())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func parseNumber(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", calendar.ErrInvalidDate, what, s)
	}
	return n, nil
}
