package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Armin-kho/scal/internal/calendar"
)

// The original tool accepted -, / and . as separators; keep all three.
var dateSeps = strings.NewReplacer("/", "-", ".", "-")

// parseDate parses a YYYY-MM-DD string into a validated Date tagged
// with the given system.
func parseDate(s string, sys calendar.System) (calendar.Date, error) {
	parts := strings.Split(dateSeps.Replace(strings.TrimSpace(s)), "-")
	if len(parts) != 3 {
		return calendar.Date{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", calendar.ErrInvalidDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return calendar.Date{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", calendar.ErrInvalidDate, s)
		}
		nums[i] = n
	}
	d := calendar.Date{Year: nums[0], Month: nums[1], Day: nums[2], System: sys}
	if err := d.Validate(); err != nil {
		return calendar.Date{}, err
	}
	return d, nil
}
