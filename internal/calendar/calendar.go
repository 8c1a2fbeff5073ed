// Package calendar implements conversion between the Gregorian and
// Solar Hijri (Shamsi/Jalali) calendars.
//
// Everything in here is pure integer arithmetic over a shared absolute
// day count; there is no clock, no time zone and no mutable state, so
// the package is safe to use from any number of goroutines.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate marks malformed input: an unknown calendar system,
	// a non-positive year, or a month/day outside its valid range.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange marks dates outside the supported overlap window of
	// the two calendars (Gregorian 622-9999, Shamsi 1-9378).
	ErrOutOfRange = errors.New("date outside supported range")
)

// System identifies which calendar a Date belongs to.
type System int

const (
	Gregorian System = iota
	Shamsi
)

func (s System) String() string {
	switch s {
	case Gregorian:
		return "Gregorian"
	case Shamsi:
		return "Shamsi"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// Supported year windows. The two calendars only overlap from the Hijri
// epoch (622 AD) onward; the upper bounds line up so that every valid
// date in one system converts to a valid date in the other or fails
// with ErrOutOfRange, never with a silently wrong result.
const (
	MinGregorianYear = 622
	MaxGregorianYear = 9999
	MinShamsiYear    = 1
	MaxShamsiYear    = 9378
)

// Date is a calendar date tagged with its system. It is a value type:
// conversions return a new Date and never mutate their input.
type Date struct {
	Year   int
	Month  int
	Day    int
	System System
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Validate reports whether the date satisfies its system's invariants:
// a known system, a year inside the supported window, month 1-12 and a
// day that exists in that month under the system's leap rule.
func (d Date) Validate() error {
	if d.System != Gregorian && d.System != Shamsi {
		return fmt.Errorf("%w: unknown calendar system %d", ErrInvalidDate, int(d.System))
	}
	if d.Year <= 0 {
		return errNonPositiveYear(d.Year)
	}
	if err := validateYear(d.System, d.Year); err != nil {
		return err
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}
	if max := daysInMonth(d.System, d.Year, d.Month); d.Day < 1 || d.Day > max {
		return fmt.Errorf("%w: day %d out of range for %s %d (%d days)",
			ErrInvalidDate, d.Day, MonthName(d.System, d.Month), d.Year, max)
	}
	return nil
}

// Weekday returns the day of the week. The receiver is assumed valid;
// call Validate first for untrusted input.
func (d Date) Weekday() time.Weekday {
	abs := absDay(d)
	if d.System == Shamsi {
		abs += epochOffset
	}
	// absDay(Gregorian 2024-03-24) % 7 == 0, a Sunday.
	return time.Weekday(abs % 7)
}

func errNonPositiveYear(year int) error {
	return fmt.Errorf("%w: non-positive year %d", ErrInvalidDate, year)
}

func validateYear(sys System, year int) error {
	switch sys {
	case Gregorian:
		if year < MinGregorianYear || year > MaxGregorianYear {
			return fmt.Errorf("%w: Gregorian year %d not in [%d, %d]",
				ErrOutOfRange, year, MinGregorianYear, MaxGregorianYear)
		}
	case Shamsi:
		if year < MinShamsiYear || year > MaxShamsiYear {
			return fmt.Errorf("%w: Shamsi year %d not in [%d, %d]",
				ErrOutOfRange, year, MinShamsiYear, MaxShamsiYear)
		}
	}
	return nil
}

// DaysInMonth returns the number of days in the given month, consulting
// the leap rule for Gregorian February and the Shamsi month 12 (Esfand).
func DaysInMonth(sys System, year, month int) (int, error) {
	if year <= 0 {
		return 0, errNonPositiveYear(year)
	}
	if err := validateYear(sys, year); err != nil {
		return 0, err
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	return daysInMonth(sys, year, month), nil
}

var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(sys System, year, month int) int {
	if sys == Shamsi {
		switch {
		case month <= 6:
			return 31
		case month <= 11:
			return 30
		default:
			if shamsiLeap(year) {
				return 30
			}
			return 29
		}
	}
	if month == 2 && gregorianLeap(year) {
		return 29
	}
	return gregorianMonthDays[month-1]
}
