package calendar

import "fmt"

// epochOffset is the day-count difference between the two calendars'
// epochs: for any physical day, gregorian absolute day number minus
// shamsi absolute day number. Anchored at Gregorian 2024-03-20 ==
// Shamsi 1403-01-01 (Nowruz).
const epochOffset = 226894

// ToShamsi converts a Gregorian date to its Shamsi equivalent.
func ToShamsi(d Date) (Date, error) {
	if d.System != Gregorian {
		return Date{}, fmt.Errorf("%w: ToShamsi needs a Gregorian date, got %s", ErrInvalidDate, d.System)
	}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	abs := absDay(d) - epochOffset
	if abs < 1 {
		// Gregorian days in early 622, before 1 Farvardin 1.
		return Date{}, fmt.Errorf("%w: %s predates the Shamsi epoch", ErrOutOfRange, d)
	}
	return fromAbs(Shamsi, abs), nil
}

// ToGregorian converts a Shamsi date to its Gregorian equivalent.
func ToGregorian(d Date) (Date, error) {
	if d.System != Shamsi {
		return Date{}, fmt.Errorf("%w: ToGregorian needs a Shamsi date, got %s", ErrInvalidDate, d.System)
	}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	out := fromAbs(Gregorian, absDay(d)+epochOffset)
	if out.Year > MaxGregorianYear {
		// The tail of Shamsi 9378 spills past Gregorian 9999.
		return Date{}, fmt.Errorf("%w: %s maps past Gregorian year %d", ErrOutOfRange, d, MaxGregorianYear)
	}
	return out, nil
}

// Convert maps a valid date into the other calendar system.
func Convert(d Date) (Date, error) {
	if d.System == Shamsi {
		return ToGregorian(d)
	}
	return ToShamsi(d)
}

// yearStart returns the absolute day number of the first day of the
// given year, counting day 1 as 1 Farvardin 1 (Shamsi) or January 1 of
// year 1 (Gregorian, proleptic).
func yearStart(sys System, year int) int {
	y := year - 1
	if sys == Gregorian {
		return 365*y + y/4 - y/100 + y/400 + 1
	}
	// Each full 33-year cycle holds exactly 8 leap years; the partial
	// cycle is counted against the leap-remainder set.
	leaps := 8 * (y / 33)
	for r := 1; r <= y%33; r++ {
		if shamsiLeapRemainders[r] {
			leaps++
		}
	}
	return 365*y + leaps + 1
}

// absDay returns the date's absolute day number within its own system.
// The date is assumed valid.
func absDay(d Date) int {
	doy := d.Day
	for m := 1; m < d.Month; m++ {
		doy += daysInMonth(d.System, d.Year, m)
	}
	return yearStart(d.System, d.Year) + doy - 1
}

// fromAbs decomposes an absolute day number into a date of the target
// system by peeling off whole years, then whole months.
func fromAbs(sys System, abs int) Date {
	// Years are at most 366 days, so this estimate never overshoots.
	year := (abs-1)/366 + 1
	for yearStart(sys, year+1) <= abs {
		year++
	}
	doy := abs - yearStart(sys, year) + 1
	month := 1
	for n := daysInMonth(sys, year, month); doy > n; n = daysInMonth(sys, year, month) {
		doy -= n
		month++
	}
	return Date{Year: year, Month: month, Day: doy, System: sys}
}
