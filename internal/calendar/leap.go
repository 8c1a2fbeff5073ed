package calendar

// shamsiLeapRemainders is the set of year-mod-33 values that are leap
// under the 33-year-cycle approximation. This is the conventional
// arithmetic rule; exact astronomical determination needs a solar
// transit calculation and diverges from it roughly beyond 2100 AD.
var shamsiLeapRemainders = map[int]bool{
	1: true, 5: true, 9: true, 13: true,
	17: true, 22: true, 26: true, 30: true,
}

func gregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func shamsiLeap(year int) bool {
	return shamsiLeapRemainders[year%33]
}

// GregorianLeap reports whether a Gregorian year inside the supported
// window is a leap year.
func GregorianLeap(year int) (bool, error) {
	if year <= 0 {
		return false, errNonPositiveYear(year)
	}
	if err := validateYear(Gregorian, year); err != nil {
		return false, err
	}
	return gregorianLeap(year), nil
}

// ShamsiLeap reports whether a Shamsi year inside the supported window
// is a leap year, i.e. whether its Esfand has 30 days.
func ShamsiLeap(year int) (bool, error) {
	if year <= 0 {
		return false, errNonPositiveYear(year)
	}
	if err := validateYear(Shamsi, year); err != nil {
		return false, err
	}
	return shamsiLeap(year), nil
}
