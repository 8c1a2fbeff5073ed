package cli

import (
	"errors"
	"testing"

	"github.com/Armin-kho/scal/internal/calendar"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		sys  calendar.System
		want calendar.Date
	}{
		{"2023-07-13", calendar.Gregorian, calendar.Date{Year: 2023, Month: 7, Day: 13, System: calendar.Gregorian}},
		{"1402/04/22", calendar.Shamsi, calendar.Date{Year: 1402, Month: 4, Day: 22, System: calendar.Shamsi}},
		{"1402.4.22", calendar.Shamsi, calendar.Date{Year: 1402, Month: 4, Day: 22, System: calendar.Shamsi}},
		{" 2024-03-20 ", calendar.Gregorian, calendar.Date{Year: 2024, Month: 3, Day: 20, System: calendar.Gregorian}},
	}
	for _, c := range cases {
		got, err := parseDate(c.in, c.sys)
		if err != nil {
			t.Fatalf("parseDate(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parseDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateErrors(t *testing.T) {
	cases := []string{
		"",
		"2023-07",
		"2023-07-13-1",
		"not-a-date",
		"2023-7x-13",
		"2023-13-01", // month 13
		"2023-01-32", // day 32
		"1402-12-30", // Esfand 30 in a non-leap year
	}
	for _, in := range cases {
		if _, err := parseDate(in, calendar.Shamsi); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Fatalf("parseDate(%q) err = %v, want ErrInvalidDate", in, err)
		}
	}

	if _, err := parseDate("500-01-01", calendar.Gregorian); !errors.Is(err, calendar.ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange for Gregorian 500, got %v", err)
	}
}
