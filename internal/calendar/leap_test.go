package calendar

import (
	"errors"
	"testing"
)

func TestGregorianLeap(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2100, false},
		{2400, true},
	}
	for _, c := range cases {
		got, err := GregorianLeap(c.year)
		if err != nil {
			t.Fatalf("GregorianLeap(%d): %v", c.year, err)
		}
		if got != c.want {
			t.Fatalf("GregorianLeap(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestShamsiLeap(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{1403, true},  // 1403 % 33 == 17
		{1402, false}, // 16
		{1399, true},  // 13
		{1408, true},  // 22
		{1404, false}, // 18
		{1375, true},  // 22
	}
	for _, c := range cases {
		got, err := ShamsiLeap(c.year)
		if err != nil {
			t.Fatalf("ShamsiLeap(%d): %v", c.year, err)
		}
		if got != c.want {
			t.Fatalf("ShamsiLeap(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestShamsiLeapCycle(t *testing.T) {
	// Exactly eight leap years per 33-year cycle.
	count := 0
	for r := 0; r < 33; r++ {
		if shamsiLeapRemainders[r] {
			count++
		}
	}
	if count != 8 {
		t.Fatalf("leap-remainder set has %d members, want 8", count)
	}
}

func TestLeapYearErrors(t *testing.T) {
	if _, err := ShamsiLeap(0); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("ShamsiLeap(0) err = %v, want ErrInvalidDate", err)
	}
	if _, err := ShamsiLeap(-10); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("ShamsiLeap(-10) err = %v, want ErrInvalidDate", err)
	}
	if _, err := ShamsiLeap(MaxShamsiYear + 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ShamsiLeap(max+1) err = %v, want ErrOutOfRange", err)
	}
	if _, err := GregorianLeap(500); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("GregorianLeap(500) err = %v, want ErrOutOfRange", err)
	}
	if _, err := GregorianLeap(10000); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("GregorianLeap(10000) err = %v, want ErrOutOfRange", err)
	}
}
