package utils

import "testing"

func TestToPersianDigits(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1402-04-22", "۱۴۰۲-۰۴-۲۲"},
		{"no digits", "no digits"},
		{"", ""},
		{"Tir 22", "Tir ۲۲"},
	}
	for _, c := range cases {
		if got := ToPersianDigits(c.in); got != c.want {
			t.Fatalf("ToPersianDigits(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
