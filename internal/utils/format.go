package utils

import "strings"

var persianDigits = map[rune]rune{
	'0': '۰',
	'1': '۱',
	'2': '۲',
	'3': '۳',
	'4': '۴',
	'5': '۵',
	'6': '۶',
	'7': '۷',
	'8': '۸',
	'9': '۹',
}

// ToPersianDigits replaces ASCII digits with Persian (Extended Arabic-Indic)
// digits, leaving everything else untouched.
func ToPersianDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if pr, ok := persianDigits[r]; ok {
			b.WriteRune(pr)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
