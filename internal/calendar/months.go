package calendar

// Month names are fixed English/transliterated strings; this tool does
// not localize them.
var shamsiMonthNames = [12]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

var gregorianMonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the month's name, or "" for a month outside 1-12.
func MonthName(sys System, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	if sys == Shamsi {
		return shamsiMonthNames[month-1]
	}
	return gregorianMonthNames[month-1]
}
