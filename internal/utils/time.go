package utils

import (
	"time"

	_ "time/tzdata"

	"github.com/go-universal/jalaali"

	"github.com/Armin-kho/scal/internal/calendar"
)

// TehranLoc returns the Tehran time zone location.
// Using the jalaali helper keeps behavior consistent even on minimal systems.
func TehranLoc() *time.Location {
	return jalaali.TehranTz()
}

// Today returns the current Gregorian calendar date on the Tehran wall
// clock. The Shamsi day rolls over at Tehran midnight, so this is the
// clock that makes "today" agree with the Iranian calendar.
func Today() calendar.Date {
	y, m, d := time.Now().In(TehranLoc()).Date()
	return calendar.Date{Year: y, Month: int(m), Day: d, System: calendar.Gregorian}
}
