package utils

import (
	"fmt"
	"time"
)

// ReferenceZone builds the fixed timezone the daily quota window is computed
// in. The offset is hours east of UTC and applies to every user regardless of
// locale.
func ReferenceZone(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600)
}

// DayWindowStart returns the start of the calendar day containing t in the
// given zone. Quota counts cover [DayWindowStart(t), next midnight).
func DayWindowStart(t time.Time, zone *time.Location) time.Time {
	local := t.In(zone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)
}
