package handlers

import (
	"time"

	"github.com/barberdesk/barberdesk-api/internal/timezone"
)

// parseDate reads a "2006-01-02" query value in the shop's timezone.
func parseDate(tz, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
