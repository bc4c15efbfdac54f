package timezone

import "time"

// DefaultTimezone is where the shop operates; every timestamp the system
// stamps or parses is interpreted here unless the request says otherwise.
const DefaultTimezone = "America/Sao_Paulo"

var defaultLoc = mustLoad(DefaultTimezone)

func mustLoad(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SetDefault repoints the package at the configured timezone. Called once
// at startup, before any request is served; unknown names keep the
// current default so bookings and queries never disagree on midnight.
func SetDefault(tz string) {
	if tz == "" {
		return
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		defaultLoc = loc
	}
}

// Location resolves tz, falling back to the shop timezone on empty or
// unknown names.
func Location(tz string) *time.Location {
	if tz == "" {
		return defaultLoc
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return defaultLoc
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(defaultLoc)
}
