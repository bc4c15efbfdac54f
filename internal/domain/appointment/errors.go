package appointment

import (
	"fmt"
	"time"

	"github.com/barberdesk/barberdesk-api/internal/httperr"
)

// Validation failures, in the order Validate checks them.
var (
	ErrMissingClient        = httperr.ErrBusiness("missing_client")
	ErrMissingProfessional  = httperr.ErrBusiness("missing_professional")
	ErrMissingDate          = httperr.ErrBusiness("missing_date")
	ErrMissingTime          = httperr.ErrBusiness("missing_time")
	ErrNoServicesSelected   = httperr.ErrBusiness("no_services_selected")
	ErrInvalidTime          = httperr.ErrBusiness("invalid_time")
	ErrDateInPast           = httperr.ErrBusiness("date_in_past")
	ErrOutsideBusinessHours = httperr.ErrBusiness("outside_business_hours")
	ErrDurationExceedsLimit = httperr.ErrBusiness("duration_exceeds_limit")

	ErrMissingIdentity = httperr.ErrBusiness("missing_identity")
	ErrNotFound        = httperr.ErrBusiness("appointment_not_found")
)

// ConflictError reports a scheduling overlap with an existing booking.
// It carries what the front end needs for messaging: whose agenda and
// which window is already taken.
type ConflictError struct {
	Professional string
	Start        time.Time
	End          time.Time
}

func (e ConflictError) Error() string {
	return fmt.Sprintf(
		"scheduling conflict with %s from %s to %s",
		e.Professional,
		e.Start.Format("15:04"),
		e.End.Format("15:04"),
	)
}
