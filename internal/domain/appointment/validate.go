package appointment

import (
	"time"

	"github.com/barberdesk/barberdesk-api/internal/models"
)

const (
	// Expediente comercial: 8h às 20h, inclusive nas pontas.
	businessOpenMin  = 8 * 60
	businessCloseMin = 20 * 60

	// Duração máxima de um agendamento, em minutos.
	maxDurationMin = 240
)

// Validate runs the booking pre-conditions in order, stopping at the
// first failure. It is a pure check: no side effects on the candidate.
func Validate(ap *models.Appointment) error {
	if ap.ClientID == 0 {
		return ErrMissingClient
	}

	if ap.ProfessionalID == 0 {
		return ErrMissingProfessional
	}

	if ap.Date.IsZero() {
		return ErrMissingDate
	}

	if ap.Time == "" {
		return ErrMissingTime
	}

	if len(ap.Services) == 0 {
		return ErrNoServicesSelected
	}

	t, err := time.Parse("15:04", ap.Time)
	if err != nil {
		return ErrInvalidTime
	}

	// Kept as the stored-data rule has always been: the candidate is
	// compared against the start of its own day, not against the clock,
	// so rebooking past days for record-keeping stays possible.
	start := time.Date(
		ap.Date.Year(), ap.Date.Month(), ap.Date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ap.Date.Location(),
	)
	dayStart := time.Date(
		ap.Date.Year(), ap.Date.Month(), ap.Date.Day(),
		0, 0, 0, 0,
		ap.Date.Location(),
	)
	if start.Before(dayStart) {
		return ErrDateInPast
	}

	minuteOfDay := t.Hour()*60 + t.Minute()
	if minuteOfDay < businessOpenMin || minuteOfDay > businessCloseMin {
		return ErrOutsideBusinessHours
	}

	if TotalDuration(ap) > maxDurationMin {
		return ErrDurationExceedsLimit
	}

	return nil
}
