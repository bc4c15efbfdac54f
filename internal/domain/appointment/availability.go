package appointment

import "github.com/barberdesk/barberdesk-api/internal/models"

// CheckAvailability scans the professional's existing bookings for a
// window overlapping the candidate's. The candidate's own row is skipped
// on updates, and cancelled/no-show rows do not block the agenda. The
// first overlap found wins; the scan is rerun in full on every attempt.
func CheckAvailability(
	candidate *models.Appointment,
	existing []models.Appointment,
) error {

	start, end, err := Window(candidate)
	if err != nil {
		return err
	}

	for i := range existing {
		other := &existing[i]

		if candidate.ID != 0 && candidate.ID == other.ID {
			continue
		}

		if !ParseStatus(other.Status).BlocksAgenda() {
			continue
		}

		otherStart, otherEnd, err := Window(other)
		if err != nil {
			continue
		}

		// Half-open intervals: touching endpoints do not conflict.
		if start.Before(otherEnd) && end.After(otherStart) {
			return ConflictError{
				Professional: other.Professional.Name,
				Start:        otherStart,
				End:          otherEnd,
			}
		}
	}

	return nil
}
