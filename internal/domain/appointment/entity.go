package appointment

import (
	"time"

	"github.com/barberdesk/barberdesk-api/internal/models"
)

// ===============================
// Derived values
// ===============================

// TotalValue soma os preços dos serviços selecionados
func TotalValue(ap *models.Appointment) float64 {
	var total float64
	for _, s := range ap.Services {
		total += s.Price
	}
	return total
}

// TotalDuration soma as durações dos serviços, em minutos
func TotalDuration(ap *models.Appointment) int {
	var total int
	for _, s := range ap.Services {
		total += s.DurationMin
	}
	return total
}

// Window computes the half-open interval [start, start+duration) the
// appointment occupies on its professional's agenda.
func Window(ap *models.Appointment) (time.Time, time.Time, error) {
	t, err := time.Parse("15:04", ap.Time)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTime
	}

	start := time.Date(
		ap.Date.Year(), ap.Date.Month(), ap.Date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ap.Date.Location(),
	)
	end := start.Add(time.Duration(TotalDuration(ap)) * time.Minute)
	return start, end, nil
}

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(ParseStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanCancel(ParseStatus(ap.Status)); err != nil {
		return err
	}

	if reason == "" {
		reason = "no reason given"
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	appendNote(ap, "Cancelled: "+reason)
	return nil
}

func Finalize(ap *models.Appointment, notes string, now time.Time) error {
	if err := CanFinalize(ParseStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRealized)
	ap.RealizedAt = &now
	if notes != "" {
		appendNote(ap, "Finalized: "+notes)
	}
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanMarkNoShow(ParseStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

func appendNote(ap *models.Appointment, note string) {
	if ap.Notes != "" {
		ap.Notes += "\n"
	}
	ap.Notes += note
}
