package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/barberdesk/barberdesk-api/internal/models"
)

func booking(id uint, timeStr string, durationMin int, status Status) models.Appointment {
	return models.Appointment{
		ID:             id,
		ProfessionalID: 1,
		Professional:   models.Professional{ID: 1, Name: "Carlos"},
		Date:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:           timeStr,
		Status:         string(status),
		Services: []models.Service{
			{ID: 1, Price: 35, DurationMin: durationMin},
		},
	}
}

func TestCheckAvailability_Overlap(t *testing.T) {
	existing := []models.Appointment{
		booking(1, "09:00", 30, StatusScheduled),
	}
	candidate := booking(0, "09:15", 30, StatusScheduled)

	err := CheckAvailability(&candidate, existing)

	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Professional != "Carlos" {
		t.Fatalf("expected professional Carlos, got %q", conflict.Professional)
	}
	if conflict.Start.Format("15:04") != "09:00" || conflict.End.Format("15:04") != "09:30" {
		t.Fatalf("unexpected conflict window: %v - %v", conflict.Start, conflict.End)
	}
}

func TestCheckAvailability_TouchingWindowsDoNotConflict(t *testing.T) {
	existing := []models.Appointment{
		booking(1, "09:00", 30, StatusScheduled),
	}
	candidate := booking(0, "09:30", 30, StatusScheduled)

	if err := CheckAvailability(&candidate, existing); err != nil {
		t.Fatalf("expected no conflict for touching windows, got %v", err)
	}
}

func TestCheckAvailability_CancelledSlotIsFree(t *testing.T) {
	existing := []models.Appointment{
		booking(1, "09:00", 30, StatusCancelled),
	}
	candidate := booking(0, "09:15", 30, StatusScheduled)

	if err := CheckAvailability(&candidate, existing); err != nil {
		t.Fatalf("cancelled booking should not block the slot, got %v", err)
	}
}

func TestCheckAvailability_NoShowSlotIsFree(t *testing.T) {
	existing := []models.Appointment{
		booking(1, "09:00", 30, StatusNoShow),
	}
	candidate := booking(0, "09:00", 30, StatusScheduled)

	if err := CheckAvailability(&candidate, existing); err != nil {
		t.Fatalf("no-show booking should not block the slot, got %v", err)
	}
}

func TestCheckAvailability_ConfirmedSlotBlocks(t *testing.T) {
	existing := []models.Appointment{
		booking(1, "09:00", 30, StatusConfirmed),
	}
	candidate := booking(0, "09:15", 30, StatusScheduled)

	var conflict ConflictError
	if !errors.As(CheckAvailability(&candidate, existing), &conflict) {
		t.Fatalf("confirmed booking should block the slot")
	}
}

func TestCheckAvailability_UpdateSkipsOwnRow(t *testing.T) {
	existing := []models.Appointment{
		booking(7, "09:00", 30, StatusScheduled),
	}

	// same row being rescheduled onto itself
	candidate := booking(7, "09:15", 30, StatusScheduled)

	if err := CheckAvailability(&candidate, existing); err != nil {
		t.Fatalf("update must skip its own row, got %v", err)
	}
}

func TestCheckAvailability_FirstConflictWins(t *testing.T) {
	existing := []models.Appointment{
		booking(1, "09:00", 60, StatusScheduled),
		booking(2, "10:00", 60, StatusScheduled),
	}
	candidate := booking(0, "09:30", 120, StatusScheduled)

	var conflict ConflictError
	if !errors.As(CheckAvailability(&candidate, existing), &conflict) {
		t.Fatalf("expected conflict")
	}
	if conflict.Start.Format("15:04") != "09:00" {
		t.Fatalf("expected first existing booking reported, got start %v", conflict.Start)
	}
}
