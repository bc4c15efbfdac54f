package appointment

import (
	"testing"
	"time"

	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/models"
)

func TestDerivedTotals(t *testing.T) {
	ap := &models.Appointment{
		Services: []models.Service{
			{Price: 35, DurationMin: 30},
			{Price: 25, DurationMin: 20},
		},
	}

	if got := TotalValue(ap); got != 60 {
		t.Fatalf("expected total value 60, got %v", got)
	}
	if got := TotalDuration(ap); got != 50 {
		t.Fatalf("expected total duration 50, got %v", got)
	}
}

func TestWindow(t *testing.T) {
	ap := &models.Appointment{
		Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time: "09:00",
		Services: []models.Service{
			{Price: 35, DurationMin: 30},
			{Price: 25, DurationMin: 20},
		},
	}

	start, end, err := Window(ap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantStart.Add(50 * time.Minute)) {
		t.Fatalf("expected end = start + 50min, got %v", end)
	}
}

func TestWindow_InvalidTime(t *testing.T) {
	ap := &models.Appointment{Time: "late"}

	if _, _, err := Window(ap); !httperr.IsBusiness(err, "invalid_time") {
		t.Fatalf("expected invalid_time, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Cancel(ap, "client request", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(StatusCancelled) {
		t.Fatalf("expected cancelled, got %q", ap.Status)
	}
	if ap.Notes != "Cancelled: client request" {
		t.Fatalf("unexpected notes: %q", ap.Notes)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("expected cancelled_at %v, got %v", now, ap.CancelledAt)
	}
}

func TestCancel_DefaultReason(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	if err := Cancel(ap, "", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Notes != "Cancelled: no reason given" {
		t.Fatalf("unexpected notes: %q", ap.Notes)
	}
}

func TestCancel_TerminalStateRejected(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusRealized, StatusNoShow} {
		ap := &models.Appointment{Status: string(status)}

		err := Cancel(ap, "x", time.Now())
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("status %s: expected invalid_state, got %v", status, err)
		}
	}
}

func TestConfirm(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Confirm(ap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("expected confirmed, got %q", ap.Status)
	}

	// confirming twice is not allowed
	if err := Confirm(ap); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestFinalize(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{
		Status: string(StatusConfirmed),
		Notes:  "first visit",
	}

	if err := Finalize(ap, "trimmed beard too", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(StatusRealized) {
		t.Fatalf("expected realized, got %q", ap.Status)
	}
	if ap.Notes != "first visit\nFinalized: trimmed beard too" {
		t.Fatalf("unexpected notes: %q", ap.Notes)
	}
	if ap.RealizedAt == nil {
		t.Fatalf("expected realized_at to be set")
	}
}

func TestFinalize_EmptyNotesLeaveNotesAlone(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled), Notes: "keep"}

	if err := Finalize(ap, "", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Notes != "keep" {
		t.Fatalf("unexpected notes: %q", ap.Notes)
	}
}

func TestMarkNoShow(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	if err := MarkNoShow(ap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusNoShow) {
		t.Fatalf("expected no_show, got %q", ap.Status)
	}

	if err := MarkNoShow(ap); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
