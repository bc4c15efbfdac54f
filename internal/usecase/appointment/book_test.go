package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barberdesk/barberdesk-api/internal/audit"
	domain "github.com/barberdesk/barberdesk-api/internal/domain/appointment"
	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	appointments map[uint]*models.Appointment
	services     map[uint]models.Service
	nextID       uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uint]*models.Appointment),
		services:     make(map[uint]models.Service),
	}
}

func (r *fakeRepo) seedService(id uint, name string, price float64, durationMin int) {
	r.services[id] = models.Service{
		ID:          id,
		Name:        name,
		Price:       price,
		DurationMin: durationMin,
	}
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == 0 {
		r.nextID++
		ap.ID = r.nextID
	}
	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return fmt.Errorf("appointment %d not stored", ap.ID)
	}
	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *ap
	return &copied, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForProfessional(_ context.Context, professionalID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ProfessionalID == professionalID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, day time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		y1, m1, d1 := ap.Date.Date()
		y2, m2, d2 := day.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if !ap.Date.Before(start) && !ap.Date.After(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsByStatus(_ context.Context, status domain.Status) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Status == string(status) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListServices(_ context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRepo) GetServices(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// newTestDispatcher writes audit entries to a throwaway in-memory database
// so the worker goroutine has a real sink.
func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("migrating audit table: %v", err)
	}

	return audit.NewDispatcher(audit.New(db), zap.NewNop())
}

func newBookingSetup(t *testing.T) (*fakeRepo, *BookAppointment) {
	t.Helper()

	repo := newFakeRepo()
	repo.seedService(1, "Corte", 35, 30)
	repo.seedService(2, "Barba", 25, 20)

	return repo, NewBookAppointment(repo, newTestDispatcher(t))
}

func bookingInput(timeStr string, serviceIDs ...uint) BookAppointmentInput {
	return BookAppointmentInput{
		ClientID:       1,
		ProfessionalID: 1,
		ServiceIDs:     serviceIDs,
		Date:           "2024-06-01",
		Time:           timeStr,
	}
}

// ======================================================
// TESTS
// ======================================================

func TestBookAppointment(t *testing.T) {
	repo, book := newBookingSetup(t)

	ap, err := book.Execute(context.Background(), bookingInput("09:00", 1, 2))
	if err != nil {
		t.Fatalf("expected booking to succeed, got %v", err)
	}

	if ap.Status != "scheduled" {
		t.Fatalf("expected status scheduled, got %q", ap.Status)
	}
	if got := domain.TotalValue(ap); got != 60 {
		t.Fatalf("expected total value 60, got %v", got)
	}
	if got := domain.TotalDuration(ap); got != 50 {
		t.Fatalf("expected total duration 50, got %v", got)
	}
	if _, ok := repo.appointments[ap.ID]; !ok {
		t.Fatalf("expected appointment %d to be persisted", ap.ID)
	}
}

func TestBookAppointment_Conflict(t *testing.T) {
	_, book := newBookingSetup(t)

	if _, err := book.Execute(context.Background(), bookingInput("09:00", 1)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// 09:15 starts inside the 09:00-09:30 window.
	_, err := book.Execute(context.Background(), bookingInput("09:15", 2))
	var conflict domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestBookAppointment_BackToBack(t *testing.T) {
	_, book := newBookingSetup(t)

	if _, err := book.Execute(context.Background(), bookingInput("09:00", 1)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Starting exactly when the previous one ends is not a conflict.
	if _, err := book.Execute(context.Background(), bookingInput("09:30", 2)); err != nil {
		t.Fatalf("expected back-to-back booking to succeed, got %v", err)
	}
}

func TestBookAppointment_CancelledSlotReopens(t *testing.T) {
	repo, book := newBookingSetup(t)
	dispatcher := newTestDispatcher(t)
	cancel := NewCancelAppointment(repo, dispatcher)

	first, err := book.Execute(context.Background(), bookingInput("09:00", 1))
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	if _, err := cancel.Execute(context.Background(), first.ID, "client asked"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := book.Execute(context.Background(), bookingInput("09:00", 2)); err != nil {
		t.Fatalf("expected freed slot to be bookable again, got %v", err)
	}
}

func TestBookAppointment_UnknownService(t *testing.T) {
	_, book := newBookingSetup(t)

	_, err := book.Execute(context.Background(), bookingInput("09:00", 99))
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestBookAppointment_InvalidDate(t *testing.T) {
	_, book := newBookingSetup(t)

	in := bookingInput("09:00", 1)
	in.Date = "01/06/2024"
	_, err := book.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestBookAppointment_RepeatedServiceCountsTwice(t *testing.T) {
	_, book := newBookingSetup(t)

	ap, err := book.Execute(context.Background(), bookingInput("09:00", 1, 1))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if got := domain.TotalValue(ap); got != 70 {
		t.Fatalf("expected repeated service to count twice (70), got %v", got)
	}
}
