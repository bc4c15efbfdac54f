package appointment

import (
	"context"
	"time"

	"github.com/barberdesk/barberdesk-api/internal/audit"
	domain "github.com/barberdesk/barberdesk-api/internal/domain/appointment"
	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/models"
	"github.com/barberdesk/barberdesk-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID       uint
	ProfessionalID uint

	// ServiceIDs may repeat; a repeated id books the service twice.
	ServiceIDs []uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.assemble(ctx, 0, in)
	if err != nil {
		return nil, err
	}

	if err := domain.Validate(ap); err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListAppointmentsForProfessional(ctx, ap.ProfessionalID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckAvailability(ap, existing); err != nil {
		uc.audit.Dispatch(audit.Event{
			Action: "appointment_conflict",
			Entity: "appointment",
			Metadata: map[string]any{
				"professional_id": ap.ProfessionalID,
				"date":            in.Date,
				"time":            in.Time,
			},
		})
		return nil, err
	}

	ap.Status = string(domain.InitialStatus())

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// assemble hydrates the candidate from its raw input. Missing pieces are
// left zero-valued so Validate reports them in its own order.
func (uc *BookAppointment) assemble(
	ctx context.Context,
	id uint,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		ID:             id,
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		Time:           in.Time,
		Notes:          in.Notes,
	}

	if in.Date != "" {
		date, err := time.ParseInLocation(
			"2006-01-02",
			in.Date,
			timezone.Location(""),
		)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.Date = date
	}

	services, err := resolveServices(ctx, uc.repo, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	ap.Services = services

	return ap, nil
}

// resolveServices hydrates the selected services, preserving order and
// repetition of the requested ids.
func resolveServices(
	ctx context.Context,
	repo domain.Repository,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	found, err := repo.GetServices(ctx, unique)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	services := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		services = append(services, s)
	}

	return services, nil
}
