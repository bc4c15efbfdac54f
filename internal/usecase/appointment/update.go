package appointment

import (
	"context"

	"github.com/barberdesk/barberdesk-api/internal/audit"
	domain "github.com/barberdesk/barberdesk-api/internal/domain/appointment"
	"github.com/barberdesk/barberdesk-api/internal/models"
)

type UpdateAppointmentInput struct {
	ID uint
	BookAppointmentInput
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the appointment's full state, re-running validation
// and the conflict scan with the appointment's own row excluded.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if in.ID == 0 {
		return nil, domain.ErrMissingIdentity
	}

	current, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	book := BookAppointment{repo: uc.repo, audit: uc.audit}
	ap, err := book.assemble(ctx, in.ID, in.BookAppointmentInput)
	if err != nil {
		return nil, err
	}
	ap.Status = current.Status
	ap.CancelledAt = current.CancelledAt
	ap.RealizedAt = current.RealizedAt
	ap.CreatedAt = current.CreatedAt

	if err := domain.Validate(ap); err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListAppointmentsForProfessional(ctx, ap.ProfessionalID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckAvailability(ap, existing); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
