package appointment

import (
	"context"

	"github.com/barberdesk/barberdesk-api/internal/audit"
	domain "github.com/barberdesk/barberdesk-api/internal/domain/appointment"
	"github.com/barberdesk/barberdesk-api/internal/models"
	"github.com/barberdesk/barberdesk-api/internal/timezone"
)

type FinalizeAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFinalizeAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *FinalizeAppointment {
	return &FinalizeAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *FinalizeAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	notes string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Finalize(ap, notes, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_finalized",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
