package appointment

import (
	"context"
	"time"

	domain "github.com/barberdesk/barberdesk-api/internal/domain/appointment"
	"github.com/barberdesk/barberdesk-api/internal/dto"
	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/models"
	"github.com/barberdesk/barberdesk-api/internal/timezone"
)

// Queries bundles the read-only lookups the agenda screens run. Every
// method is a straight pass-through to the persistence layer.
type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

func (q *Queries) Get(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	ap, err := q.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	return ap, nil
}

func (q *Queries) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {
	return q.repo.ListAppointments(ctx)
}

func (q *Queries) ListByDate(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	aps, err := q.repo.ListAppointmentsForDay(ctx, date)
	if err != nil {
		return nil, err
	}
	return toListDTO(aps), nil
}

func (q *Queries) ListToday(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {
	return q.ListByDate(ctx, timezone.Now())
}

func (q *Queries) ListByPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	if start.After(end) {
		return nil, httperr.ErrBusiness("invalid_period")
	}
	return q.repo.ListAppointmentsForPeriod(ctx, start, end)
}

func (q *Queries) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	return q.repo.ListAppointmentsForClient(ctx, clientID)
}

func (q *Queries) ListByProfessional(
	ctx context.Context,
	professionalID uint,
) ([]models.Appointment, error) {
	return q.repo.ListAppointmentsForProfessional(ctx, professionalID)
}

func (q *Queries) ListByStatus(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {
	return q.repo.ListAppointmentsByStatus(ctx, domain.ParseStatus(status))
}

func toListDTO(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for i := range aps {
		ap := &aps[i]

		item := dto.AppointmentListDTO{
			ID:           ap.ID,
			Date:         ap.Date.Format("2006-01-02"),
			Time:         ap.Time,
			Status:       ap.Status,
			ClientName:   ap.Client.Name,
			Professional: ap.Professional.Name,
			TotalValue:   domain.TotalValue(ap),
			DurationMin:  domain.TotalDuration(ap),
		}
		for _, s := range ap.Services {
			item.Services = append(item.Services, s.Name)
		}

		out = append(out, item)
	}
	return out
}
