package appointment

import (
	"context"
	"time"

	"github.com/barberdesk/barberdesk-api/internal/models"
)

type Repository interface {
	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForProfessional(
		ctx context.Context,
		professionalID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		day time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsByStatus(
		ctx context.Context,
		status Status,
	) ([]models.Appointment, error)

	// -------- Catalog --------
	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	GetServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)
}
