package report

import (
	"context"
	"time"

	domain "github.com/barberdesk/barberdesk-api/internal/domain/appointment"
	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/models"
)

// Reports derives the dashboard numbers. Every figure is recomputed from
// the persisted rows on demand; nothing is cached.
type Reports struct {
	repo domain.Repository
}

func NewReports(repo domain.Repository) *Reports {
	return &Reports{repo: repo}
}

// Revenue sums the total value of realized appointments whose date falls
// within [start, end].
func (r *Reports) Revenue(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (float64, error) {

	if start.After(end) {
		return 0, httperr.ErrBusiness("invalid_period")
	}

	aps, err := r.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return 0, err
	}
	return RevenueOf(aps), nil
}

func (r *Reports) PendingCount(ctx context.Context) (int, error) {
	aps, err := r.repo.ListAppointments(ctx)
	if err != nil {
		return 0, err
	}
	return PendingCountOf(aps), nil
}

func (r *Reports) CancellationRate(ctx context.Context) (float64, error) {
	aps, err := r.repo.ListAppointments(ctx)
	if err != nil {
		return 0, err
	}
	return CancellationRateOf(aps), nil
}

func (r *Reports) AverageServicePrice(ctx context.Context) (float64, error) {
	services, err := r.repo.ListServices(ctx)
	if err != nil {
		return 0, err
	}
	return AveragePriceOf(services), nil
}

func (r *Reports) CheapestService(ctx context.Context) (*models.Service, error) {
	services, err := r.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return CheapestOf(services), nil
}

func (r *Reports) MostExpensiveService(ctx context.Context) (*models.Service, error) {
	services, err := r.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return MostExpensiveOf(services), nil
}

// ===============================
// Pure computations
// ===============================

func RevenueOf(aps []models.Appointment) float64 {
	var total float64
	for i := range aps {
		if domain.ParseStatus(aps[i].Status) == domain.StatusRealized {
			total += domain.TotalValue(&aps[i])
		}
	}
	return total
}

func PendingCountOf(aps []models.Appointment) int {
	count := 0
	for i := range aps {
		if domain.ParseStatus(aps[i].Status) == domain.StatusScheduled {
			count++
		}
	}
	return count
}

// CancellationRateOf returns the cancelled share as a percentage,
// 0 for an empty set.
func CancellationRateOf(aps []models.Appointment) float64 {
	if len(aps) == 0 {
		return 0
	}

	cancelled := 0
	for i := range aps {
		if domain.ParseStatus(aps[i].Status) == domain.StatusCancelled {
			cancelled++
		}
	}
	return float64(cancelled) / float64(len(aps)) * 100
}

func AveragePriceOf(services []models.Service) float64 {
	if len(services) == 0 {
		return 0
	}

	var sum float64
	for _, s := range services {
		sum += s.Price
	}
	return sum / float64(len(services))
}

func CheapestOf(services []models.Service) *models.Service {
	var cheapest *models.Service
	for i := range services {
		if cheapest == nil || services[i].Price < cheapest.Price {
			cheapest = &services[i]
		}
	}
	return cheapest
}

func MostExpensiveOf(services []models.Service) *models.Service {
	var priciest *models.Service
	for i := range services {
		if priciest == nil || services[i].Price > priciest.Price {
			priciest = &services[i]
		}
	}
	return priciest
}
