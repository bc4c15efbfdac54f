package report

import (
	"testing"

	"github.com/barberdesk/barberdesk-api/internal/models"
)

func appointmentWith(status string, price float64) models.Appointment {
	return models.Appointment{
		Status:   status,
		Services: []models.Service{{Name: "Corte", Price: price, DurationMin: 30}},
	}
}

func TestRevenueOf(t *testing.T) {
	aps := []models.Appointment{
		appointmentWith("realized", 35),
		appointmentWith("realized", 25),
		appointmentWith("scheduled", 100),
		appointmentWith("cancelled", 100),
	}

	if got := RevenueOf(aps); got != 60 {
		t.Fatalf("expected revenue 60 from realized rows only, got %v", got)
	}
	if got := RevenueOf(nil); got != 0 {
		t.Fatalf("expected zero revenue for empty set, got %v", got)
	}
}

func TestPendingCountOf(t *testing.T) {
	aps := []models.Appointment{
		appointmentWith("scheduled", 35),
		appointmentWith("confirmed", 35),
		appointmentWith("scheduled", 25),
		appointmentWith("no_show", 25),
	}

	if got := PendingCountOf(aps); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}
}

func TestCancellationRateOf(t *testing.T) {
	if got := CancellationRateOf(nil); got != 0 {
		t.Fatalf("expected rate 0 for empty set, got %v", got)
	}

	aps := []models.Appointment{
		appointmentWith("cancelled", 35),
		appointmentWith("realized", 35),
		appointmentWith("scheduled", 35),
		appointmentWith("cancelled", 35),
	}
	if got := CancellationRateOf(aps); got != 50 {
		t.Fatalf("expected rate 50, got %v", got)
	}
}

func TestAveragePriceOf(t *testing.T) {
	if got := AveragePriceOf(nil); got != 0 {
		t.Fatalf("expected average 0 for empty catalog, got %v", got)
	}

	services := []models.Service{
		{Name: "Corte", Price: 35},
		{Name: "Barba", Price: 25},
	}
	if got := AveragePriceOf(services); got != 30 {
		t.Fatalf("expected average 30, got %v", got)
	}
}

func TestCheapestAndMostExpensive(t *testing.T) {
	if CheapestOf(nil) != nil || MostExpensiveOf(nil) != nil {
		t.Fatal("expected nil extremes for empty catalog")
	}

	services := []models.Service{
		{Name: "Corte", Price: 35},
		{Name: "Barba", Price: 25},
		{Name: "Combo", Price: 55},
	}

	if got := CheapestOf(services); got == nil || got.Name != "Barba" {
		t.Fatalf("expected Barba as cheapest, got %+v", got)
	}
	if got := MostExpensiveOf(services); got == nil || got.Name != "Combo" {
		t.Fatalf("expected Combo as most expensive, got %+v", got)
	}
}
