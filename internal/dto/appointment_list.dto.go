package dto

type AppointmentListDTO struct {
	ID           uint     `json:"id"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Status       string   `json:"status"`
	ClientName   string   `json:"client_name"`
	Professional string   `json:"professional"`
	Services     []string `json:"services"`
	TotalValue   float64  `json:"total_value"`
	DurationMin  int      `json:"duration_min"`
}
