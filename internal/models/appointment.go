package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	// Date carries the calendar day, Time the "15:04" start within it.
	Date time.Time `json:"date"`
	Time string    `gorm:"size:5" json:"time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:500" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	RealizedAt  *time.Time `json:"realized_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
