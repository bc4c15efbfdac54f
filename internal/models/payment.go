package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the receipt identifier handed to the client.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	AppointmentID uint        `gorm:"uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment"`

	Value  float64 `json:"value"`
	Method string  `gorm:"size:20;default:'cash'" json:"method"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
