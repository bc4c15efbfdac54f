package models

import "time"

// Cliente da barbearia, sem login
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	RegisteredAt time.Time `json:"registered_at"`

	Appointments []Appointment `gorm:"foreignKey:ClientID" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
