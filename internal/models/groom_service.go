package models

import "time"

// Serviço de banho e tosa oferecido pelo salão.
// A agenda nunca altera DurationMin — só lê.
type GroomService struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	DurationMin int    `json:"duration_min"`
	Price       int    `json:"price"` // valor inteiro em reais
	Active      bool   `gorm:"default:true" json:"active"`

	Category string `gorm:"size:50" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
