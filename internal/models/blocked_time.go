package models

import "time"

// Intervalo nunca agendável, independente da carga de agendamentos.
// Recurring = true → vale todo dia (ex: almoço 12:00–13:00).
// Recurring = false → vale só em Date ("2006-01-02").
// Invariante: StartTime < EndTime.
type BlockedTime struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // "HH:MM"
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // "HH:MM"

	Recurring bool   `gorm:"default:true" json:"recurring"`
	Date      string `gorm:"size:10" json:"date"` // só quando Recurring = false

	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
