package models

import "time"

// Regra de funcionamento do salão — uma por dia da semana.
// Invariante: se Closed = false, OpenTime < CloseTime.
type BusinessHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_salon_weekday,unique" json:"salon_id"`

	Weekday int `gorm:"index:idx_salon_weekday,unique" json:"weekday"` // 0=domingo .. 6=sábado

	OpenTime  string `gorm:"size:5" json:"open_time"`  // "HH:MM"
	CloseTime string `gorm:"size:5" json:"close_time"` // "HH:MM"
	Closed    bool   `json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
