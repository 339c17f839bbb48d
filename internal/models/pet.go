package models

import "time"

type Pet struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Breed string `gorm:"size:100" json:"breed"`
	Size  string `gorm:"size:20" json:"size"` // small / medium / large
	Notes string `gorm:"size:255" json:"notes"`

	PhotoURL string `gorm:"size:500" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
