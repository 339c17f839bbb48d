package dto

import "time"

type AppointmentListDTO struct {
	ID        uint      `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`

	ClientName  string `json:"client_name"`
	PetName     string `json:"pet_name"`
	ServiceName string `json:"service_name"`

	// Rótulos prontos para o painel ("1h 30m", "R$ 120")
	DurationLabel string `json:"duration_label"`
	PriceLabel    string `json:"price_label"`
}
