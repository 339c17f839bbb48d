package schedule

import (
	"context"
	"time"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

// Reader é o contrato de leitura que a agenda consome. A engine nunca
// escreve: reservar horário é operação do repositório de agendamentos,
// fora daqui.
type Reader interface {
	// Regra de funcionamento do dia da semana (0=domingo .. 6=sábado).
	// Ausência de regra é tratada pela engine como fechado, não como erro.
	GetBusinessHoursForDay(
		ctx context.Context,
		salonID uint,
		weekday int,
	) (*models.BusinessHours, error)

	GetBlockedTimes(
		ctx context.Context,
		salonID uint,
	) ([]models.BlockedTime, error)

	// Agendamentos do groomer que tocam o dia [dayStart, dayEnd).
	ListAppointmentsForDay(
		ctx context.Context,
		groomerID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)
}
