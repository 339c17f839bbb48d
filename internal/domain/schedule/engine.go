package schedule

import (
	"context"
	"time"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/appointment"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

// Engine responde "o dia está aberto?" e "quais slots existem para este
// serviço?". É leitura pura sobre o Reader injetado: mesma entrada, mesma
// saída, nenhum lock. Quem fecha a corrida de reserva é o caminho de
// escrita do repositório (transação + constraint de exclusão).
type Engine struct {
	reader Reader
}

func NewEngine(r Reader) *Engine {
	return &Engine{reader: r}
}

// GenerateSlots enumera os candidatos do dia em passos fixos de
// granularityMin a partir da abertura, em ordem crescente. Candidato cujo
// fim (início + duração) passaria do fechamento não é emitido — nem como
// indisponível. Os demais saem rotulados com o veredito de disponibilidade.
func (e *Engine) GenerateSlots(
	ctx context.Context,
	salonID uint,
	groomerID uint,
	date time.Time,
	durationMin int,
	granularityMin int,
) ([]CandidateSlot, error) {

	slots := make([]CandidateSlot, 0)

	win := e.WindowFor(ctx, salonID, date)
	if win == nil {
		return slots, nil
	}

	if granularityMin <= 0 {
		granularityMin = DefaultGranularityMin
	}

	blocks, err := e.reader.GetBlockedTimes(ctx, salonID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayBounds(date)
	appointments, err := e.reader.ListAppointmentsForDay(ctx, groomerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMin) * time.Minute
	step := time.Duration(granularityMin) * time.Minute

	for t := win.Open; t.Before(win.Close); t = t.Add(step) {
		slotEnd := t.Add(duration)
		if slotEnd.After(win.Close) {
			continue
		}

		available := !overlapsBlocked(blocks, date, t, slotEnd) &&
			!hasAppointmentConflict(appointments, t, slotEnd)

		slots = append(slots, CandidateSlot{
			Time:      t.Format("15:04"),
			Label:     t.Format("3:04 PM"),
			Available: available,
		})
	}

	return slots, nil
}

// IsSlotAvailable aplica o veredito a um único intervalo: bloqueio
// primeiro (mais barato), depois varredura dos agendamentos do dia.
func (e *Engine) IsSlotAvailable(
	ctx context.Context,
	salonID uint,
	groomerID uint,
	date time.Time,
	start time.Time,
	end time.Time,
) (bool, error) {

	blocks, err := e.reader.GetBlockedTimes(ctx, salonID)
	if err != nil {
		return false, err
	}

	if overlapsBlocked(blocks, date, start, end) {
		return false, nil
	}

	dayStart, dayEnd := dayBounds(date)
	appointments, err := e.reader.ListAppointmentsForDay(ctx, groomerID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	return !hasAppointmentConflict(appointments, start, end), nil
}

// CanSchedule é a pré-checagem do caminho de escrita: dentro da janela de
// funcionamento, fora de bloqueio e sem agendamento conflitante. É
// consultiva — a palavra final é da transação de criação.
func (e *Engine) CanSchedule(
	ctx context.Context,
	salonID uint,
	groomerID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	win := e.WindowFor(ctx, salonID, start)
	if win == nil {
		return false, nil
	}

	if start.Before(win.Open) || end.After(win.Close) {
		return false, nil
	}

	return e.IsSlotAvailable(ctx, salonID, groomerID, start, start, end)
}

// hasAppointmentConflict: existe algum agendamento não cancelado cruzando
// [start, end)? Cancelado libera o horário de imediato. Meio-aberto:
// começar exatamente quando o outro termina não conflita.
func hasAppointmentConflict(appointments []models.Appointment, start, end time.Time) bool {
	for _, ap := range appointments {
		if !appointment.Status(ap.Status).CountsForConflict() {
			continue
		}

		if start.Before(ap.EndTime) && end.After(ap.StartTime) {
			return true
		}
	}

	return false
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	return start, start.Add(24 * time.Hour)
}
