package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

// ======================================================
// FAKE READER
// ======================================================

type fakeReader struct {
	hours        map[int]*models.BusinessHours
	blocks       []models.BlockedTime
	appointments []models.Appointment

	hoursErr error
}

func (f *fakeReader) GetBusinessHoursForDay(_ context.Context, _ uint, weekday int) (*models.BusinessHours, error) {
	if f.hoursErr != nil {
		return nil, f.hoursErr
	}
	return f.hours[weekday], nil
}

func (f *fakeReader) GetBlockedTimes(_ context.Context, _ uint) ([]models.BlockedTime, error) {
	return f.blocks, nil
}

func (f *fakeReader) ListAppointmentsForDay(_ context.Context, _ uint, _, _ time.Time) ([]models.Appointment, error) {
	return f.appointments, nil
}

// terça-feira, 10 de março de 2026
var tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func openDay(weekday int, open, close string) map[int]*models.BusinessHours {
	return map[int]*models.BusinessHours{
		weekday: {Weekday: weekday, OpenTime: open, CloseTime: close},
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

// ======================================================
// DIA FECHADO
// ======================================================

func TestGenerateSlots_ClosedDay(t *testing.T) {
	tests := []struct {
		name   string
		reader *fakeReader
	}{
		{
			name:   "sem regra para o dia",
			reader: &fakeReader{hours: map[int]*models.BusinessHours{}},
		},
		{
			name: "regra marcada como fechada",
			reader: &fakeReader{
				hours: map[int]*models.BusinessHours{
					2: {Weekday: 2, OpenTime: "09:00", CloseTime: "18:00", Closed: true},
				},
			},
		},
		{
			name: "horários invertidos",
			reader: &fakeReader{
				hours: map[int]*models.BusinessHours{
					2: {Weekday: 2, OpenTime: "18:00", CloseTime: "09:00"},
				},
			},
		},
		{
			name:   "erro na leitura vira fechado",
			reader: &fakeReader{hoursErr: assert.AnError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(tt.reader)

			slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
			require.NoError(t, err)
			assert.Empty(t, slots)

			assert.False(t, engine.IsDayOpen(context.Background(), 1, tuesday))
		})
	}
}

// ======================================================
// GERAÇÃO — PASSO FIXO E ENCAIXE DA DURAÇÃO
// ======================================================

func TestGenerateSlots_StepAndDurationFit(t *testing.T) {
	engine := NewEngine(&fakeReader{hours: openDay(2, "09:00", "12:00")})

	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
	require.NoError(t, err)

	// último candidato que ainda cabe: 11:00 (termina exatamente às 12:00)
	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
		assert.True(t, s.Available)
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, times)
}

func TestGenerateSlots_Labels(t *testing.T) {
	engine := NewEngine(&fakeReader{hours: openDay(2, "09:00", "10:30")})

	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 30, 30)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "9:30 AM", slots[1].Label)
	assert.Equal(t, "10:00 AM", slots[2].Label)
}

func TestGenerateSlots_GranularityFallback(t *testing.T) {
	engine := NewEngine(&fakeReader{hours: openDay(2, "09:00", "11:00")})

	// granularidade inválida cai no padrão de 30 minutos
	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 30, 0)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "10:30", slots[3].Time)
}

// ======================================================
// CONFLITO COM AGENDAMENTOS
// ======================================================

func TestGenerateSlots_AppointmentConflict(t *testing.T) {
	engine := NewEngine(&fakeReader{
		hours: openDay(2, "08:00", "16:00"),
		appointments: []models.Appointment{
			{StartTime: at(10, 0), EndTime: at(11, 0), Status: "confirmed"},
		},
	})

	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
	require.NoError(t, err)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	// cruzam o agendamento das 10:00–11:00
	assert.False(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])

	// fronteiras meio-abertas: terminar às 10:00 ou começar às 11:00 é livre
	assert.True(t, byTime["09:00"])
	assert.True(t, byTime["11:00"])
}

func TestGenerateSlots_CancelledFreesSlot(t *testing.T) {
	engine := NewEngine(&fakeReader{
		hours: openDay(2, "08:00", "16:00"),
		appointments: []models.Appointment{
			{StartTime: at(10, 0), EndTime: at(11, 0), Status: "cancelled"},
		},
	})

	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
	require.NoError(t, err)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s deveria estar livre", s.Time)
	}
}

func TestGenerateSlots_NoShowStillOccupies(t *testing.T) {
	engine := NewEngine(&fakeReader{
		hours: openDay(2, "08:00", "16:00"),
		appointments: []models.Appointment{
			{StartTime: at(10, 0), EndTime: at(11, 0), Status: "no_show"},
		},
	})

	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
	require.NoError(t, err)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.False(t, byTime["10:00"])
}

// ======================================================
// BLOQUEIOS
// ======================================================

func TestGenerateSlots_RecurringBlock(t *testing.T) {
	engine := NewEngine(&fakeReader{
		hours: openDay(2, "08:00", "16:00"),
		blocks: []models.BlockedTime{
			{StartTime: "12:00", EndTime: "13:00", Recurring: true},
		},
	})

	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
	require.NoError(t, err)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["11:30"]) // terminaria 12:30, dentro do almoço
	assert.False(t, byTime["12:00"])
	assert.False(t, byTime["12:30"])
	assert.True(t, byTime["11:00"]) // termina exatamente às 12:00
	assert.True(t, byTime["13:00"]) // começa exatamente quando o bloqueio acaba
}

func TestGenerateSlots_DateSpecificBlockOnlyOnItsDate(t *testing.T) {
	reader := &fakeReader{
		hours: map[int]*models.BusinessHours{
			2: {Weekday: 2, OpenTime: "09:00", CloseTime: "12:00"},
			3: {Weekday: 3, OpenTime: "09:00", CloseTime: "12:00"},
		},
		blocks: []models.BlockedTime{
			{StartTime: "09:00", EndTime: "12:00", Recurring: false, Date: "2026-03-10"},
		},
	}
	engine := NewEngine(reader)

	// na data do bloqueio, nada disponível
	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
	require.NoError(t, err)
	for _, s := range slots {
		assert.False(t, s.Available)
	}

	// no dia seguinte, tudo livre
	wednesday := tuesday.AddDate(0, 0, 1)
	slots, err = engine.GenerateSlots(context.Background(), 1, 1, wednesday, 60, 30)
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

// ======================================================
// DETERMINISMO
// ======================================================

func TestGenerateSlots_Deterministic(t *testing.T) {
	engine := NewEngine(&fakeReader{
		hours: openDay(2, "08:00", "16:00"),
		blocks: []models.BlockedTime{
			{StartTime: "12:00", EndTime: "13:00", Recurring: true},
		},
		appointments: []models.Appointment{
			{StartTime: at(9, 0), EndTime: at(10, 0), Status: "pending"},
		},
	})

	first, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
	require.NoError(t, err)

	second, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 60, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ======================================================
// CENÁRIO COMPLETO — serviço longo + almoço
// ======================================================

func TestGenerateSlots_LongServiceWithLunch(t *testing.T) {
	engine := NewEngine(&fakeReader{
		hours: openDay(2, "08:00", "16:00"),
		blocks: []models.BlockedTime{
			{StartTime: "12:00", EndTime: "13:00", Recurring: true},
		},
	})

	// serviço de 2h30 (tosa completa de porte grande)
	slots, err := engine.GenerateSlots(context.Background(), 1, 1, tuesday, 150, 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// último candidato que cabe: 13:30 (termina exatamente às 16:00)
	assert.Equal(t, "13:30", slots[len(slots)-1].Time)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	// 09:30 termina às 12:00, encosta no almoço sem invadir
	assert.True(t, byTime["09:30"])

	// de 10:00 a 12:30, todo início cruza o almoço
	for _, tm := range []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30"} {
		assert.False(t, byTime[tm], "slot %s deveria estar indisponível", tm)
	}

	// depois do almoço volta a caber
	assert.True(t, byTime["13:00"])
	assert.True(t, byTime["13:30"])
}

// ======================================================
// IsSlotAvailable / CanSchedule
// ======================================================

func TestIsSlotAvailable_Boundaries(t *testing.T) {
	engine := NewEngine(&fakeReader{
		hours: openDay(2, "08:00", "18:00"),
		appointments: []models.Appointment{
			{StartTime: at(10, 0), EndTime: at(11, 0), Status: "confirmed"},
		},
	})

	ctx := context.Background()

	ok, err := engine.IsSlotAvailable(ctx, 1, 1, tuesday, at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.True(t, ok, "terminar quando o outro começa não conflita")

	ok, err = engine.IsSlotAvailable(ctx, 1, 1, tuesday, at(11, 0), at(12, 0))
	require.NoError(t, err)
	assert.True(t, ok, "começar quando o outro termina não conflita")

	ok, err = engine.IsSlotAvailable(ctx, 1, 1, tuesday, at(10, 30), at(11, 30))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanSchedule_WindowContainment(t *testing.T) {
	engine := NewEngine(&fakeReader{hours: openDay(2, "09:00", "18:00")})
	ctx := context.Background()

	ok, err := engine.CanSchedule(ctx, 1, 1, at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.True(t, ok)

	// começa antes da abertura
	ok, err = engine.CanSchedule(ctx, 1, 1, at(8, 30), at(9, 30))
	require.NoError(t, err)
	assert.False(t, ok)

	// termina depois do fechamento
	ok, err = engine.CanSchedule(ctx, 1, 1, at(17, 30), at(18, 30))
	require.NoError(t, err)
	assert.False(t, ok)

	// termina exatamente no fechamento
	ok, err = engine.CanSchedule(ctx, 1, 1, at(17, 0), at(18, 0))
	require.NoError(t, err)
	assert.True(t, ok)
}
