package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

func TestWindowFor(t *testing.T) {
	engine := NewEngine(&fakeReader{hours: openDay(2, "08:30", "17:00")})

	win := engine.WindowFor(context.Background(), 1, tuesday)
	require.NotNil(t, win)

	assert.Equal(t, at(8, 30), win.Open)
	assert.Equal(t, at(17, 0), win.Close)
	assert.Equal(t, time.UTC, win.Open.Location(), "janela projetada no fuso da data consultada")
}

func TestWindowFor_Closed(t *testing.T) {
	tests := []struct {
		name string
		rule *models.BusinessHours
	}{
		{"regra fechada", &models.BusinessHours{Weekday: 2, OpenTime: "08:00", CloseTime: "18:00", Closed: true}},
		{"abertura vazia", &models.BusinessHours{Weekday: 2, CloseTime: "18:00"}},
		{"fechamento vazio", &models.BusinessHours{Weekday: 2, OpenTime: "08:00"}},
		{"abertura malformada", &models.BusinessHours{Weekday: 2, OpenTime: "8h", CloseTime: "18:00"}},
		{"horários iguais", &models.BusinessHours{Weekday: 2, OpenTime: "12:00", CloseTime: "12:00"}},
		{"horários invertidos", &models.BusinessHours{Weekday: 2, OpenTime: "18:00", CloseTime: "08:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(&fakeReader{
				hours: map[int]*models.BusinessHours{2: tt.rule},
			})
			assert.Nil(t, engine.WindowFor(context.Background(), 1, tuesday))
		})
	}
}

func TestProjectClock(t *testing.T) {
	got, ok := projectClock(tuesday, "14:45")
	require.True(t, ok)
	assert.Equal(t, at(14, 45), got)

	_, ok = projectClock(tuesday, "25:00")
	assert.False(t, ok)

	_, ok = projectClock(tuesday, "")
	assert.False(t, ok)
}
