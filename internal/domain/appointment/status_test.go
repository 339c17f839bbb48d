package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

func TestCountsForConflict(t *testing.T) {
	// só cancelado libera o horário
	assert.False(t, StatusCancelled.CountsForConflict())

	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow} {
		assert.True(t, s.CountsForConflict(), "status %s deveria ocupar o horário", s)
	}
}

func TestTransitionRules(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow}

	tests := []struct {
		name    string
		check   func(Status) error
		allowed map[Status]bool
	}{
		{
			name:    "confirmar exige pendente",
			check:   CanConfirm,
			allowed: map[Status]bool{StatusPending: true},
		},
		{
			name:    "cancelar exige pendente ou confirmado",
			check:   CanCancel,
			allowed: map[Status]bool{StatusPending: true, StatusConfirmed: true},
		},
		{
			name:    "concluir exige confirmado",
			check:   CanComplete,
			allowed: map[Status]bool{StatusConfirmed: true},
		},
		{
			name:    "no-show exige confirmado",
			check:   CanMarkNoShow,
			allowed: map[Status]bool{StatusConfirmed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range all {
				err := tt.check(s)
				if tt.allowed[s] {
					assert.NoError(t, err, "de %s deveria ser permitido", s)
					continue
				}
				assert.True(t, httperr.IsBusiness(err, "invalid_state"), "de %s deveria falhar", s)
			}
		})
	}
}

func TestDomainActions(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("confirmar grava o carimbo", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusPending)}
		require.NoError(t, Confirm(ap, now))
		assert.Equal(t, string(StatusConfirmed), ap.Status)
		require.NotNil(t, ap.ConfirmedAt)
		assert.Equal(t, now, *ap.ConfirmedAt)
	})

	t.Run("cancelar grava o carimbo", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusConfirmed)}
		require.NoError(t, Cancel(ap, now))
		assert.Equal(t, string(StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
	})

	t.Run("concluir grava o carimbo", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusConfirmed)}
		require.NoError(t, Complete(ap, now))
		assert.Equal(t, string(StatusCompleted), ap.Status)
		require.NotNil(t, ap.CompletedAt)
	})

	t.Run("no-show não tem carimbo próprio", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusConfirmed)}
		require.NoError(t, MarkNoShow(ap))
		assert.Equal(t, string(StatusNoShow), ap.Status)
	})

	t.Run("transição inválida não altera nada", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusCompleted)}
		err := Confirm(ap, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, string(StatusCompleted), ap.Status)
		assert.Nil(t, ap.ConfirmedAt)
	})
}
