package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/appointment"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

func seedAppointment(repo *fakeRepo, status string) *models.Appointment {
	ap := &models.Appointment{
		ID:         42,
		SalonID:    1,
		GroomerID:  7,
		Status:     status,
		PublicCode: "abc-123",
	}
	repo.byID[ap.ID] = ap
	repo.byCode[ap.PublicCode] = ap
	return ap
}

func TestConfirmAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, string(domain.StatusPending))

	uc := NewConfirmAppointment(repo, silentDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 7, 42)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.NotNil(t, ap.ConfirmedAt)
	assert.Same(t, ap, repo.updated)
}

func TestConfirmAppointment_WrongGroomer(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, string(domain.StatusPending))

	uc := NewConfirmAppointment(repo, silentDispatcher())

	_, err := uc.Execute(context.Background(), 1, 99, 42)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestConfirmAppointment_InvalidState(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, string(domain.StatusCompleted))

	uc := NewConfirmAppointment(repo, silentDispatcher())

	_, err := uc.Execute(context.Background(), 1, 7, 42)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, repo.updated, "transição inválida não pode persistir nada")
}

func TestCancelAppointment(t *testing.T) {
	for _, from := range []domain.Status{domain.StatusPending, domain.StatusConfirmed} {
		repo := newFakeRepo()
		seedAppointment(repo, string(from))

		uc := NewCancelAppointment(repo, silentDispatcher())

		ap, err := uc.Execute(context.Background(), 1, 7, 42)
		require.NoError(t, err, "cancelar a partir de %s", from)

		assert.Equal(t, string(domain.StatusCancelled), ap.Status)
		assert.NotNil(t, ap.CancelledAt)
	}
}

func TestCompleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, string(domain.StatusConfirmed))

	uc := NewCompleteAppointment(repo, silentDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 7, 42)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)
}

func TestCompleteAppointment_RequiresConfirmed(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, string(domain.StatusPending))

	uc := NewCompleteAppointment(repo, silentDispatcher())

	_, err := uc.Execute(context.Background(), 1, 7, 42)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMarkNoShow(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, string(domain.StatusConfirmed))

	uc := NewMarkNoShow(repo, silentDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 7, 42)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusNoShow), ap.Status)
}

func TestCancelByCode(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, string(domain.StatusConfirmed))

	uc := NewCancelByCode(repo, silentDispatcher())

	ap, err := uc.Execute(context.Background(), "abc-123")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
}

func TestCancelByCode_UnknownCode(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCancelByCode(repo, silentDispatcher())

	_, err := uc.Execute(context.Background(), "nope")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
