package appointment

import (
	"context"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/audit"
	domain "github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/appointment"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/timezone"
)

// CancelByCode é o cancelamento sem login: o tutor usa o código público
// recebido na criação do agendamento.
type CancelByCode struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByCode(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *CancelByCode {
	return &CancelByCode{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *CancelByCode) Execute(
	ctx context.Context,
	publicCode string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByCode(ctx, publicCode)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	salon, err := uc.repo.GetSalonByID(ctx, ap.SalonID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		Action:   "appointment_cancelled_by_client",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
