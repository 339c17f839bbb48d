package appointment

import (
	"context"
	"time"

	domain "github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/appointment"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/schedule"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/timezone"
)

type AvailabilityInput struct {
	SalonID   uint
	GroomerID uint
	ServiceID uint
	Date      time.Time
}

// AvailabilityResult segue o contrato do cliente web legado — campos
// isOpen/availableCount em camelCase, ao contrário do resto da API.
type AvailabilityResult struct {
	Date           string                   `json:"date"`
	IsOpen         bool                     `json:"isOpen"`
	Slots          []schedule.CandidateSlot `json:"slots"`
	AvailableCount int                      `json:"availableCount"`
}

type GetAvailability struct {
	repo   domain.Repository
	engine *schedule.Engine
}

func NewGetAvailability(repo domain.Repository, engine *schedule.Engine) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		engine: engine,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// A engine não se defende de duração inválida — validação é daqui
	if service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	// Reprojeta a data no fuso do salão: a janela do dia e os horários dos
	// agendamentos persistidos vivem nesse fuso, não no do chamador.
	loc := timezone.Location(salon.Timezone)
	date := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)

	result := &AvailabilityResult{
		Date:  date.Format("2006-01-02"),
		Slots: []schedule.CandidateSlot{},
	}

	if !uc.engine.IsDayOpen(ctx, in.SalonID, date) {
		return result, nil
	}

	slots, err := uc.engine.GenerateSlots(
		ctx,
		in.SalonID,
		in.GroomerID,
		date,
		service.DurationMin,
		salon.SlotGranularityMin,
	)
	if err != nil {
		return nil, err
	}

	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}

	result.IsOpen = true
	result.Slots = slots
	result.AvailableCount = available

	return result, nil
}
