package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/audit"
	domain "github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/appointment"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/schedule"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID   uint
	GroomerID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	PetName  string
	PetBreed string
	PetSize  string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	engine *schedule.Engine
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	engine *schedule.Engine,
	auditor *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		engine: engine,
		audit:  auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	// Data/hora no fuso do salão
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Antecedência mínima
	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// Pré-checagem consultiva: janela de funcionamento + bloqueios +
	// agendamentos vigentes. A revalidação atômica fica na transação
	// de criação do repositório.
	ok, err := uc.engine.CanSchedule(ctx, in.SalonID, in.GroomerID, start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	pet, err := uc.repo.GetOrCreatePet(
		ctx,
		client.ID,
		in.PetName,
		in.PetBreed,
		in.PetSize,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		SalonID:        in.SalonID,
		GroomerID:      in.GroomerID,
		ClientID:       client.ID,
		PetID:          pet.ID,
		GroomServiceID: service.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		PublicCode:     uuid.NewString(),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.GroomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
