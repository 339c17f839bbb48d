package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/audit"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/schedule"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

// ======================================================
// FAKE REPOSITORY (implementa Repository e schedule.Reader)
// ======================================================

type fakeRepo struct {
	salon    *models.Salon
	services map[uint]*models.GroomService

	hours        map[int]*models.BusinessHours
	blocks       []models.BlockedTime
	appointments []models.Appointment

	created *models.Appointment
	updated *models.Appointment

	byID   map[uint]*models.Appointment
	byCode map[string]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: &models.Salon{
			ID:                 1,
			Slug:               "peachy-pooches",
			Timezone:           "America/Sao_Paulo",
			MinAdvanceMinutes:  120,
			SlotGranularityMin: 30,
		},
		services: map[uint]*models.GroomService{},
		hours:    map[int]*models.BusinessHours{},
		byID:     map[uint]*models.Appointment{},
		byCode:   map[string]*models.Appointment{},
	}
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if f.salon == nil || f.salon.ID != id {
		return nil, errors.New("salon not found")
	}
	return f.salon, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if f.salon == nil || f.salon.Slug != slug {
		return nil, errors.New("salon not found")
	}
	return f.salon, nil
}

func (f *fakeRepo) GetService(_ context.Context, _, serviceID uint) (*models.GroomService, error) {
	s, ok := f.services[serviceID]
	if !ok {
		return nil, errors.New("service not found")
	}
	return s, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, salonID uint, name, phone, _ string) (*models.Client, error) {
	return &models.Client{ID: 10, SalonID: salonID, Name: name, Phone: phone}, nil
}

func (f *fakeRepo) GetOrCreatePet(_ context.Context, clientID uint, name, breed, size string) (*models.Pet, error) {
	return &models.Pet{ID: 20, ClientID: clientID, Name: name, Breed: breed, Size: size}, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.created = ap
	return nil
}

func (f *fakeRepo) GetAppointmentForGroomer(_ context.Context, id, groomerID uint) (*models.Appointment, error) {
	ap, ok := f.byID[id]
	if !ok || ap.GroomerID != groomerID {
		return nil, errors.New("not found")
	}
	return ap, nil
}

func (f *fakeRepo) GetAppointmentByCode(_ context.Context, code string) (*models.Appointment, error) {
	ap, ok := f.byCode[code]
	if !ok {
		return nil, errors.New("not found")
	}
	return ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated = ap
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, _ uint, _, _ time.Time) ([]models.Appointment, error) {
	return f.appointments, nil
}

// schedule.Reader

func (f *fakeRepo) GetBusinessHoursForDay(_ context.Context, _ uint, weekday int) (*models.BusinessHours, error) {
	return f.hours[weekday], nil
}

func (f *fakeRepo) GetBlockedTimes(_ context.Context, _ uint) ([]models.BlockedTime, error) {
	return f.blocks, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, _ uint, _, _ time.Time) ([]models.Appointment, error) {
	return f.appointments, nil
}

func silentDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

// ======================================================
// TESTES — GetAvailability
// ======================================================

// terça-feira, 10 de março de 2026
var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestGetAvailability_ServiceNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, schedule.NewEngine(repo))

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID: 1, GroomerID: 1, ServiceID: 99, Date: testDate,
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailability_InvalidDuration(t *testing.T) {
	repo := newFakeRepo()
	repo.services[5] = &models.GroomService{ID: 5, DurationMin: 0}
	uc := NewGetAvailability(repo, schedule.NewEngine(repo))

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID: 1, GroomerID: 1, ServiceID: 5, Date: testDate,
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_service_duration"))
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo := newFakeRepo()
	repo.services[5] = &models.GroomService{ID: 5, DurationMin: 60}
	uc := NewGetAvailability(repo, schedule.NewEngine(repo))

	out, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID: 1, GroomerID: 1, ServiceID: 5, Date: testDate,
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", out.Date)
	assert.False(t, out.IsOpen)
	assert.Empty(t, out.Slots)
	assert.Zero(t, out.AvailableCount)
	assert.NotNil(t, out.Slots, "slots fechado serializa como [], não null")
}

func TestGetAvailability_OpenDayCountsAvailable(t *testing.T) {
	repo := newFakeRepo()
	// fuso UTC para casar os agendamentos fake com os horários da janela
	repo.salon.Timezone = "UTC"
	repo.services[5] = &models.GroomService{ID: 5, DurationMin: 60}
	repo.hours[2] = &models.BusinessHours{Weekday: 2, OpenTime: "09:00", CloseTime: "12:00"}
	repo.appointments = []models.Appointment{
		{StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			EndTime: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			Status:  "confirmed"},
	}

	uc := NewGetAvailability(repo, schedule.NewEngine(repo))

	out, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID: 1, GroomerID: 1, ServiceID: 5, Date: testDate,
	})

	require.NoError(t, err)
	assert.True(t, out.IsOpen)

	// candidatos: 09:00 09:30 10:00 10:30 11:00 — os dois primeiros cruzam
	// o agendamento das 09:00–10:00
	require.Len(t, out.Slots, 5)
	assert.False(t, out.Slots[0].Available)
	assert.False(t, out.Slots[1].Available)
	assert.True(t, out.Slots[2].Available)
	assert.Equal(t, 3, out.AvailableCount)
}
