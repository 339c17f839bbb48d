package appointment

import (
	"context"
	"time"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.GroomService, error)

	// -------- Client / Pet --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	GetOrCreatePet(
		ctx context.Context,
		clientID uint,
		name string,
		breed string,
		size string,
	) (*models.Pet, error)

	// -------- Appointment (create) --------
	// CreateAppointment revalida conflito dentro da própria transação
	// (FOR UPDATE) antes de inserir; a constraint de exclusão do banco é o
	// guarda final. Conflito → BusinessError("time_conflict").
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForGroomer(
		ctx context.Context,
		appointmentID uint,
		groomerID uint,
	) (*models.Appointment, error)

	GetAppointmentByCode(
		ctx context.Context,
		publicCode string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		groomerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
