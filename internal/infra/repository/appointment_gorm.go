package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/appointment"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/schedule"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.GroomService, error) {

	var service models.GroomService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Client / Pet
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *AppointmentGormRepository) GetOrCreatePet(
	ctx context.Context,
	clientID uint,
	name string,
	breed string,
	size string,
) (*models.Pet, error) {

	var pet models.Pet
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND LOWER(name) = LOWER(?)", clientID, name).
		First(&pet).Error

	if err == nil {
		return &pet, nil
	}

	pet = models.Pet{
		ClientID: clientID,
		Name:     name,
		Breed:    breed,
		Size:     size,
	}

	if err := r.db.WithContext(ctx).Create(&pet).Error; err != nil {
		return nil, err
	}

	return &pet, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

// CreateAppointment revalida o conflito dentro da transação, com lock nas
// linhas concorrentes. Se duas conexões passarem ao mesmo tempo, a
// constraint de exclusão do Postgres barra a segunda — os dois caminhos
// viram BusinessError("time_conflict").
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"groomer_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
				ap.GroomerID,
				ap.EndTime,
				ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}

	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForGroomer(
	ctx context.Context,
	appointmentID uint,
	groomerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND groomer_id = ?", appointmentID, groomerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByCode(
	ctx context.Context,
	publicCode string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("GroomService").
		Where("public_code = ?", publicCode).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	groomerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var appointments []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pet").
		Preload("GroomService").
		Where(
			"groomer_id = ? AND start_time >= ? AND start_time < ?",
			groomerID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&appointments).Error

	if err != nil {
		return nil, err
	}

	return appointments, nil
}

// --------------------------------------------------
// schedule.Reader (contrato de leitura da agenda)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessHoursForDay(
	ctx context.Context,
	salonID uint,
	weekday int,
) (*models.BusinessHours, error) {

	var rule models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday).
		First(&rule).Error; err != nil {
		return nil, err
	}

	return &rule, nil
}

func (r *AppointmentGormRepository) GetBlockedTimes(
	ctx context.Context,
	salonID uint,
) ([]models.BlockedTime, error) {

	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	groomerID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"groomer_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			groomerID, dayEnd, dayStart,
		).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	return appointments, nil
}

// Compile-time checks
var _ domain.Repository = (*AppointmentGormRepository)(nil)
var _ schedule.Reader = (*AppointmentGormRepository)(nil)
