package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/cache"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/calendar"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/usecase/appointment"
)

// ======================================================
// HANDLER — vitrine pública (sem autenticação)
// ======================================================

type PublicHandler struct {
	db           *gorm.DB
	catalog      *cache.Catalog
	getSlots     *appointment.GetAvailability
	create       *appointment.CreateAppointment
	cancelByCode *appointment.CancelByCode
}

func NewPublicHandler(
	db *gorm.DB,
	catalog *cache.Catalog,
	getSlots *appointment.GetAvailability,
	create *appointment.CreateAppointment,
	cancelByCode *appointment.CancelByCode,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		catalog:      catalog,
		getSlots:     getSlots,
		create:       create,
		cancelByCode: cancelByCode,
	}
}

// --------- Requests ---------

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	PetName  string `json:"pet_name" binding:"required"`
	PetBreed string `json:"pet_breed"`
	PetSize  string `json:"pet_size"`

	ServiceID uint `json:"service_id" binding:"required"`
	GroomerID uint `json:"groomer_id"` // opcional — default: dono do salão

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:mm
	Notes string `json:"notes"`
}

// --------- Helpers ---------

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return nil, false
	}
	return &salon, true
}

// resolveGroomer escolhe o profissional da agenda: o informado (desde que
// do salão) ou o primeiro usuário cadastrado (dono).
func (h *PublicHandler) resolveGroomer(salonID uint, groomerID uint) (uint, error) {
	var user models.User

	q := h.db.Where("salon_id = ?", salonID)
	if groomerID != 0 {
		q = q.Where("id = ?", groomerID)
	} else {
		q = q.Order("id ASC")
	}

	if err := q.First(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// --------- Handlers ---------

func (h *PublicHandler) GetSalon(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      salon.ID,
		"name":    salon.Name,
		"slug":    salon.Slug,
		"phone":   salon.Phone,
		"address": salon.Address,
	})
}

// ListServices serve a vitrine de serviços ativos, com cache por slug.
func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	services, hit := h.catalog.GetServices(ctx, salon.Slug)
	if !hit {
		if err := h.db.
			Where("salon_id = ? AND active = true", salon.ID).
			Order("category ASC, id ASC").
			Find(&services).Error; err != nil {
			httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
			return
		}
		h.catalog.SetServices(ctx, salon.Slug, services)
	}

	out := make([]gin.H, 0, len(services))
	for _, s := range services {
		out = append(out, gin.H{
			"id":             s.ID,
			"name":           s.Name,
			"description":    s.Description,
			"duration_min":   s.DurationMin,
			"duration_label": calendar.FormatDuration(s.DurationMin),
			"price":          s.Price,
			"price_label":    calendar.FormatPrice(s.Price),
			"category":       s.Category,
		})
	}

	c.JSON(http.StatusOK, out)
}

// GetAvailability responde o contrato consumido pelo cliente web:
//
//	{ "date": "...", "isOpen": bool, "slots": [...], "availableCount": n }
//
// Parâmetros date e serviceId obrigatórios; serviço inexistente é 404.
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("serviceId")
	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Parâmetros date e serviceId são obrigatórios.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Parâmetro date inválido (esperado YYYY-MM-DD).")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Parâmetro serviceId inválido.")
		return
	}

	groomerID, err := h.resolveGroomer(salon.ID, 0)
	if err != nil {
		httperr.Internal(c, "failed_to_resolve_groomer", "Erro ao resolver profissional.")
		return
	}

	result, err := h.getSlots.Execute(c.Request.Context(), appointment.AvailabilityInput{
		SalonID:   salon.ID,
		GroomerID: groomerID,
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	groomerID, err := h.resolveGroomer(salon.ID, req.GroomerID)
	if err != nil {
		httperr.BadRequest(c, "groomer_not_found", "Profissional não encontrado.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		SalonID:     salon.ID,
		GroomerID:   groomerID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		PetName:     req.PetName,
		PetBreed:    req.PetBreed,
		PetSize:     req.PetSize,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"public_code": ap.PublicCode,
		"start_time":  ap.StartTime,
		"end_time":    ap.EndTime,
		"status":      ap.Status,
	})
}

// GetAppointmentByCode deixa o tutor conferir o agendamento sem login.
// O código é escopado ao salão da URL — código de outro salão é 404.
func (h *PublicHandler) GetAppointmentByCode(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}
	code := c.Param("code")

	var ap models.Appointment
	if err := h.db.
		Preload("Salon").
		Preload("Pet").
		Preload("GroomService").
		Where("public_code = ? AND salon_id = ?", code, salon.ID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_code":  ap.PublicCode,
		"salon_name":   ap.Salon.Name,
		"pet_name":     ap.Pet.Name,
		"service_name": ap.GroomService.Name,
		"start_time":   ap.StartTime,
		"end_time":     ap.EndTime,
		"status":       ap.Status,
	})
}

func (h *PublicHandler) CancelByCode(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}
	code := c.Param("code")

	var count int64
	h.db.Model(&models.Appointment{}).
		Where("public_code = ? AND salon_id = ?", code, salon.ID).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	ap, err := h.cancelByCode.Execute(c.Request.Context(), code)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_code": ap.PublicCode,
		"status":      ap.Status,
	})
}
