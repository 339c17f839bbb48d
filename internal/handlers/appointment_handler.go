package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httpresp"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/middleware"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/usecase/appointment"
)

// ======================================================
// HANDLER — agenda do profissional (rotas autenticadas)
// ======================================================

type AppointmentHandler struct {
	create      *appointment.CreateAppointment
	confirm     *appointment.ConfirmAppointment
	cancel      *appointment.CancelAppointment
	complete    *appointment.CompleteAppointment
	noShow      *appointment.MarkNoShow
	listByDate  *appointment.ListAppointmentsByDate
	listByMonth *appointment.ListAppointmentsByMonth
	getSlots    *appointment.GetAvailability
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	confirm *appointment.ConfirmAppointment,
	cancel *appointment.CancelAppointment,
	complete *appointment.CompleteAppointment,
	noShow *appointment.MarkNoShow,
	listByDate *appointment.ListAppointmentsByDate,
	listByMonth *appointment.ListAppointmentsByMonth,
	getSlots *appointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		confirm:     confirm,
		cancel:      cancel,
		complete:    complete,
		noShow:      noShow,
		listByDate:  listByDate,
		listByMonth: listByMonth,
		getSlots:    getSlots,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	PetName  string `json:"pet_name" binding:"required"`
	PetBreed string `json:"pet_breed"`
	PetSize  string `json:"pet_size"`

	ServiceID uint `json:"service_id" binding:"required"`

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:mm
	Notes string `json:"notes"`
}

// --------- Helpers ---------

func identityFromContext(c *gin.Context) (salonID uint, userID uint) {
	salonVal, _ := c.Get(middleware.ContextSalonID)
	userVal, _ := c.Get(middleware.ContextUserID)
	return salonVal.(uint), userVal.(uint)
}

// writeBusinessError traduz erro de negócio em status HTTP. Qualquer
// outro erro vira 500 genérico (sem vazar detalhe de infraestrutura).
func writeBusinessError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Horário já ocupado por outro agendamento.")
	case httperr.IsBusiness(err, "slot_unavailable"):
		httperr.Conflict(c, "slot_unavailable", "Horário indisponível.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Transição de status inválida para este agendamento.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Agendamento exige antecedência mínima.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou horário inválidos.")
	case httperr.IsBusiness(err, "invalid_service_duration"):
		httperr.BadRequest(c, "invalid_service_duration", "Serviço com duração inválida.")
	default:
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Requisição inválida.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID, userID := identityFromContext(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		SalonID:     salonID,
		GroomerID:   userID,
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

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID, userID := identityFromContext(c)

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Parâmetro date inválido (esperado YYYY-MM-DD).")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), userID, salonID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID, userID := identityFromContext(c)

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Parâmetros year/month inválidos.")
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), userID, salonID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	salonID, userID := identityFromContext(c)

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

	result, err := h.getSlots.Execute(c.Request.Context(), appointment.AvailabilityInput{
		SalonID:   salonID,
		GroomerID: userID,
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(salonID, userID, apID uint) (any, error) {
		return h.confirm.Execute(c.Request.Context(), salonID, userID, apID)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(salonID, userID, apID uint) (any, error) {
		return h.cancel.Execute(c.Request.Context(), salonID, userID, apID)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(salonID, userID, apID uint) (any, error) {
		return h.complete.Execute(c.Request.Context(), salonID, userID, apID)
	})
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, func(salonID, userID, apID uint) (any, error) {
		return h.noShow.Execute(c.Request.Context(), salonID, userID, apID)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(salonID, userID, apID uint) (any, error),
) {
	salonID, userID := identityFromContext(c)

	apID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID do agendamento inválido.")
		return
	}

	ap, err := run(salonID, userID, uint(apID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
