package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httpresp"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/middleware"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

type BlockedTimeHandler struct {
	db *gorm.DB
}

func NewBlockedTimeHandler(db *gorm.DB) *BlockedTimeHandler {
	return &BlockedTimeHandler{db: db}
}

type CreateBlockedTimeRequest struct {
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
	Recurring *bool  `json:"recurring"`
	Date      string `json:"date"` // YYYY-MM-DD, só quando recurring = false
	Reason    string `json:"reason"`
}

func (h *BlockedTimeHandler) List(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var blocks []models.BlockedTime
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("recurring DESC, date ASC, start_time ASC").
		Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockedTimeHandler) Create(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var req CreateBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Horário inicial inválido (esperado HH:MM).")
		return
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "Horário final inválido (esperado HH:MM).")
		return
	}
	if !start.Before(end) {
		httperr.BadRequest(c, "invalid_time_range", "Início deve ser antes do fim.")
		return
	}

	recurring := true
	if req.Recurring != nil {
		recurring = *req.Recurring
	}

	// bloqueio pontual exige a data; bloqueio recorrente ignora
	if !recurring {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			httperr.BadRequest(c, "invalid_date", "Bloqueio não recorrente exige data válida (YYYY-MM-DD).")
			return
		}
	} else {
		req.Date = ""
	}

	block := models.BlockedTime{
		SalonID:   salonID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Recurring: recurring,
		Date:      req.Date,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	httpresp.Created(c, block)
}

func (h *BlockedTimeHandler) Delete(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.BlockedTime{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "block_not_found", "Bloqueio não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
