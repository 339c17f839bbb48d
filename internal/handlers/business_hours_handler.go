package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/httperr"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/middleware"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

type BusinessHoursHandler struct {
	db *gorm.DB
}

func NewBusinessHoursHandler(db *gorm.DB) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db}
}

type BusinessHoursEntry struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Closed    bool   `json:"closed"`
}

type UpdateBusinessHoursRequest struct {
	Hours []BusinessHoursEntry `json:"hours" binding:"required"`
}

// Get devolve as 7 regras (domingo..sábado). Dias sem regra gravada
// aparecem como fechados — ausência de regra = fechado.
func (h *BusinessHoursHandler) Get(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var rows []models.BusinessHours
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_get_hours", "Erro ao buscar horários de funcionamento.")
		return
	}

	byDay := make(map[int]models.BusinessHours, len(rows))
	for _, r := range rows {
		byDay[r.Weekday] = r
	}

	out := make([]BusinessHoursEntry, 0, 7)
	for d := 0; d < 7; d++ {
		if r, ok := byDay[d]; ok {
			out = append(out, BusinessHoursEntry{
				Weekday:   r.Weekday,
				OpenTime:  r.OpenTime,
				CloseTime: r.CloseTime,
				Closed:    r.Closed,
			})
			continue
		}
		out = append(out, BusinessHoursEntry{Weekday: d, Closed: true})
	}

	c.JSON(http.StatusOK, gin.H{"hours": out})
}

// Update substitui a grade inteira de uma vez (upsert por dia), dentro
// de uma transação. Validação: weekday 0..6, sem dia repetido e, para
// dia aberto, open < close no formato HH:MM.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var req UpdateBusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := make(map[int]bool, 7)
	for _, entry := range req.Hours {
		if entry.Weekday < 0 || entry.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana deve estar entre 0 (domingo) e 6 (sábado).")
			return
		}
		if seen[entry.Weekday] {
			httperr.BadRequest(c, "duplicated_weekday", "Dia da semana repetido na grade.")
			return
		}
		seen[entry.Weekday] = true

		if entry.Closed {
			continue
		}

		open, err := time.Parse("15:04", entry.OpenTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_open_time", "Horário de abertura inválido (esperado HH:MM).")
			return
		}
		closeT, err := time.Parse("15:04", entry.CloseTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_close_time", "Horário de fechamento inválido (esperado HH:MM).")
			return
		}
		if !open.Before(closeT) {
			httperr.BadRequest(c, "invalid_time_range", "Abertura deve ser antes do fechamento.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Hours {
			var row models.BusinessHours
			err := tx.
				Where("salon_id = ? AND weekday = ?", salonID, entry.Weekday).
				First(&row).Error

			if err == gorm.ErrRecordNotFound {
				row = models.BusinessHours{
					SalonID: salonID,
					Weekday: entry.Weekday,
				}
			} else if err != nil {
				return err
			}

			row.OpenTime = entry.OpenTime
			row.CloseTime = entry.CloseTime
			row.Closed = entry.Closed

			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_hours", "Erro ao salvar horários de funcionamento.")
		return
	}

	h.Get(c)
}
