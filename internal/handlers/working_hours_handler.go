package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/httpresp"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

// --------- Requests ---------

type WorkingHoursEntry struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	Active     bool   `json:"active"`
}

type PutWorkingHoursRequest struct {
	Entries []WorkingHoursEntry `json:"entries" binding:"required,dive"`
}

// --------- Handlers ---------

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID := c.Param("id")

	if err := h.ensureBarber(c, barberID); err != nil {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_list_working_hours", "Erro ao listar horários.")
		return
	}

	httpresp.List(c, hours)
}

// Put substitui a agenda semanal inteira do barbeiro de uma vez.
func (h *WorkingHoursHandler) Put(c *gin.Context) {
	barberID := c.Param("id")

	if err := h.ensureBarber(c, barberID); err != nil {
		return
	}

	var req PutWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := make(map[int]bool, len(req.Entries))
	for _, e := range req.Entries {
		if seen[e.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "Dia da semana repetido.")
			return
		}
		seen[e.Weekday] = true

		if !validHM(e.StartTime) || !validHM(e.EndTime) {
			httperr.BadRequest(c, "invalid_time", "Horário deve estar no formato HH:MM.")
			return
		}
		if e.StartTime >= e.EndTime {
			httperr.BadRequest(c, "invalid_range", "Início deve ser antes do fim.")
			return
		}
		if (e.LunchStart == "") != (e.LunchEnd == "") {
			httperr.BadRequest(c, "invalid_lunch", "Almoço precisa de início e fim.")
			return
		}
		if e.LunchStart != "" {
			if !validHM(e.LunchStart) || !validHM(e.LunchEnd) {
				httperr.BadRequest(c, "invalid_time", "Horário deve estar no formato HH:MM.")
				return
			}
			if e.LunchStart >= e.LunchEnd || e.LunchStart < e.StartTime || e.LunchEnd > e.EndTime {
				httperr.BadRequest(c, "invalid_lunch", "Almoço deve caber dentro do expediente.")
				return
			}
		}
	}

	hours := make([]models.WorkingHours, 0, len(req.Entries))
	for _, e := range req.Entries {
		hours = append(hours, models.WorkingHours{
			BarberID:   barberID,
			Weekday:    e.Weekday,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			LunchStart: e.LunchStart,
			LunchEnd:   e.LunchEnd,
			Active:     e.Active,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar horários.")
		return
	}

	httpresp.List(c, hours)
}

// --------- helpers ---------

func (h *WorkingHoursHandler) ensureBarber(c *gin.Context, id string) error {
	var barber models.Barber
	if err := h.db.Select("id").First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Barbeiro não encontrado.")
			return err
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return err
	}
	return nil
}

func validHM(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
