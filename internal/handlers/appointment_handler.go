package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-app/barbearia-api/internal/cache"
	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/httpresp"
	"github.com/barbearia-app/barbearia-api/internal/middleware"
	ucAppointment "github.com/barbearia-app/barbearia-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	transitionUC *ucAppointment.TransitionAppointment
	rateUC       *ucAppointment.RateAppointment
	deleteUC     *ucAppointment.DeleteAppointment
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth

	mirror *cache.Mirror
	loc    *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	transitionUC *ucAppointment.TransitionAppointment,
	rateUC *ucAppointment.RateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	mirror *cache.Mirror,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		rateUC:       rateUC,
		deleteUC:     deleteUC,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		mirror:       mirror,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	BarberID  string `json:"barber_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type RatingRequest struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		AccountID: accountID,
		ClientID:  req.ClientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.mirror.Put(c.Request.Context(), cache.CollectionAppointments, ap.ID, ap)

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDateIn(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	aps, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	aps, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)
	id := c.Param("id")

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.transitionUC.Execute(c.Request.Context(), ucAppointment.TransitionAppointmentInput{
		AccountID:     accountID,
		AppointmentID: id,
		Target:        domain.Status(req.Status),
		Note:          req.Note,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		return
	}

	h.mirror.Put(c.Request.Context(), cache.CollectionAppointments, ap.ID, ap)

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// RATING
// ======================================================

func (h *AppointmentHandler) Rate(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)
	id := c.Param("id")

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rateUC.Execute(c.Request.Context(), ucAppointment.RateAppointmentInput{
		AccountID:     accountID,
		AppointmentID: id,
		Score:         req.Score,
		Comment:       req.Comment,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_rate_appointment", "Erro ao avaliar agendamento.")
		return
	}

	h.mirror.Put(c.Request.Context(), cache.CollectionAppointments, ap.ID, ap)

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)
	id := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), accountID, id); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	h.mirror.Remove(c.Request.Context(), cache.CollectionAppointments, id)

	c.Status(http.StatusNoContent)
}
