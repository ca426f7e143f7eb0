package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/models"
	"github.com/barbearia-app/barbearia-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewDashboardHandler(db *gorm.DB, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{db: db, loc: loc}
}

func (h *DashboardHandler) Metrics(c *gin.Context) {
	appointments, barbers, services, err := h.loadAll()
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar o painel.")
		return
	}

	now := time.Now().In(h.loc)
	c.JSON(http.StatusOK, dashboard.Compute(now, appointments, barbers, services))
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	appointments, barbers, services, err := h.loadAll()
	if err != nil {
		httperr.Internal(c, "failed_to_load_revenue", "Erro ao carregar o faturamento.")
		return
	}

	now := time.Now().In(h.loc)
	c.JSON(http.StatusOK, dashboard.MonthlyRevenue(now, appointments, barbers, services))
}

func (h *DashboardHandler) loadAll() ([]models.Appointment, []models.Barber, []models.Service, error) {
	var appointments []models.Appointment
	if err := h.db.Find(&appointments).Error; err != nil {
		return nil, nil, nil, err
	}

	var barbers []models.Barber
	if err := h.db.Find(&barbers).Error; err != nil {
		return nil, nil, nil, err
	}

	var services []models.Service
	if err := h.db.Find(&services).Error; err != nil {
		return nil, nil, nil, err
	}

	return appointments, barbers, services, nil
}
