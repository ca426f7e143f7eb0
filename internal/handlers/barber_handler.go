package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-app/barbearia-api/internal/cache"
	domain "github.com/barbearia-app/barbearia-api/internal/domain/appointment"
	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/httpresp"
	"github.com/barbearia-app/barbearia-api/internal/media"
	"github.com/barbearia-app/barbearia-api/internal/models"
	ucAppointment "github.com/barbearia-app/barbearia-api/internal/usecase/appointment"
)

type BarberHandler struct {
	db           *gorm.DB
	mirror       *cache.Mirror
	images       *media.ImageStore
	availability *ucAppointment.GetAvailability
	loc          *time.Location
}

func NewBarberHandler(
	db *gorm.DB,
	mirror *cache.Mirror,
	images *media.ImageStore,
	availability *ucAppointment.GetAvailability,
	loc *time.Location,
) *BarberHandler {
	return &BarberHandler{
		db:           db,
		mirror:       mirror,
		images:       images,
		availability: availability,
		loc:          loc,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name       string   `json:"name" binding:"required"`
	Specialty  string   `json:"specialty"`
	Available  *bool    `json:"available"`
	ServiceIDs []string `json:"service_ids"`
}

type UpdateBarberRequest struct {
	Name       *string   `json:"name,omitempty"`
	Specialty  *string   `json:"specialty,omitempty"`
	Available  *bool     `json:"available,omitempty"`
	ServiceIDs *[]string `json:"service_ids,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Preload("Services")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(specialty) LIKE ?", like, like)
	}

	var barbers []models.Barber
	if err := q.
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	services, err := h.loadServices(req.ServiceIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_service"})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	barber := models.Barber{
		Name:      req.Name,
		Specialty: req.Specialty,
		Available: available,
		Services:  services,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	h.mirror.Put(c.Request.Context(), cache.CollectionBarbers, barber.ID, barber)

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.Preload("Services").First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Barbeiro não encontrado.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Specialty != nil {
		barber.Specialty = *req.Specialty
	}
	if req.Available != nil {
		barber.Available = *req.Available
	}

	res := h.db.Model(&models.Barber{}).
		Where("id = ? AND version = ?", barber.ID, barber.Version).
		Updates(map[string]any{
			"name":      barber.Name,
			"specialty": barber.Specialty,
			"available": barber.Available,
			"version":   barber.Version + 1,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber"})
		return
	}
	if res.RowsAffected == 0 {
		httperr.Write(c, http.StatusConflict, "version_conflict", "Registro alterado por outra operação.")
		return
	}
	barber.Version++

	if req.ServiceIDs != nil {
		services, err := h.loadServices(*req.ServiceIDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_service"})
			return
		}
		if err := h.db.Model(&barber).Association("Services").Replace(services); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber"})
			return
		}
		barber.Services = services
	}

	h.mirror.Put(c.Request.Context(), cache.CollectionBarbers, barber.ID, barber)

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Barber{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_barber"})
		return
	}

	h.mirror.Remove(c.Request.Context(), cache.CollectionBarbers, id)

	c.Status(http.StatusNoContent)
}

// --------- Horários livres ---------

func (h *BarberHandler) Availability(c *gin.Context) {
	id := c.Param("id")

	dateStr := c.Query("date")
	serviceID := c.Query("service_id")
	if dateStr == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço são obrigatórios.")
		return
	}

	date, err := parseDateIn(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  id,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// --------- Foto ---------

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media_disabled"})
		return
	}

	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Barbeiro não encontrado.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_photo"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_photo"})
		return
	}
	defer file.Close()

	url, err := h.images.Upload(
		c.Request.Context(),
		fmt.Sprintf("barbeiros/%s", barber.ID),
		file,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_photo"})
		return
	}

	res := h.db.Model(&models.Barber{}).
		Where("id = ? AND version = ?", barber.ID, barber.Version).
		Updates(map[string]any{
			"photo_url": url,
			"version":   barber.Version + 1,
		})
	if res.Error != nil || res.RowsAffected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber"})
		return
	}

	barber.PhotoURL = url
	barber.Version++
	h.mirror.Put(c.Request.Context(), cache.CollectionBarbers, barber.ID, barber)

	c.JSON(http.StatusOK, barber)
}

// --------- helpers ---------

func (h *BarberHandler) loadServices(ids []string) ([]models.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var services []models.Service
	if err := h.db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, gorm.ErrRecordNotFound
	}
	return services, nil
}
