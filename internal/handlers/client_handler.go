package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-app/barbearia-api/internal/cache"
	"github.com/barbearia-app/barbearia-api/internal/httperr"
	"github.com/barbearia-app/barbearia-api/internal/httpresp"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

type ClientHandler struct {
	db     *gorm.DB
	mirror *cache.Mirror
}

func NewClientHandler(db *gorm.DB, mirror *cache.Mirror) *ClientHandler {
	return &ClientHandler{db: db, mirror: mirror}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clients"})
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client := models.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	h.mirror.Put(c.Request.Context(), cache.CollectionClients, client.ID, client)

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Cliente não encontrado.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	// Update guardado pela versão lida: perde quem chegar depois
	res := h.db.Model(&models.Client{}).
		Where("id = ? AND version = ?", client.ID, client.Version).
		Updates(map[string]any{
			"name":    client.Name,
			"phone":   client.Phone,
			"email":   client.Email,
			"version": client.Version + 1,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_client"})
		return
	}
	if res.RowsAffected == 0 {
		httperr.Write(c, http.StatusConflict, "version_conflict", "Registro alterado por outra operação.")
		return
	}

	client.Version++
	h.mirror.Put(c.Request.Context(), cache.CollectionClients, client.ID, client)

	c.JSON(http.StatusOK, client)
}

// Delete é idempotente: id inexistente responde 204 do mesmo jeito.
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Client{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_client"})
		return
	}

	h.mirror.Remove(c.Request.Context(), cache.CollectionClients, id)

	c.Status(http.StatusNoContent)
}
