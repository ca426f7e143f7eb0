package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-app/barbearia-api/internal/middleware"
	"github.com/barbearia-app/barbearia-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	var account models.Account
	if err := h.db.First(&account, "id = ?", accountID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": gin.H{
			"id":    account.ID,
			"name":  account.Name,
			"email": account.Email,
			"phone": account.Phone,
			"role":  account.Role,
		},
	})
}
