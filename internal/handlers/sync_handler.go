package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-app/barbearia-api/internal/cache"
	"github.com/barbearia-app/barbearia-api/internal/httperr"
)

// SyncHandler entrega o snapshot de uma coleção espelhada no redis.
// O app usa isso para semear o cache local antes de operar offline.
type SyncHandler struct {
	mirror *cache.Mirror
}

func NewSyncHandler(mirror *cache.Mirror) *SyncHandler {
	return &SyncHandler{mirror: mirror}
}

func (h *SyncHandler) Snapshot(c *gin.Context) {
	collection := c.Param("collection")

	if !cache.IsKnownCollection(collection) {
		httperr.NotFound(c, "unknown_collection", "Coleção desconhecida.")
		return
	}

	records, err := h.mirror.Snapshot(c.Request.Context(), collection)
	if err != nil {
		httperr.Internal(c, "failed_to_read_snapshot", "Erro ao ler o snapshot.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"collection": collection,
		"records":    records,
	})
}
