package handlers

import (
	"net/http"

	"travelsathi/internal/store"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the root banner and health probe.
type SystemHandler struct {
	Store store.Store
}

// GET /
func (h SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "TravelSathi Backend is running"})
}

// GET /api/health reports liveness and which storage mode was selected at
// startup.
func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": string(h.Store.Mode()),
	})
}
