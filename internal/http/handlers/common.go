package handlers

import (
	"errors"
	"log"
	"net/http"

	"travelsathi/internal/http/middleware"
	"travelsathi/internal/store"

	"github.com/gin-gonic/gin"
)

// respondError sends the generic error payload. Backend detail is logged
// server-side, never returned to the client.
func respondError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		log.Printf("[HTTP] request_id=%s %s: %v", middleware.GetRequestID(c), message, err)
	}
	c.JSON(status, gin.H{"error": message})
}

// respondStoreError maps a store failure to the error taxonomy: a missing
// record is a 404, anything else is a generic 500.
func respondStoreError(c *gin.Context, notFoundMsg, failMsg string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	respondError(c, http.StatusInternalServerError, failMsg, err)
}
