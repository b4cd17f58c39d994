package handlers

import (
	"net/http"

	"travelsathi/internal/store"

	"github.com/gin-gonic/gin"
)

// LocationHandler serves the read-only reference list of cities.
type LocationHandler struct {
	Store store.Store
}

// GET /api/locations responds with a flat array of location names.
func (h LocationHandler) List(c *gin.Context) {
	locations, err := h.Store.FindAll(c.Request.Context(), "locations")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch locations", err)
		return
	}

	names := make([]string, 0, len(locations))
	for _, loc := range locations {
		names = append(names, store.AsString(loc["name"]))
	}
	c.JSON(http.StatusOK, names)
}
