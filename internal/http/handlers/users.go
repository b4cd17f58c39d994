package handlers

import (
	"net/http"

	"travelsathi/internal/store"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the admin-only user listing.
type UserHandler struct {
	Store store.Store
}

// GET /api/users (admin). The stored password hash is stripped from every
// record before it leaves the server.
func (h UserHandler) List(c *gin.Context) {
	users, err := h.Store.FindAll(c.Request.Context(), "users")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch users", err)
		return
	}

	for _, user := range users {
		delete(user, "password")
	}
	c.JSON(http.StatusOK, users)
}
