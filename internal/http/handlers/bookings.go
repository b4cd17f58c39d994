package handlers

import (
	"net/http"
	"time"

	"travelsathi/internal/docs"
	"travelsathi/internal/http/middleware"
	"travelsathi/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler serves the caller-scoped booking routes. Bookings are
// created CONFIRMED and never updated or cancelled through the API.
type BookingHandler struct {
	Store store.Store
}

// GET /api/bookings
func (h BookingHandler) List(c *gin.Context) {
	bookings, err := h.Store.FindWhere(c.Request.Context(), "bookings", store.Query{
		Where:   map[string]any{"user_id": middleware.CallerID(c)},
		OrderBy: "booking_date",
		Desc:    true,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type createBookingRequest struct {
	Type        string  `json:"type"`
	ItemID      int64   `json:"itemId"`
	NumPersons  int     `json:"numPersons"`
	TotalAmount float64 `json:"totalAmount"`
}

// POST /api/bookings
//
// user_id always comes from the verified token and status is always forced
// to CONFIRMED, whatever the request body carries. The referenced item id is
// not validated against the catalog.
func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	numPersons := req.NumPersons
	if numPersons == 0 {
		numPersons = 1
	}

	ctx := c.Request.Context()
	bookingID := uuid.NewString()
	_, err := h.Store.Insert(ctx, "bookings", store.Record{
		"id":           bookingID,
		"user_id":      middleware.CallerID(c),
		"type":         req.Type,
		"item_id":      req.ItemID,
		"num_persons":  numPersons,
		"total_amount": req.TotalAmount,
		"booking_date": time.Now().UTC(),
		"status":       "CONFIRMED",
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create booking", err)
		return
	}

	booking, err := h.Store.FindByID(ctx, "bookings", bookingID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/:id/receipt
//
// PDF receipt for the caller's own booking. Someone else's booking id
// answers 404, not 403.
func (h BookingHandler) Receipt(c *gin.Context) {
	booking, err := h.Store.FindByID(c.Request.Context(), "bookings", c.Param("id"))
	if err != nil {
		respondStoreError(c, "Booking not found", "Failed to fetch booking", err)
		return
	}
	if store.AsString(booking["user_id"]) != middleware.CallerID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	pdf, filename, err := docs.BookingReceipt(booking)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate receipt", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
