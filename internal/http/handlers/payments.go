package handlers

import (
	"net/http"
	"time"

	"travelsathi/internal/http/middleware"
	"travelsathi/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler serves the caller-scoped payment routes.
type PaymentHandler struct {
	Store store.Store
}

// GET /api/payments
func (h PaymentHandler) List(c *gin.Context) {
	payments, err := h.Store.FindWhere(c.Request.Context(), "payments", store.Query{
		Where:   map[string]any{"user_id": middleware.CallerID(c)},
		OrderBy: "payment_date",
		Desc:    true,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch payments", err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

type createPaymentRequest struct {
	BookingID     string  `json:"bookingId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// POST /api/payments
//
// Status is always forced to SUCCESS and user_id to the caller. The booking
// id is recorded as given, without checking that the booking exists.
func (h PaymentHandler) Create(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	paymentID := uuid.NewString()
	_, err := h.Store.Insert(ctx, "payments", store.Record{
		"id":             paymentID,
		"booking_id":     req.BookingID,
		"user_id":        middleware.CallerID(c),
		"amount":         req.Amount,
		"payment_method": req.PaymentMethod,
		"payment_date":   time.Now().UTC(),
		"status":         "SUCCESS",
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process payment", err)
		return
	}

	payment, err := h.Store.FindByID(ctx, "payments", paymentID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process payment", err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}
