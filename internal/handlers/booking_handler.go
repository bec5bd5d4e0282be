package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/validation"
)

// CreateBooking handles POST /bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.Bookings.Create(c.Request.Context(), req.ToBooking())
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   booking,
	})
}

// GetAllBookings handles GET /bookings, with the patient reference
// expanded.
func (h *Handler) GetAllBookings(c *gin.Context) {
	bookings, err := h.Bookings.FindAll(c.Request.Context())
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(bookings),
		"data":    bookings,
	})
}

// GetBooking handles GET /bookings/:id.
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.Bookings.FindByID(c.Request.Context(), id)
	if err != nil {
		h.repoError(c, err, "No booking found with that ID")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   booking,
	})
}

// UpdateBooking handles PATCH /bookings/:id.
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.BookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	}

	fields := req.Fields()
	if len(fields) == 0 {
		booking, err := h.Bookings.FindByID(c.Request.Context(), id)
		if err != nil {
			h.repoError(c, err, "No booking found with that ID")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
		return
	}

	booking, err := h.Bookings.UpdateByID(c.Request.Context(), id, fields)
	if err != nil {
		h.repoError(c, err, "No booking found with that ID")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   booking,
	})
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Bookings.DeleteByID(c.Request.Context(), id); err != nil {
		h.repoError(c, err, "No booking found with that ID")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBookingsByDate handles POST /bookings/date: every booking on the
// given calendar day, ascending by appointment time.
func (h *Handler) GetBookingsByDate(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" {
		respondFailed(c, http.StatusBadRequest, "Please provide a date (YYYY-MM-DD)")
		return
	}

	day, err := models.ParseDate(req.Date)
	if err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	bookings, err := h.Bookings.FindByDay(c.Request.Context(), day.Time)
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(bookings),
		"data":   bookings,
	})
}
