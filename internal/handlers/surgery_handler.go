package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/repository"
	"github.com/clinicdesk/clinic-api/internal/validation"
)

// CreateSurgery handles POST /surgery.
func (h *Handler) CreateSurgery(c *gin.Context) {
	var req models.SurgeryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	}

	surgery, err := h.Surgeries.Create(c.Request.Context(), req.ToSurgery())
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   surgery,
	})
}

// GetAllSurgeries handles GET /surgery with optional status and patient
// query filters, newest first, patient expanded.
func (h *Handler) GetAllSurgeries(c *gin.Context) {
	filter := repository.SurgeryFilter{Status: c.Query("status")}

	if patient := c.Query("patient"); patient != "" {
		id, err := primitive.ObjectIDFromHex(patient)
		if err != nil {
			respondFailed(c, http.StatusBadRequest, "Patient must be a valid MongoDB ObjectId")
			return
		}
		filter.Patient = &id
	}

	surgeries, err := h.Surgeries.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(surgeries),
		"data":   surgeries,
	})
}

// GetSurgery handles GET /surgery/:id.
func (h *Handler) GetSurgery(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	surgery, err := h.Surgeries.FindByID(c.Request.Context(), id)
	if err != nil {
		h.repoError(c, err, "Surgery not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   surgery,
	})
}

// UpdateSurgery handles PATCH /surgery/:id.
func (h *Handler) UpdateSurgery(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.SurgeryUpdateRequest
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
		surgery, err := h.Surgeries.FindByID(c.Request.Context(), id)
		if err != nil {
			h.repoError(c, err, "Surgery not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": surgery})
		return
	}

	surgery, err := h.Surgeries.UpdateByID(c.Request.Context(), id, fields)
	if err != nil {
		h.repoError(c, err, "Surgery not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   surgery,
	})
}

// DeleteSurgery handles DELETE /surgery/:id. This endpoint has always
// answered 200 with a message rather than 204.
func (h *Handler) DeleteSurgery(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Surgeries.DeleteByID(c.Request.Context(), id); err != nil {
		h.repoError(c, err, "Surgery not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Surgery deleted successfully",
	})
}

// GetSurgeriesByPatient handles GET /surgery/patient/:patientId. An
// unknown patient yields an empty list, not a 404.
func (h *Handler) GetSurgeriesByPatient(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("patientId"))
	if err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	surgeries, err := h.Surgeries.FindByPatient(c.Request.Context(), patientID)
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(surgeries),
		"data":   surgeries,
	})
}
