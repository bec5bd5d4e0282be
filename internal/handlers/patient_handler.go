package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/validation"
)

// CreatePatient handles POST /patients.
func (h *Handler) CreatePatient(c *gin.Context) {
	var req models.PatientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	}

	patient, err := h.Patients.Create(c.Request.Context(), req.ToPatient())
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"patient": patient},
	})
}

// GetAllPatients handles GET /patients.
func (h *Handler) GetAllPatients(c *gin.Context) {
	patients, err := h.Patients.FindAll(c.Request.Context())
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(patients),
		"data":    gin.H{"patients": patients},
	})
}

// GetPatient handles GET /patients/:id.
func (h *Handler) GetPatient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	patient, err := h.Patients.FindByID(c.Request.Context(), id)
	if err != nil {
		h.repoError(c, err, "No patient found with that ID")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"patient": patient},
	})
}

// UpdatePatient handles PATCH /patients/:id.
func (h *Handler) UpdatePatient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.PatientUpdateRequest
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
		// Nothing to change; behave like a read so the caller still gets
		// the post-update state.
		patient, err := h.Patients.FindByID(c.Request.Context(), id)
		if err != nil {
			h.repoError(c, err, "No patient found with that ID")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"patient": patient}})
		return
	}

	patient, err := h.Patients.UpdateByID(c.Request.Context(), id, fields)
	if err != nil {
		h.repoError(c, err, "No patient found with that ID")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"patient": patient},
	})
}

// DeletePatient handles DELETE /patients/:id.
func (h *Handler) DeletePatient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Patients.DeleteByID(c.Request.Context(), id); err != nil {
		h.repoError(c, err, "No patient found with that ID")
		return
	}

	c.Status(http.StatusNoContent)
}
