package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinic-api/internal/export"
)

func (h *Handler) sendWorkbook(c *gin.Context, f *excelize.File, name string) {
	defer f.Close()

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		h.Logger.Error("failed to stream workbook", zap.String("file", name), zap.Error(err))
	}
}

// ExportBookings handles GET /export/bookings/:token.
func (h *Handler) ExportBookings(c *gin.Context) {
	bookings, err := h.Bookings.FindAll(c.Request.Context())
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	f, err := export.BookingsWorkbook(bookings)
	if err != nil {
		h.Logger.Error("failed to build bookings workbook", zap.Error(err))
		respondFailed(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.sendWorkbook(c, f, "bookings")
}

// ExportPatients handles GET /export/patients/:token.
func (h *Handler) ExportPatients(c *gin.Context) {
	patients, err := h.Patients.FindAll(c.Request.Context())
	if err != nil {
		h.repoError(c, err, "")
		return
	}

	f, err := export.PatientsWorkbook(patients)
	if err != nil {
		h.Logger.Error("failed to build patients workbook", zap.Error(err))
		respondFailed(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.sendWorkbook(c, f, "patients")
}
