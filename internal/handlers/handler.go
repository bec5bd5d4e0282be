package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinic-api/internal/config"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

// Handler carries the repositories and configuration every endpoint needs.
type Handler struct {
	Patients  repository.PatientRepository
	Bookings  repository.BookingRepository
	Surgeries repository.SurgeryRepository
	Users     repository.UserRepository
	Config    *config.Config
	Logger    *zap.Logger
}

// NewHandler builds the handler set over the shared repositories.
func NewHandler(
	patients repository.PatientRepository,
	bookings repository.BookingRepository,
	surgeries repository.SurgeryRepository,
	users repository.UserRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Patients:  patients,
		Bookings:  bookings,
		Surgeries: surgeries,
		Users:     users,
		Config:    cfg,
		Logger:    logger,
	}
}

func respondFailed(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "failed",
		"message": message,
	})
}

// repoError maps a repository failure to the response taxonomy: not-found
// becomes a 404 with the resource message, anything else a 500.
func (h *Handler) repoError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, repository.ErrNotFound) {
		respondFailed(c, http.StatusNotFound, notFoundMessage)
		return
	}
	h.Logger.Error("storage operation failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	respondFailed(c, http.StatusInternalServerError, "Internal server error")
}

// pathID parses the :id path segment. A malformed identifier is a client
// error, not a lookup miss.
func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid ID format")
		return primitive.NilObjectID, false
	}
	return id, true
}
