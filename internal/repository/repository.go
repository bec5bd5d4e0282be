// Package repository is the persistence boundary: one repository per
// entity over a shared *mongo.Database. References stay opaque ObjectIDs
// at rest and are expanded into patient summaries only on read, via
// $lookup.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinic-api/internal/models"
)

// ErrNotFound is returned when no record exists for the given identifier.
// Handlers map it to a 404.
var ErrNotFound = errors.New("record not found")

// PatientRepository persists clinical subject profiles.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Patient, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// BookingRepository persists appointment records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByDay(ctx context.Context, day time.Time) ([]models.Booking, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Booking, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// SurgeryFilter restricts a surgery listing by lifecycle status and/or
// patient reference.
type SurgeryFilter struct {
	Status  string
	Patient *primitive.ObjectID
}

// SurgeryRepository persists procedure records.
type SurgeryRepository interface {
	Create(ctx context.Context, surgery *models.Surgery) (*models.Surgery, error)
	FindAll(ctx context.Context, filter SurgeryFilter) ([]models.Surgery, error)
	FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Surgery, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Surgery, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Surgery, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository persists operator accounts. Implementations hash the
// password field on every create or update that sets it, so plaintext
// never reaches storage.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error)
}

// DayWindow returns the half-open bounds [00:00:00.000, 23:59:59.999] of
// the calendar day containing t, in t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// lookupPatient is the aggregation tail shared by booking and surgery
// reads: expand the patient reference into an embedded summary, keeping
// records whose reference is unset or dangling.
func lookupPatient() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "patients",
			"localField":   "patient",
			"foreignField": "_id",
			"as":           "patientDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$patientDetails",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}
