package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinic-api/internal/models"
)

type patientRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewPatientRepository creates a patient repository over the shared
// database handle.
func NewPatientRepository(db *mongo.Database, logger *zap.Logger) PatientRepository {
	return &patientRepository{
		col:    db.Collection("patients"),
		logger: logger,
	}
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	now := time.Now()
	patient.ID = primitive.NewObjectID()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, patient); err != nil {
		r.logger.Error("failed to insert patient", zap.Error(err))
		return nil, err
	}
	return patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	var patient models.Patient
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Patient, error) {
	set["updatedAt"] = time.Now()

	var patient models.Patient
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to update patient", zap.String("id", id.Hex()), zap.Error(err))
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
