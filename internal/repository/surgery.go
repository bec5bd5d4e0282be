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

type surgeryRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewSurgeryRepository creates a surgery repository over the shared
// database handle.
func NewSurgeryRepository(db *mongo.Database, logger *zap.Logger) SurgeryRepository {
	return &surgeryRepository{
		col:    db.Collection("surgeries"),
		logger: logger,
	}
}

func (r *surgeryRepository) Create(ctx context.Context, surgery *models.Surgery) (*models.Surgery, error) {
	now := time.Now()
	surgery.ID = primitive.NewObjectID()
	surgery.CreatedAt = now
	surgery.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, surgery); err != nil {
		r.logger.Error("failed to insert surgery", zap.Error(err))
		return nil, err
	}
	return surgery, nil
}

func (r *surgeryRepository) aggregate(ctx context.Context, match bson.M, sort bson.D) ([]models.Surgery, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: match}},
	}
	if sort != nil {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	pipeline = append(pipeline, lookupPatient()...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surgeries := make([]models.Surgery, 0)
	if err := cursor.All(ctx, &surgeries); err != nil {
		return nil, err
	}
	return surgeries, nil
}

// FindAll lists surgeries, newest first, optionally restricted by
// lifecycle status and/or patient reference.
func (r *surgeryRepository) FindAll(ctx context.Context, filter SurgeryFilter) ([]models.Surgery, error) {
	match := bson.M{}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.Patient != nil {
		match["patient"] = *filter.Patient
	}
	return r.aggregate(ctx, match, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *surgeryRepository) FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Surgery, error) {
	cursor, err := r.col.Find(ctx, bson.M{"patient": patientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surgeries := make([]models.Surgery, 0)
	if err := cursor.All(ctx, &surgeries); err != nil {
		return nil, err
	}
	return surgeries, nil
}

func (r *surgeryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Surgery, error) {
	surgeries, err := r.aggregate(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		return nil, err
	}
	if len(surgeries) == 0 {
		return nil, ErrNotFound
	}
	return &surgeries[0], nil
}

func (r *surgeryRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Surgery, error) {
	set["updatedAt"] = time.Now()

	var surgery models.Surgery
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&surgery)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to update surgery", zap.String("id", id.Hex()), zap.Error(err))
		return nil, err
	}
	return &surgery, nil
}

func (r *surgeryRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
