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

type bookingRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewBookingRepository creates a booking repository over the shared
// database handle.
func NewBookingRepository(db *mongo.Database, logger *zap.Logger) BookingRepository {
	return &bookingRepository{
		col:    db.Collection("bookings"),
		logger: logger,
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	now := time.Now()
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, booking); err != nil {
		r.logger.Error("failed to insert booking", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepository) aggregate(ctx context.Context, match bson.M, sort bson.D) ([]models.Booking, error) {
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

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	return r.aggregate(ctx, bson.M{}, nil)
}

// FindByDay returns the bookings falling on the calendar day of the given
// local date, ascending by appointment time.
func (r *bookingRepository) FindByDay(ctx context.Context, day time.Time) ([]models.Booking, error) {
	start, end := DayWindow(day)
	match := bson.M{"dateOfBooking": bson.M{"$gte": start, "$lte": end}}
	return r.aggregate(ctx, match, bson.D{{Key: "dateOfBooking", Value: 1}})
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	bookings, err := r.aggregate(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrNotFound
	}
	return &bookings[0], nil
}

func (r *bookingRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Booking, error) {
	set["updatedAt"] = time.Now()

	var booking models.Booking
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to update booking", zap.String("id", id.Hex()), zap.Error(err))
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
