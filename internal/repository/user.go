package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/utils"
)

type userRepository struct {
	col         *mongo.Collection
	logger      *zap.Logger
	hashingCost int
}

// NewUserRepository creates a user repository. hashingCost is the bcrypt
// cost applied by the pre-persist password hook.
func NewUserRepository(db *mongo.Database, logger *zap.Logger, hashingCost int) UserRepository {
	return &userRepository{
		col:         db.Collection("users"),
		logger:      logger,
		hashingCost: hashingCost,
	}
}

// Create hashes the plaintext password before insert. Emails are stored
// lowercased so lookups stay case-insensitive.
func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	hashed, err := utils.HashPassword(user.Password, r.hashingCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	changedAt := now.Add(-time.Second)

	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(user.Email)
	user.UserName = strings.ToLower(user.UserName)
	user.Password = hashed
	user.PasswordChangedAt = &changedAt
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		r.logger.Error("failed to insert user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ErrDuplicateEmail is returned when an account already exists for the
// given email.
var ErrDuplicateEmail = errors.New("email already registered")

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateByID applies a partial update. Setting the password field triggers
// the hash hook exactly once; unrelated updates never re-hash.
func (r *userRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	if plaintext, ok := set["password"].(string); ok {
		hashed, err := utils.HashPassword(plaintext, r.hashingCost)
		if err != nil {
			return nil, err
		}
		set["password"] = hashed
		set["passwordChangedAt"] = time.Now().Add(-time.Second)
	}
	set["updatedAt"] = time.Now()

	var user models.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to update user", zap.String("id", id.Hex()), zap.Error(err))
		return nil, err
	}
	return &user, nil
}
