// dao/user_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	clinova_errors "github.com/clinova/api/errors"
	logger "github.com/clinova/api/logging"
	"github.com/clinova/api/model"
)

// UserDAO is the credential store: identities keyed by id with a unique
// email index.
type UserDAO interface {
	Create(ctx context.Context, user model.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	Delete(ctx context.Context, userID string) error
}

type mongoUserDAO struct {
	coll *mongo.Collection
}

func NewUserDAO(database *mongo.Database) UserDAO {
	return &mongoUserDAO{coll: database.Collection("users")}
}

func (dao *mongoUserDAO) Create(ctx context.Context, user model.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := dao.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", clinova_errors.ErrUserExists
		}
		logger.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email))
		return "", clinova_errors.ErrDatabaseOperation.WithErr(err)
	}

	logger.Info("User created successfully", zap.String("userID", user.ID))
	return user.ID, nil
}

func (dao *mongoUserDAO) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := dao.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, clinova_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch user by email", zap.Error(err))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return &user, nil
}

func (dao *mongoUserDAO) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := dao.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, clinova_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch user", zap.Error(err), zap.String("userID", userID))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return &user, nil
}

func (dao *mongoUserDAO) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := dao.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return users, nil
}

func (dao *mongoUserDAO) Delete(ctx context.Context, userID string) error {
	result, err := dao.coll.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		logger.Error("Failed to delete user", zap.Error(err), zap.String("userID", userID))
		return clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	if result.DeletedCount == 0 {
		return clinova_errors.ErrUserNotFound
	}

	logger.Info("User deleted successfully", zap.String("userID", userID))
	return nil
}
