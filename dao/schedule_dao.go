// dao/schedule_dao.go
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

// ScheduleDAO stores one weekly availability document per doctor.
type ScheduleDAO interface {
	Upsert(ctx context.Context, schedule model.Schedule) (*model.Schedule, error)
	GetByDoctor(ctx context.Context, doctorID string) (*model.Schedule, error)
	List(ctx context.Context, limit, offset int) ([]*model.Schedule, error)
	Delete(ctx context.Context, doctorID string) error
}

type mongoScheduleDAO struct {
	coll *mongo.Collection
}

func NewScheduleDAO(database *mongo.Database) ScheduleDAO {
	return &mongoScheduleDAO{coll: database.Collection("schedules")}
}

func (dao *mongoScheduleDAO) Upsert(ctx context.Context, schedule model.Schedule) (*model.Schedule, error) {
	now := time.Now().UTC()
	schedule.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"days":      schedule.Days,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       uuid.New().String(),
			"doctorId":  schedule.DoctorID,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated model.Schedule
	err := dao.coll.FindOneAndUpdate(ctx, bson.M{"doctorId": schedule.DoctorID}, update, opts).Decode(&updated)
	if err != nil {
		logger.Error("Failed to upsert schedule", zap.Error(err), zap.String("doctorID", schedule.DoctorID))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}

	logger.Info("Schedule upserted successfully", zap.String("doctorID", schedule.DoctorID))
	return &updated, nil
}

func (dao *mongoScheduleDAO) GetByDoctor(ctx context.Context, doctorID string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := dao.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&schedule)
	if err == mongo.ErrNoDocuments {
		return nil, clinova_errors.ErrScheduleNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch schedule", zap.Error(err), zap.String("doctorID", doctorID))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return &schedule, nil
}

func (dao *mongoScheduleDAO) List(ctx context.Context, limit, offset int) ([]*model.Schedule, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "doctorId", Value: 1}})

	cursor, err := dao.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("Failed to list schedules", zap.Error(err))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	defer cursor.Close(ctx)

	var schedules []*model.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return schedules, nil
}

func (dao *mongoScheduleDAO) Delete(ctx context.Context, doctorID string) error {
	result, err := dao.coll.DeleteOne(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		logger.Error("Failed to delete schedule", zap.Error(err), zap.String("doctorID", doctorID))
		return clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	if result.DeletedCount == 0 {
		return clinova_errors.ErrScheduleNotFound
	}

	logger.Info("Schedule deleted successfully", zap.String("doctorID", doctorID))
	return nil
}
