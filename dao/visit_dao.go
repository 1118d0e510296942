// dao/visit_dao.go
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

type VisitDAO interface {
	Create(ctx context.Context, visit model.Visit) (string, error)
	Update(ctx context.Context, visit model.Visit) error
	GetByID(ctx context.Context, visitID string) (*model.Visit, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*model.Visit, error)
	Delete(ctx context.Context, visitID string) error
}

type mongoVisitDAO struct {
	coll *mongo.Collection
}

func NewVisitDAO(database *mongo.Database) VisitDAO {
	return &mongoVisitDAO{coll: database.Collection("visits")}
}

func (dao *mongoVisitDAO) Create(ctx context.Context, visit model.Visit) (string, error) {
	if visit.ID == "" {
		visit.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	visit.CreatedAt = now
	visit.UpdatedAt = now

	_, err := dao.coll.InsertOne(ctx, visit)
	if err != nil {
		logger.Error("Failed to create visit", zap.Error(err))
		return "", clinova_errors.ErrDatabaseOperation.WithErr(err)
	}

	logger.Info("Visit created successfully",
		zap.String("visitID", visit.ID),
		zap.String("patientID", visit.PatientID))
	return visit.ID, nil
}

func (dao *mongoVisitDAO) Update(ctx context.Context, visit model.Visit) error {
	visit.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"date":          visit.Date,
		"reason":        visit.Reason,
		"diagnosis":     visit.Diagnosis,
		"notes":         visit.Notes,
		"vitals":        visit.Vitals,
		"prescriptions": visit.Prescriptions,
		"labOrders":     visit.LabOrders,
		"updatedAt":     visit.UpdatedAt,
	}}

	result, err := dao.coll.UpdateOne(ctx, bson.M{"_id": visit.ID}, update)
	if err != nil {
		logger.Error("Failed to update visit", zap.Error(err), zap.String("visitID", visit.ID))
		return clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	if result.MatchedCount == 0 {
		return clinova_errors.ErrVisitNotFound
	}
	return nil
}

func (dao *mongoVisitDAO) GetByID(ctx context.Context, visitID string) (*model.Visit, error) {
	var visit model.Visit
	err := dao.coll.FindOne(ctx, bson.M{"_id": visitID}).Decode(&visit)
	if err == mongo.ErrNoDocuments {
		return nil, clinova_errors.ErrVisitNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch visit", zap.Error(err), zap.String("visitID", visitID))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return &visit, nil
}

func (dao *mongoVisitDAO) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*model.Visit, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := dao.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		logger.Error("Failed to list visits", zap.Error(err), zap.String("patientID", patientID))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	defer cursor.Close(ctx)

	var visits []*model.Visit
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return visits, nil
}

func (dao *mongoVisitDAO) Delete(ctx context.Context, visitID string) error {
	result, err := dao.coll.DeleteOne(ctx, bson.M{"_id": visitID})
	if err != nil {
		logger.Error("Failed to delete visit", zap.Error(err), zap.String("visitID", visitID))
		return clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	if result.DeletedCount == 0 {
		return clinova_errors.ErrVisitNotFound
	}

	logger.Info("Visit deleted successfully", zap.String("visitID", visitID))
	return nil
}
