// dao/patient_dao.go
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

type PatientDAO interface {
	Create(ctx context.Context, patient model.Patient) (string, error)
	Update(ctx context.Context, patient model.Patient) error
	GetByID(ctx context.Context, patientID string) (*model.Patient, error)
	Find(ctx context.Context, filter model.PatientFilter, limit, offset int) ([]*model.Patient, error)
	Delete(ctx context.Context, patientID string) error
}

type mongoPatientDAO struct {
	coll *mongo.Collection
}

func NewPatientDAO(database *mongo.Database) PatientDAO {
	return &mongoPatientDAO{coll: database.Collection("patients")}
}

func (dao *mongoPatientDAO) Create(ctx context.Context, patient model.Patient) (string, error) {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	_, err := dao.coll.InsertOne(ctx, patient)
	if err != nil {
		logger.Error("Failed to create patient", zap.Error(err))
		return "", clinova_errors.ErrDatabaseOperation.WithErr(err)
	}

	logger.Info("Patient created successfully", zap.String("patientID", patient.ID))
	return patient.ID, nil
}

func (dao *mongoPatientDAO) Update(ctx context.Context, patient model.Patient) error {
	patient.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"name":        patient.Name,
		"email":       patient.Email,
		"phone":       patient.Phone,
		"dateOfBirth": patient.DateOfBirth,
		"gender":      patient.Gender,
		"address":     patient.Address,
		"bloodGroup":  patient.BloodGroup,
		"updatedAt":   patient.UpdatedAt,
	}}

	result, err := dao.coll.UpdateOne(ctx, bson.M{"_id": patient.ID}, update)
	if err != nil {
		logger.Error("Failed to update patient", zap.Error(err), zap.String("patientID", patient.ID))
		return clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	if result.MatchedCount == 0 {
		return clinova_errors.ErrPatientNotFound
	}
	return nil
}

func (dao *mongoPatientDAO) GetByID(ctx context.Context, patientID string) (*model.Patient, error) {
	var patient model.Patient
	err := dao.coll.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, clinova_errors.ErrPatientNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch patient", zap.Error(err), zap.String("patientID", patientID))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return &patient, nil
}

func (dao *mongoPatientDAO) Find(ctx context.Context, filter model.PatientFilter, limit, offset int) ([]*model.Patient, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Phone != "" {
		query["phone"] = filter.Phone
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := dao.coll.Find(ctx, query, opts)
	if err != nil {
		logger.Error("Failed to find patients", zap.Error(err))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	defer cursor.Close(ctx)

	var patients []*model.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return patients, nil
}

func (dao *mongoPatientDAO) Delete(ctx context.Context, patientID string) error {
	result, err := dao.coll.DeleteOne(ctx, bson.M{"_id": patientID})
	if err != nil {
		logger.Error("Failed to delete patient", zap.Error(err), zap.String("patientID", patientID))
		return clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	if result.DeletedCount == 0 {
		return clinova_errors.ErrPatientNotFound
	}

	logger.Info("Patient deleted successfully", zap.String("patientID", patientID))
	return nil
}
