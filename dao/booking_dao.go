// dao/booking_dao.go
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

type BookingDAO interface {
	Create(ctx context.Context, booking model.Booking) (string, error)
	Update(ctx context.Context, booking model.Booking) error
	GetByID(ctx context.Context, bookingID string) (*model.Booking, error)
	Find(ctx context.Context, filter model.BookingFilter, limit, offset int) ([]*model.Booking, error)
	Delete(ctx context.Context, bookingID string) error
}

type mongoBookingDAO struct {
	coll *mongo.Collection
}

func NewBookingDAO(database *mongo.Database) BookingDAO {
	return &mongoBookingDAO{coll: database.Collection("bookings")}
}

func (dao *mongoBookingDAO) Create(ctx context.Context, booking model.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = model.BookingPending
	}
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := dao.coll.InsertOne(ctx, booking)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		return "", clinova_errors.ErrDatabaseOperation.WithErr(err)
	}

	logger.Info("Booking created successfully",
		zap.String("bookingID", booking.ID),
		zap.String("doctorID", booking.DoctorID))
	return booking.ID, nil
}

func (dao *mongoBookingDAO) Update(ctx context.Context, booking model.Booking) error {
	booking.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"date":      booking.Date,
		"slot":      booking.Slot,
		"reason":    booking.Reason,
		"status":    booking.Status,
		"updatedAt": booking.UpdatedAt,
	}}

	result, err := dao.coll.UpdateOne(ctx, bson.M{"_id": booking.ID}, update)
	if err != nil {
		logger.Error("Failed to update booking", zap.Error(err), zap.String("bookingID", booking.ID))
		return clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	if result.MatchedCount == 0 {
		return clinova_errors.ErrBookingNotFound
	}
	return nil
}

func (dao *mongoBookingDAO) GetByID(ctx context.Context, bookingID string) (*model.Booking, error) {
	var booking model.Booking
	err := dao.coll.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, clinova_errors.ErrBookingNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch booking", zap.Error(err), zap.String("bookingID", bookingID))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return &booking, nil
}

func (dao *mongoBookingDAO) Find(ctx context.Context, filter model.BookingFilter, limit, offset int) ([]*model.Booking, error) {
	query := bson.M{}
	if filter.DoctorID != "" {
		query["doctorId"] = filter.DoctorID
	}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := dao.coll.Find(ctx, query, opts)
	if err != nil {
		logger.Error("Failed to find bookings", zap.Error(err))
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	return bookings, nil
}

func (dao *mongoBookingDAO) Delete(ctx context.Context, bookingID string) error {
	result, err := dao.coll.DeleteOne(ctx, bson.M{"_id": bookingID})
	if err != nil {
		logger.Error("Failed to delete booking", zap.Error(err), zap.String("bookingID", bookingID))
		return clinova_errors.ErrDatabaseOperation.WithErr(err)
	}
	if result.DeletedCount == 0 {
		return clinova_errors.ErrBookingNotFound
	}

	logger.Info("Booking deleted successfully", zap.String("bookingID", bookingID))
	return nil
}
