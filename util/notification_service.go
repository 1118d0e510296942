// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/clinova/api/logging"
	"github.com/clinova/api/model"
)

type NotificationService struct {
	// A message queue or email provider client would live here.
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyBookingChange informs the doctor's side of a booking change. Backed
// by the log for now; a real deployment would push to a queue or SMS gateway.
func (n *NotificationService) NotifyBookingChange(ctx context.Context, changeType string, booking model.Booking) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New booking created",
			zap.String("bookingID", booking.ID),
			zap.String("doctorID", booking.DoctorID),
			zap.Time("date", booking.Date))
	case "updated":
		logger.Info("NOTIFICATION: Booking updated",
			zap.String("bookingID", booking.ID),
			zap.String("status", string(booking.Status)))
	case "deleted":
		logger.Info("NOTIFICATION: Booking deleted",
			zap.String("bookingID", booking.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

// NotifyScheduleChange announces a doctor's availability change.
func (n *NotificationService) NotifyScheduleChange(ctx context.Context, schedule model.Schedule) error {
	logger.Info("NOTIFICATION: Doctor schedule updated",
		zap.String("doctorID", schedule.DoctorID),
		zap.Int("days", len(schedule.Days)))
	return nil
}
