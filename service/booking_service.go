// service/booking_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinova/api/dao"
	clinova_errors "github.com/clinova/api/errors"
	logger "github.com/clinova/api/logging"
	"github.com/clinova/api/model"
	"github.com/clinova/api/util"
)

// IBookingService defines the interface for appointment booking operations
type IBookingService interface {
	CreateBooking(ctx context.Context, booking model.Booking, creatorID string) (*model.Booking, error)
	UpdateBooking(ctx context.Context, booking model.Booking) (*model.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*model.Booking, error)
	FindBookings(ctx context.Context, filter model.BookingFilter, limit, offset int) ([]*model.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type BookingService struct {
	bookingDAO      dao.BookingDAO
	patientDAO      dao.PatientDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IBookingService = &BookingService{}

func NewBookingService(
	bookingDAO dao.BookingDAO,
	patientDAO dao.PatientDAO,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *BookingService {
	service := &BookingService{
		bookingDAO:      bookingDAO,
		patientDAO:      patientDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventBookingCreated, service.handleBookingEvent)
	eventBus.Subscribe(util.EventBookingUpdated, service.handleBookingEvent)
	eventBus.Subscribe(util.EventBookingDeleted, service.handleBookingEvent)

	return service
}

func (s *BookingService) handleBookingEvent(ctx context.Context, event util.Event) error {
	booking, ok := event.Payload.(model.Booking)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for event %s", event.Payload, event.Type)
	}

	var changeType string
	switch event.Type {
	case util.EventBookingCreated:
		changeType = "created"
	case util.EventBookingUpdated:
		changeType = "updated"
	case util.EventBookingDeleted:
		changeType = "deleted"
	}

	if err := s.notificationSvc.NotifyBookingChange(ctx, changeType, booking); err != nil {
		logger.Warn("Failed to send booking notification",
			zap.Error(err), zap.String("bookingID", booking.ID))
	}
	return nil
}

func (s *BookingService) CreateBooking(ctx context.Context, booking model.Booking, creatorID string) (*model.Booking, error) {
	if err := s.validationUtil.ValidateBooking(booking); err != nil {
		return nil, clinova_errors.ErrInvalidInput.WithDetails(err.Error())
	}

	if _, err := s.patientDAO.GetByID(ctx, booking.PatientID); err != nil {
		return nil, err
	}
	booking.CreatedBy = creatorID

	bookingID, err := s.bookingDAO.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	created, err := s.bookingDAO.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	s.eventBus.Publish(ctx, util.EventBookingCreated, *created)
	return created, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, booking model.Booking) (*model.Booking, error) {
	if err := s.validationUtil.ValidateBooking(booking); err != nil {
		return nil, clinova_errors.ErrInvalidInput.WithDetails(err.Error())
	}

	if err := s.bookingDAO.Update(ctx, booking); err != nil {
		return nil, err
	}

	updated, err := s.bookingDAO.GetByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	s.eventBus.Publish(ctx, util.EventBookingUpdated, *updated)
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*model.Booking, error) {
	return s.bookingDAO.GetByID(ctx, bookingID)
}

func (s *BookingService) FindBookings(ctx context.Context, filter model.BookingFilter, limit, offset int) ([]*model.Booking, error) {
	return s.bookingDAO.Find(ctx, filter, limit, offset)
}

func (s *BookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := s.bookingDAO.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.bookingDAO.Delete(ctx, bookingID); err != nil {
		return err
	}
	s.eventBus.Publish(ctx, util.EventBookingDeleted, *booking)
	return nil
}
