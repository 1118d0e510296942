// service/booking_service_test.go
package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	clinova_errors "github.com/clinova/api/errors"
	logger "github.com/clinova/api/logging"
	"github.com/clinova/api/model"
	"github.com/clinova/api/service"
	"github.com/clinova/api/util"
)

type fakeBookingDAO struct {
	bookings map[string]*model.Booking
	nextID   int
}

func newFakeBookingDAO() *fakeBookingDAO {
	return &fakeBookingDAO{bookings: map[string]*model.Booking{}}
}

func (f *fakeBookingDAO) Create(_ context.Context, booking model.Booking) (string, error) {
	f.nextID++
	booking.ID = fmt.Sprintf("booking-%d", f.nextID)
	if booking.Status == "" {
		booking.Status = model.BookingPending
	}
	booking.CreatedAt = time.Now().UTC()
	f.bookings[booking.ID] = &booking
	return booking.ID, nil
}

func (f *fakeBookingDAO) Update(_ context.Context, booking model.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return clinova_errors.ErrBookingNotFound
	}
	f.bookings[booking.ID] = &booking
	return nil
}

func (f *fakeBookingDAO) GetByID(_ context.Context, bookingID string) (*model.Booking, error) {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, clinova_errors.ErrBookingNotFound
	}
	clone := *booking
	return &clone, nil
}

func (f *fakeBookingDAO) Find(_ context.Context, filter model.BookingFilter, limit, offset int) ([]*model.Booking, error) {
	var result []*model.Booking
	for _, booking := range f.bookings {
		if filter.DoctorID != "" && booking.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != "" && booking.PatientID != filter.PatientID {
			continue
		}
		if filter.Status != "" && string(booking.Status) != filter.Status {
			continue
		}
		clone := *booking
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeBookingDAO) Delete(_ context.Context, bookingID string) error {
	if _, ok := f.bookings[bookingID]; !ok {
		return clinova_errors.ErrBookingNotFound
	}
	delete(f.bookings, bookingID)
	return nil
}

type fakePatientDAO struct {
	patients map[string]*model.Patient
}

func newFakePatientDAO(ids ...string) *fakePatientDAO {
	f := &fakePatientDAO{patients: map[string]*model.Patient{}}
	for _, id := range ids {
		f.patients[id] = &model.Patient{ID: id, Name: "Patient " + id, Phone: "555-0100"}
	}
	return f
}

func (f *fakePatientDAO) Create(_ context.Context, patient model.Patient) (string, error) {
	f.patients[patient.ID] = &patient
	return patient.ID, nil
}

func (f *fakePatientDAO) Update(_ context.Context, patient model.Patient) error {
	f.patients[patient.ID] = &patient
	return nil
}

func (f *fakePatientDAO) GetByID(_ context.Context, patientID string) (*model.Patient, error) {
	patient, ok := f.patients[patientID]
	if !ok {
		return nil, clinova_errors.ErrPatientNotFound
	}
	clone := *patient
	return &clone, nil
}

func (f *fakePatientDAO) Find(_ context.Context, _ model.PatientFilter, _, _ int) ([]*model.Patient, error) {
	return nil, nil
}

func (f *fakePatientDAO) Delete(_ context.Context, patientID string) error {
	delete(f.patients, patientID)
	return nil
}

func newTestBookingService(t *testing.T, bookingDAO *fakeBookingDAO, patientDAO *fakePatientDAO) *service.BookingService {
	t.Helper()
	logger.InitLogger(t.TempDir())

	return service.NewBookingService(
		bookingDAO,
		patientDAO,
		util.NewValidationUtil(),
		util.NewNotificationService(),
		util.NewEventBus(),
	)
}

func validBooking() model.Booking {
	return model.Booking{
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		Date:      time.Now().Add(24 * time.Hour),
		Slot:      "09:00-09:30",
	}
}

func TestBookingService(t *testing.T) {
	t.Run("CreateBooking_Success", func(t *testing.T) {
		svc := newTestBookingService(t, newFakeBookingDAO(), newFakePatientDAO("patient-1"))

		created, err := svc.CreateBooking(context.Background(), validBooking(), "staff-1")
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, model.BookingPending, created.Status)
		assert.Equal(t, "staff-1", created.CreatedBy)
	})

	t.Run("CreateBooking_UnknownPatient", func(t *testing.T) {
		svc := newTestBookingService(t, newFakeBookingDAO(), newFakePatientDAO())

		_, err := svc.CreateBooking(context.Background(), validBooking(), "staff-1")
		assert.ErrorIs(t, err, clinova_errors.ErrPatientNotFound)
	})

	t.Run("CreateBooking_MissingSlot", func(t *testing.T) {
		svc := newTestBookingService(t, newFakeBookingDAO(), newFakePatientDAO("patient-1"))

		booking := validBooking()
		booking.Slot = ""
		_, err := svc.CreateBooking(context.Background(), booking, "staff-1")
		assert.Error(t, err)

		var appErr *clinova_errors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, clinova_errors.CodeInvalidInput, appErr.Code)
	})

	t.Run("UpdateBooking_StatusTransition", func(t *testing.T) {
		svc := newTestBookingService(t, newFakeBookingDAO(), newFakePatientDAO("patient-1"))

		created, err := svc.CreateBooking(context.Background(), validBooking(), "staff-1")
		assert.NoError(t, err)

		created.Status = model.BookingConfirmed
		updated, err := svc.UpdateBooking(context.Background(), *created)
		assert.NoError(t, err)
		assert.Equal(t, model.BookingConfirmed, updated.Status)
	})

	t.Run("UpdateBooking_UnknownID", func(t *testing.T) {
		svc := newTestBookingService(t, newFakeBookingDAO(), newFakePatientDAO("patient-1"))

		booking := validBooking()
		booking.ID = "missing"
		_, err := svc.UpdateBooking(context.Background(), booking)
		assert.ErrorIs(t, err, clinova_errors.ErrBookingNotFound)
	})

	t.Run("FindBookings_ByStatus", func(t *testing.T) {
		bookingDAO := newFakeBookingDAO()
		svc := newTestBookingService(t, bookingDAO, newFakePatientDAO("patient-1"))

		first, err := svc.CreateBooking(context.Background(), validBooking(), "staff-1")
		assert.NoError(t, err)
		_, err = svc.CreateBooking(context.Background(), validBooking(), "staff-1")
		assert.NoError(t, err)

		first.Status = model.BookingConfirmed
		_, err = svc.UpdateBooking(context.Background(), *first)
		assert.NoError(t, err)

		confirmed, err := svc.FindBookings(context.Background(), model.BookingFilter{Status: "confirmed"}, 20, 0)
		assert.NoError(t, err)
		assert.Len(t, confirmed, 1)

		pending, err := svc.FindBookings(context.Background(), model.BookingFilter{Status: "pending"}, 20, 0)
		assert.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("MismatchedEventPayloadIsRejected", func(t *testing.T) {
		logger.InitLogger(t.TempDir())
		eventBus := util.NewEventBus()
		svc := service.NewBookingService(
			newFakeBookingDAO(),
			newFakePatientDAO("patient-1"),
			util.NewValidationUtil(),
			util.NewNotificationService(),
			eventBus,
		)

		// A payload of the wrong type must surface as a handler error,
		// not a panic in the handler goroutine.
		eventBus.Publish(context.Background(), util.EventBookingCreated, "not-a-booking")
		time.Sleep(50 * time.Millisecond)

		created, err := svc.CreateBooking(context.Background(), validBooking(), "staff-1")
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("DeleteBooking", func(t *testing.T) {
		svc := newTestBookingService(t, newFakeBookingDAO(), newFakePatientDAO("patient-1"))

		created, err := svc.CreateBooking(context.Background(), validBooking(), "staff-1")
		assert.NoError(t, err)

		assert.NoError(t, svc.DeleteBooking(context.Background(), created.ID))
		_, err = svc.GetBooking(context.Background(), created.ID)
		assert.ErrorIs(t, err, clinova_errors.ErrBookingNotFound)
	})
}
