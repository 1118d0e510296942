// controller/booking_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clinova_errors "github.com/clinova/api/errors"
	"github.com/clinova/api/middleware"
	"github.com/clinova/api/model"
	"github.com/clinova/api/service"
	"github.com/clinova/api/util"
	helper_util "github.com/clinova/api/util/helper"
)

type BookingController struct {
	bookingService service.IBookingService
}

func NewBookingController(bookingService service.IBookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// RegisterRoutes registers the API routes. Doctors may read bookings but
// only front-desk staff and admins may mutate them.
func (bc *BookingController) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		writeGuard := middleware.Authorize(model.RoleAdmin, model.RoleStaff)
		readGuard := middleware.Authorize(model.RoleAdmin, model.RoleStaff, model.RoleDoctor)

		bookings.POST("", writeGuard, bc.CreateBooking)
		bookings.PUT("/:id", writeGuard, bc.UpdateBooking)
		bookings.DELETE("/:id", writeGuard, bc.DeleteBooking)
		bookings.GET("/:id", readGuard, bc.GetBooking)
		bookings.GET("", readGuard, bc.FindBookings)
	}
}

// CreateBooking endpoint
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var booking model.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}

	identity, _ := middleware.IdentityFromContext(c)
	created, err := bc.bookingService.CreateBooking(c, booking, identity.UserID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Booking created successfully", created)
}

// UpdateBooking endpoint
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	var booking model.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}
	booking.ID = c.Param("id")

	updated, err := bc.bookingService.UpdateBooking(c, booking)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Booking updated successfully", updated)
}

// GetBooking endpoint
func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, err := bc.bookingService.GetBooking(c, c.Param("id"))
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// FindBookings endpoint
func (bc *BookingController) FindBookings(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails("invalid pagination parameters"))
		return
	}

	filter := model.BookingFilter{
		DoctorID:  c.Query("doctorId"),
		PatientID: c.Query("patientId"),
		Status:    c.Query("status"),
	}

	bookings, err := bc.bookingService.FindBookings(c, filter, limit, offset)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// DeleteBooking endpoint
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	if err := bc.bookingService.DeleteBooking(c, c.Param("id")); err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Booking deleted successfully", nil)
}
