// controller/controllers.go
package controller

import (
	"github.com/clinova/api/config"
	"github.com/clinova/api/service"
)

type Controllers struct {
	Auth     *AuthController
	User     *UserController
	Patient  *PatientController
	Visit    *VisitController
	Booking  *BookingController
	Schedule *ScheduleController
}

func InitializeControllers(services *service.Services, cfg *config.Configuration) *Controllers {
	return &Controllers{
		Auth:     NewAuthController(services.Auth, cfg),
		User:     NewUserController(services.User),
		Patient:  NewPatientController(services.Patient),
		Visit:    NewVisitController(services.Visit),
		Booking:  NewBookingController(services.Booking),
		Schedule: NewScheduleController(services.Schedule),
	}
}
