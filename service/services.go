// service/services.go
package service

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinova/api/auth"
	"github.com/clinova/api/dao"
	"github.com/clinova/api/util"
)

type Services struct {
	Auth     IAuthService
	User     IUserService
	Patient  IPatientService
	Visit    IVisitService
	Booking  IBookingService
	Schedule IScheduleService
}

func InitializeServices(
	database *mongo.Database,
	codec *auth.TokenCodec,
	hasher auth.PasswordHasher,
	exchanger auth.CodeExchanger,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(database)
	patientDAO := dao.NewPatientDAO(database)
	visitDAO := dao.NewVisitDAO(database)
	bookingDAO := dao.NewBookingDAO(database)
	scheduleDAO := dao.NewScheduleDAO(database)

	services := &Services{
		Auth:     NewAuthService(userDAO, codec, hasher, exchanger, validationUtil),
		User:     NewUserService(userDAO),
		Patient:  NewPatientService(patientDAO, validationUtil, cacheService, eventBus),
		Visit:    NewVisitService(visitDAO, patientDAO, validationUtil),
		Booking:  NewBookingService(bookingDAO, patientDAO, validationUtil, notificationSvc, eventBus),
		Schedule: NewScheduleService(scheduleDAO, validationUtil, cacheService, notificationSvc, eventBus),
	}

	return services, nil
}
