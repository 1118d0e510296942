// service/schedule_service.go
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

// IScheduleService defines the interface for doctor availability operations
type IScheduleService interface {
	UpsertSchedule(ctx context.Context, schedule model.Schedule) (*model.Schedule, error)
	GetSchedule(ctx context.Context, doctorID string) (*model.Schedule, error)
	ListSchedules(ctx context.Context, limit, offset int) ([]*model.Schedule, error)
	DeleteSchedule(ctx context.Context, doctorID string) error
}

type ScheduleService struct {
	scheduleDAO     dao.ScheduleDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IScheduleService = &ScheduleService{}

func NewScheduleService(
	scheduleDAO dao.ScheduleDAO,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *ScheduleService {
	service := &ScheduleService{
		scheduleDAO:     scheduleDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventScheduleUpdated, service.handleScheduleUpdated)

	return service
}

func (s *ScheduleService) handleScheduleUpdated(ctx context.Context, event util.Event) error {
	schedule, ok := event.Payload.(model.Schedule)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for event %s", event.Payload, event.Type)
	}

	if err := s.cacheService.DeleteSchedule(ctx, schedule.DoctorID); err != nil {
		logger.Warn("Failed to invalidate schedule cache",
			zap.Error(err), zap.String("doctorID", schedule.DoctorID))
	}
	if err := s.notificationSvc.NotifyScheduleChange(ctx, schedule); err != nil {
		logger.Warn("Failed to send schedule notification",
			zap.Error(err), zap.String("doctorID", schedule.DoctorID))
	}
	return nil
}

func (s *ScheduleService) UpsertSchedule(ctx context.Context, schedule model.Schedule) (*model.Schedule, error) {
	if err := s.validationUtil.ValidateSchedule(schedule); err != nil {
		return nil, clinova_errors.ErrInvalidInput.WithDetails(err.Error())
	}

	updated, err := s.scheduleDAO.Upsert(ctx, schedule)
	if err != nil {
		return nil, err
	}
	s.eventBus.Publish(ctx, util.EventScheduleUpdated, *updated)
	return updated, nil
}

// GetSchedule reads through the cache: doctor availability is read on every
// booking screen and changes rarely.
func (s *ScheduleService) GetSchedule(ctx context.Context, doctorID string) (*model.Schedule, error) {
	cached, err := s.cacheService.GetSchedule(ctx, doctorID)
	if err != nil {
		logger.Warn("Schedule cache read failed", zap.Error(err), zap.String("doctorID", doctorID))
	}
	if cached != nil {
		return cached, nil
	}

	schedule, err := s.scheduleDAO.GetByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetSchedule(ctx, *schedule); err != nil {
		logger.Warn("Failed to cache schedule", zap.Error(err), zap.String("doctorID", doctorID))
	}
	return schedule, nil
}

func (s *ScheduleService) ListSchedules(ctx context.Context, limit, offset int) ([]*model.Schedule, error) {
	return s.scheduleDAO.List(ctx, limit, offset)
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, doctorID string) error {
	if err := s.scheduleDAO.Delete(ctx, doctorID); err != nil {
		return err
	}
	if err := s.cacheService.DeleteSchedule(ctx, doctorID); err != nil {
		logger.Warn("Failed to invalidate schedule cache",
			zap.Error(err), zap.String("doctorID", doctorID))
	}
	return nil
}
