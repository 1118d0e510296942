// service/patient_service.go
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

// IPatientService defines the interface for patient record operations
type IPatientService interface {
	CreatePatient(ctx context.Context, patient model.Patient, creatorID string) (*model.Patient, error)
	UpdatePatient(ctx context.Context, patient model.Patient) (*model.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*model.Patient, error)
	FindPatients(ctx context.Context, filter model.PatientFilter, limit, offset int) ([]*model.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}

type PatientService struct {
	patientDAO     dao.PatientDAO
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	eventBus       *util.EventBus
}

var _ IPatientService = &PatientService{}

func NewPatientService(patientDAO dao.PatientDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, eventBus *util.EventBus) *PatientService {
	service := &PatientService{
		patientDAO:     patientDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}

	eventBus.Subscribe(util.EventPatientUpdated, service.handlePatientChanged)
	eventBus.Subscribe(util.EventPatientDeleted, service.handlePatientChanged)

	return service
}

// handlePatientChanged drops the cached copy so the next read refills it.
func (s *PatientService) handlePatientChanged(ctx context.Context, event util.Event) error {
	patientID, ok := event.Payload.(string)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for event %s", event.Payload, event.Type)
	}
	if err := s.cacheService.DeletePatient(ctx, patientID); err != nil {
		logger.Warn("Failed to invalidate patient cache",
			zap.Error(err), zap.String("patientID", patientID))
	}
	return nil
}

func (s *PatientService) CreatePatient(ctx context.Context, patient model.Patient, creatorID string) (*model.Patient, error) {
	if err := s.validationUtil.ValidatePatient(patient); err != nil {
		return nil, clinova_errors.ErrInvalidInput.WithDetails(err.Error())
	}
	patient.CreatedBy = creatorID

	patientID, err := s.patientDAO.Create(ctx, patient)
	if err != nil {
		return nil, err
	}
	return s.patientDAO.GetByID(ctx, patientID)
}

func (s *PatientService) UpdatePatient(ctx context.Context, patient model.Patient) (*model.Patient, error) {
	if err := s.validationUtil.ValidatePatient(patient); err != nil {
		return nil, clinova_errors.ErrInvalidInput.WithDetails(err.Error())
	}

	if err := s.patientDAO.Update(ctx, patient); err != nil {
		return nil, err
	}
	s.eventBus.Publish(ctx, util.EventPatientUpdated, patient.ID)

	return s.patientDAO.GetByID(ctx, patient.ID)
}

func (s *PatientService) GetPatient(ctx context.Context, patientID string) (*model.Patient, error) {
	cached, err := s.cacheService.GetPatient(ctx, patientID)
	if err != nil {
		logger.Warn("Patient cache read failed", zap.Error(err), zap.String("patientID", patientID))
	}
	if cached != nil {
		return cached, nil
	}

	patient, err := s.patientDAO.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetPatient(ctx, *patient); err != nil {
		logger.Warn("Failed to cache patient", zap.Error(err), zap.String("patientID", patientID))
	}
	return patient, nil
}

func (s *PatientService) FindPatients(ctx context.Context, filter model.PatientFilter, limit, offset int) ([]*model.Patient, error) {
	return s.patientDAO.Find(ctx, filter, limit, offset)
}

func (s *PatientService) DeletePatient(ctx context.Context, patientID string) error {
	if err := s.patientDAO.Delete(ctx, patientID); err != nil {
		return err
	}
	s.eventBus.Publish(ctx, util.EventPatientDeleted, patientID)
	return nil
}
