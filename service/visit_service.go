// service/visit_service.go
package service

import (
	"context"

	"github.com/clinova/api/dao"
	clinova_errors "github.com/clinova/api/errors"
	"github.com/clinova/api/model"
	"github.com/clinova/api/util"
)

// IVisitService defines the interface for visit operations
type IVisitService interface {
	CreateVisit(ctx context.Context, visit model.Visit, creatorID string) (*model.Visit, error)
	UpdateVisit(ctx context.Context, visit model.Visit) (*model.Visit, error)
	GetVisit(ctx context.Context, visitID string) (*model.Visit, error)
	ListVisitsByPatient(ctx context.Context, patientID string, limit, offset int) ([]*model.Visit, error)
	DeleteVisit(ctx context.Context, visitID string) error
}

type VisitService struct {
	visitDAO       dao.VisitDAO
	patientDAO     dao.PatientDAO
	validationUtil *util.ValidationUtil
}

var _ IVisitService = &VisitService{}

func NewVisitService(visitDAO dao.VisitDAO, patientDAO dao.PatientDAO, validationUtil *util.ValidationUtil) *VisitService {
	return &VisitService{
		visitDAO:       visitDAO,
		patientDAO:     patientDAO,
		validationUtil: validationUtil,
	}
}

func (s *VisitService) CreateVisit(ctx context.Context, visit model.Visit, creatorID string) (*model.Visit, error) {
	if err := s.validationUtil.ValidateVisit(visit); err != nil {
		return nil, clinova_errors.ErrInvalidInput.WithDetails(err.Error())
	}

	// The referenced patient must exist before a visit can be recorded.
	if _, err := s.patientDAO.GetByID(ctx, visit.PatientID); err != nil {
		return nil, err
	}
	visit.CreatedBy = creatorID

	visitID, err := s.visitDAO.Create(ctx, visit)
	if err != nil {
		return nil, err
	}
	return s.visitDAO.GetByID(ctx, visitID)
}

func (s *VisitService) UpdateVisit(ctx context.Context, visit model.Visit) (*model.Visit, error) {
	if err := s.validationUtil.ValidateVisit(visit); err != nil {
		return nil, clinova_errors.ErrInvalidInput.WithDetails(err.Error())
	}

	if err := s.visitDAO.Update(ctx, visit); err != nil {
		return nil, err
	}
	return s.visitDAO.GetByID(ctx, visit.ID)
}

func (s *VisitService) GetVisit(ctx context.Context, visitID string) (*model.Visit, error) {
	return s.visitDAO.GetByID(ctx, visitID)
}

func (s *VisitService) ListVisitsByPatient(ctx context.Context, patientID string, limit, offset int) ([]*model.Visit, error) {
	return s.visitDAO.ListByPatient(ctx, patientID, limit, offset)
}

func (s *VisitService) DeleteVisit(ctx context.Context, visitID string) error {
	return s.visitDAO.Delete(ctx, visitID)
}
