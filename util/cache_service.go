// util/cache_service.go

package util

import (
	"context"

	"github.com/clinova/api/db"
	"github.com/clinova/api/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetSchedule(ctx context.Context, doctorID string) (*model.Schedule, error) {
	return db.GetCachedSchedule(ctx, doctorID)
}

func (c *CacheService) SetSchedule(ctx context.Context, schedule model.Schedule) error {
	return db.CacheSchedule(ctx, &schedule)
}

func (c *CacheService) DeleteSchedule(ctx context.Context, doctorID string) error {
	return db.DeleteCachedSchedule(ctx, doctorID)
}

func (c *CacheService) GetPatient(ctx context.Context, patientID string) (*model.Patient, error) {
	return db.GetCachedPatient(ctx, patientID)
}

func (c *CacheService) SetPatient(ctx context.Context, patient model.Patient) error {
	return db.CachePatient(ctx, &patient)
}

func (c *CacheService) DeletePatient(ctx context.Context, patientID string) error {
	return db.DeleteCachedPatient(ctx, patientID)
}
