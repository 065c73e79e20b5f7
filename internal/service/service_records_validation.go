package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-life-records/internal/validators"
	"github.com/MKhiriev/go-life-records/models"
)

// recordValidationService checks every request against the kind's
// definition before it reaches the wrapped RecordService.
type recordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &recordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *recordValidationService) List(ctx context.Context, req models.ListRequest) ([]models.Record, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("list request validation failed: %w", err)
	}

	return v.inner.List(ctx, req)
}

func (v *recordValidationService) Create(ctx context.Context, req models.CreateRequest) (models.Record, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Record{}, fmt.Errorf("create request validation failed: %w", err)
	}

	return v.inner.Create(ctx, req)
}

func (v *recordValidationService) Update(ctx context.Context, req models.UpdateRequest) (models.Record, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Record{}, fmt.Errorf("update request validation failed: %w", err)
	}

	return v.inner.Update(ctx, req)
}

func (v *recordValidationService) Delete(ctx context.Context, req models.DeleteRequest) (models.DeletedRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DeletedRecord{}, fmt.Errorf("delete request validation failed: %w", err)
	}

	return v.inner.Delete(ctx, req)
}

func (v *recordValidationService) Wrap(wrapper RecordService) RecordService {
	v.inner = wrapper
	return v
}
