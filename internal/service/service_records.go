package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/store"
	"github.com/MKhiriev/go-life-records/models"
)

type recordService struct {
	recordRepository store.RecordRepository

	logger *logger.Logger
}

// NewRecordService constructs a RecordService that normalizes payloads with
// the kind's models.Definition and hands one statement per call to
// recordRepository.
func NewRecordService(recordRepository store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		logger:           logger,
	}
}

func (s *recordService) List(ctx context.Context, req models.ListRequest) ([]models.Record, error) {
	def, ok := models.LookupDefinition(req.Kind)
	if !ok {
		return nil, ErrUnknownKind
	}

	filter := store.ListFilter{
		Offset: req.From,
		Limit:  req.Limit.Or(def.DefaultLimit),
	}

	if req.Mode == models.ListModePublic {
		filter.PublicOnly = true
	} else {
		if req.Identity.IsZero() {
			return nil, ErrUnauthenticated
		}
		filter.OwnerID = req.Identity.ID
	}

	return s.recordRepository.List(ctx, def, filter)
}

func (s *recordService) Create(ctx context.Context, req models.CreateRequest) (models.Record, error) {
	def, ok := models.LookupDefinition(req.Kind)
	if !ok {
		return models.Record{}, ErrUnknownKind
	}
	if req.Identity.IsZero() {
		return models.Record{}, ErrUnauthenticated
	}

	write, err := createWrite(def, req.Input)
	if err != nil {
		return models.Record{}, err
	}

	return s.recordRepository.Upsert(ctx, def, req.Identity.ID, write)
}

func (s *recordService) Update(ctx context.Context, req models.UpdateRequest) (models.Record, error) {
	def, ok := models.LookupDefinition(req.Kind)
	if !ok {
		return models.Record{}, ErrUnknownKind
	}
	if req.Identity.IsZero() {
		return models.Record{}, ErrUnauthenticated
	}

	write, err := updateWrite(def, req.Input)
	if err != nil {
		return models.Record{}, err
	}

	return s.recordRepository.Update(ctx, def, req.Identity.ID, req.ID, write)
}

func (s *recordService) Delete(ctx context.Context, req models.DeleteRequest) (models.DeletedRecord, error) {
	def, ok := models.LookupDefinition(req.Kind)
	if !ok {
		return models.DeletedRecord{}, ErrUnknownKind
	}
	if req.Identity.IsZero() {
		return models.DeletedRecord{}, ErrUnauthenticated
	}

	id, err := s.recordRepository.Delete(ctx, def, req.Identity.ID, req.ID)
	if err != nil {
		return models.DeletedRecord{}, err
	}

	return models.DeletedRecord{ID: id}, nil
}

// createWrite lists every writable field of def. Absent text becomes its
// default, absent attachments an empty list.
func createWrite(def models.Definition, input models.RecordInput) (models.RecordWrite, error) {
	write := models.RecordWrite{
		Fields:      make([]models.FieldValue, 0, len(def.Fields)),
		IsPublic:    input.IsPublic,
		Fingerprint: input.Fingerprint,
		CreatedAt:   input.CreatedAt,
	}

	for _, field := range def.Fields {
		value, err := fieldValue(field, input)
		if err != nil {
			return models.RecordWrite{}, err
		}
		write.Fields = append(write.Fields, models.FieldValue{Field: field, Value: value})
	}

	return write, nil
}

// updateWrite lists only the fields whose keys are present in input.
// created_at is never updated.
func updateWrite(def models.Definition, input models.RecordInput) (models.RecordWrite, error) {
	write := models.RecordWrite{
		IsPublic:    input.IsPublic,
		Fingerprint: input.Fingerprint,
	}

	for _, field := range def.Fields {
		present, err := isSet(field, input)
		if err != nil {
			return models.RecordWrite{}, err
		}
		if !present {
			continue
		}

		value, err := fieldValue(field, input)
		if err != nil {
			return models.RecordWrite{}, err
		}
		write.Fields = append(write.Fields, models.FieldValue{Field: field, Value: value})
	}

	return write, nil
}

func isSet(field models.Field, input models.RecordInput) (bool, error) {
	switch field.Type {
	case models.FieldText:
		value, ok := input.Text(field.Name)
		if !ok {
			return false, fmt.Errorf("%w: %s", models.ErrUnknownColumn, field.Name)
		}
		return value.Set, nil
	case models.FieldAttachments:
		value, ok := input.Attachments(field.Name)
		if !ok {
			return false, fmt.Errorf("%w: %s", models.ErrUnknownColumn, field.Name)
		}
		return value.Set, nil
	default:
		return false, fmt.Errorf("%w: %s", models.ErrUnknownColumn, field.Name)
	}
}

// fieldValue returns the value bound for field: trimmed when the field asks
// for it, replaced by the default when empty.
func fieldValue(field models.Field, input models.RecordInput) (any, error) {
	switch field.Type {
	case models.FieldText:
		value, ok := input.Text(field.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownColumn, field.Name)
		}
		text := value.Or("")
		if field.Trim {
			text = strings.TrimSpace(text)
		}
		if text == "" && field.Default != "" {
			text = field.Default
		}
		return text, nil
	case models.FieldAttachments:
		value, ok := input.Attachments(field.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownColumn, field.Name)
		}
		attachments := value.Or(nil)
		if attachments == nil {
			attachments = models.Attachments{}
		}
		return attachments, nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownColumn, field.Name)
	}
}
