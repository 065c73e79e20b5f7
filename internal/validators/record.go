package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-life-records/internal/utils"
	"github.com/MKhiriev/go-life-records/models"
)

// Field name constants used to specify which parts of a request should be
// validated.
const (
	// FieldKind targets the resource kind of a request.
	FieldKind = "kind"

	// FieldIdentity targets the verified caller of a request.
	FieldIdentity = "identity"

	// FieldRecordID targets the record id of an update or delete.
	FieldRecordID = "id"

	// FieldCreatePayload checks the payload of a create against the kind's
	// required fields.
	FieldCreatePayload = "create payload"

	// FieldUpdatePayload checks that an update payload changes at least one
	// column and does not empty a required field.
	FieldUpdatePayload = "update payload"
)

// RecordValidator implements the Validator interface for record requests:
// ListRequest, CreateRequest, UpdateRequest and DeleteRequest. The rules come
// from the kind's models.Definition.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator and returns it as the
// Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the type-specific method. Both value and
// pointer forms of each request are accepted.
//
// Returns ErrUnsupportedType if obj is not a record request. Optional fields
// restrict validation to the named subset.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ListRequest:
		return v.validateListRequest(ctx, value, fields...)
	case *models.ListRequest:
		return v.validateListRequest(ctx, *value, fields...)

	case models.CreateRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UpdateRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.DeleteRequest:
		return v.validateDeleteRequest(ctx, value, fields...)
	case *models.DeleteRequest:
		return v.validateDeleteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateListRequest checks the kind and, outside public mode, the caller.
func (v *RecordValidator) validateListRequest(ctx context.Context, request models.ListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind}
		if request.Mode != models.ListModePublic {
			fields = append(fields, FieldIdentity)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if _, ok := models.LookupDefinition(request.Kind); !ok {
				return ErrUnknownKind
			}
		case FieldIdentity:
			if request.Identity.IsZero() {
				return ErrNoIdentity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateRequest checks the kind, the caller and the required fields.
//
// Default validated fields: FieldKind, FieldIdentity, FieldCreatePayload.
func (v *RecordValidator) validateCreateRequest(ctx context.Context, request models.CreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldIdentity, FieldCreatePayload}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if _, ok := models.LookupDefinition(request.Kind); !ok {
				return ErrUnknownKind
			}
		case FieldIdentity:
			if request.Identity.IsZero() {
				return ErrNoIdentity
			}
		case FieldCreatePayload:
			def, ok := models.LookupDefinition(request.Kind)
			if !ok {
				return ErrUnknownKind
			}
			for _, field := range def.Fields {
				if !field.Required {
					continue
				}
				if err := requireValue(field, request.Input); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateRequest checks the kind, the caller, the record id and the
// sparse payload.
//
// Default validated fields: FieldKind, FieldIdentity, FieldRecordID,
// FieldUpdatePayload.
func (v *RecordValidator) validateUpdateRequest(ctx context.Context, request models.UpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldIdentity, FieldRecordID, FieldUpdatePayload}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if _, ok := models.LookupDefinition(request.Kind); !ok {
				return ErrUnknownKind
			}
		case FieldIdentity:
			if request.Identity.IsZero() {
				return ErrNoIdentity
			}
		case FieldRecordID:
			if !utils.IsUUID(request.ID) {
				return ErrInvalidRecordID
			}
		case FieldUpdatePayload:
			def, ok := models.LookupDefinition(request.Kind)
			if !ok {
				return ErrUnknownKind
			}
			if err := validateUpdatePayload(def, request.Input); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDeleteRequest checks the kind, the caller and the record id.
func (v *RecordValidator) validateDeleteRequest(ctx context.Context, request models.DeleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldIdentity, FieldRecordID}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if _, ok := models.LookupDefinition(request.Kind); !ok {
				return ErrUnknownKind
			}
		case FieldIdentity:
			if request.Identity.IsZero() {
				return ErrNoIdentity
			}
		case FieldRecordID:
			if !utils.IsUUID(request.ID) {
				return ErrInvalidRecordID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdatePayload rejects a payload that sets no column, and present
// values that would empty a required field.
func validateUpdatePayload(def models.Definition, input models.RecordInput) error {
	touched := input.IsPublic.Set || input.Fingerprint.Set

	for _, field := range def.Fields {
		present, err := fieldSet(field, input)
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		touched = true

		if field.Required || field.Type == models.FieldAttachments {
			if err = requireValue(field, input); err != nil {
				return err
			}
		}
	}

	if !touched {
		return ErrNoFieldsToUpdate
	}

	return nil
}

// fieldSet reports whether the payload carries the key of field.
func fieldSet(field models.Field, input models.RecordInput) (bool, error) {
	switch field.Type {
	case models.FieldText:
		value, ok := input.Text(field.Name)
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownField, field.Name)
		}
		return value.Set, nil
	case models.FieldAttachments:
		value, ok := input.Attachments(field.Name)
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownField, field.Name)
		}
		return value.Set, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidFieldValue, field.Name)
	}
}

// requireValue fails unless the payload carries a non-blank value for field.
func requireValue(field models.Field, input models.RecordInput) error {
	switch field.Type {
	case models.FieldText:
		value, ok := input.Text(field.Name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field.Name)
		}
		if !value.Present() || strings.TrimSpace(value.Value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.Name)
		}
	case models.FieldAttachments:
		value, ok := input.Attachments(field.Name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field.Name)
		}
		if !value.Present() || len(value.Value) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyAttachments, field.Name)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFieldValue, field.Name)
	}

	return nil
}
