package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownKind       = errors.New("unknown resource kind")
	ErrNoIdentity        = errors.New("missing Authorization Bearer token")
	ErrInvalidRecordID   = errors.New("record was not found")
	ErrMissingField      = errors.New("missing required field")
	ErrEmptyAttachments  = errors.New("attachments list cannot be empty")
	ErrInvalidFieldValue = errors.New("invalid field value")
	ErrNoFieldsToUpdate  = errors.New("no updates provided")
)
