package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidAttachments is returned when a stored attachment column cannot be
// decoded as a JSON array.
var ErrInvalidAttachments = errors.New("invalid attachments value")

// Attachments is an ordered sequence of opaque attachment references (image
// URLs, upload descriptors, etc.). The elements are kept as raw JSON so that
// whatever the client sent is returned unchanged.
//
// It is stored in a jsonb column.
type Attachments []json.RawMessage

// Value implements [driver.Valuer]. A nil sequence is stored as an empty
// JSON array.
func (a Attachments) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]json.RawMessage(a))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAttachments, err)
	}

	return string(b), nil
}

// Scan implements [sql.Scanner] for jsonb/json/text columns.
func (a *Attachments) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidAttachments, src)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAttachments, err)
	}

	*a = items
	return nil
}

// MarshalJSON keeps an empty sequence as [] rather than null.
func (a Attachments) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(a))
}
