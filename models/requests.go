package models

import (
	"strings"
	"time"
)

// RecordInput is a decoded create or update payload. Every key is optional;
// which ones matter depends on the kind's [Definition].
type RecordInput struct {
	Title       Optional[string]      `json:"title"`
	Category    Optional[string]      `json:"category"`
	Content     Optional[string]      `json:"content"`
	Images      Optional[Attachments] `json:"images"`
	Description Optional[string]      `json:"description"`
	// Desc is accepted in place of description.
	Desc Optional[string] `json:"desc"`

	IsPublic    Optional[bool]      `json:"is_public"`
	Fingerprint Optional[string]    `json:"fingerprint"`
	CreatedAt   Optional[time.Time] `json:"created_at"`
}

// Text returns the text value sent for the field name. The second result is
// false when the input has no text field of that name.
func (in RecordInput) Text(name string) (Optional[string], bool) {
	switch name {
	case "title":
		return in.Title, true
	case "category":
		return in.Category, true
	case "content":
		return in.Content, true
	case "description":
		if !in.Description.Present() && in.Desc.Set {
			return in.Desc, true
		}
		return in.Description, true
	default:
		return Optional[string]{}, false
	}
}

// Attachments returns the attachments sent for the field name. The second
// result is false when the input has no attachments field of that name.
func (in RecordInput) Attachments(name string) (Optional[Attachments], bool) {
	if name == "images" {
		return in.Images, true
	}
	return Optional[Attachments]{}, false
}

// FieldValue is a normalized value for one writable field.
type FieldValue struct {
	Field Field
	Value any
}

// RecordWrite is the normalized column set of one create or update.
//
// For a create every field of the definition is listed and unset optional
// values fall back to column defaults. For an update only present keys are
// listed.
type RecordWrite struct {
	Fields      []FieldValue
	IsPublic    Optional[bool]
	Fingerprint Optional[string]
	CreatedAt   Optional[time.Time]
}

// IsEmpty reports whether the write changes nothing.
func (w RecordWrite) IsEmpty() bool {
	return len(w.Fields) == 0 && !w.IsPublic.Set && !w.Fingerprint.Set
}

// ListMode selects which records a list request returns.
type ListMode string

const (
	// ListModePublic lists records flagged public, regardless of owner.
	ListModePublic ListMode = "public"
	// ListModeOwned lists records of the verified caller.
	ListModeOwned ListMode = "owned"
)

// ParseListMode maps the mode query parameter. Anything other than "public"
// (case-insensitive, the default when empty) selects the caller's records.
func ParseListMode(raw string) ListMode {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, string(ListModePublic)) {
		return ListModePublic
	}
	return ListModeOwned
}

// ListRequest asks for one page of records.
type ListRequest struct {
	Kind Kind
	Mode ListMode
	// Identity is required for every mode except public.
	Identity Identity
	From     uint64
	// Limit falls back to the kind's default page size when unset.
	Limit Optional[uint64]
}

// CreateRequest asks to insert a record or merge it into the caller's record
// with the same fingerprint.
type CreateRequest struct {
	Kind     Kind
	Identity Identity
	Input    RecordInput
}

// UpdateRequest asks to change present fields of one owned record.
type UpdateRequest struct {
	Kind     Kind
	Identity Identity
	ID       string
	Input    RecordInput
}

// DeleteRequest asks to remove one owned record.
type DeleteRequest struct {
	Kind     Kind
	Identity Identity
	ID       string
}
