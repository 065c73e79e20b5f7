package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownColumn is returned by [Record.ScanTargets] for a column that has
// no matching field.
var ErrUnknownColumn = errors.New("unknown record column")

// Record is a persisted entry of either kind. Fields that belong to one kind
// only are pointers and stay nil (and absent from JSON) for the other kind.
type Record struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// articles
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Content  *string `json:"content,omitempty"`

	// life records
	Images      *Attachments `json:"images,omitempty"`
	Description *string      `json:"description,omitempty"`

	IsPublic    bool      `json:"is_public"`
	Fingerprint *string   `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ScanTargets returns destinations for [database/sql.Rows.Scan] in the order
// of columns.
func (r *Record) ScanTargets(columns []string) ([]any, error) {
	targets := make([]any, len(columns))

	for i, column := range columns {
		switch column {
		case "id":
			targets[i] = &r.ID
		case "user_id":
			targets[i] = &r.UserID
		case "title":
			targets[i] = &r.Title
		case "category":
			targets[i] = &r.Category
		case "content":
			targets[i] = &r.Content
		case "images":
			targets[i] = &r.Images
		case "description":
			targets[i] = &r.Description
		case "is_public":
			targets[i] = &r.IsPublic
		case "fingerprint":
			targets[i] = &r.Fingerprint
		case "created_at":
			targets[i] = &r.CreatedAt
		case "updated_at":
			targets[i] = &r.UpdatedAt
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
		}
	}

	return targets, nil
}

// DeletedRecord is the payload returned after a successful delete.
type DeletedRecord struct {
	ID string `json:"id"`
}
