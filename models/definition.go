// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Kind names a resource kind as it appears in request paths.
type Kind string

const (
	// KindArticles is the kind of titled, categorized text entries.
	KindArticles Kind = "articles"
	// KindLifeRecords is the kind of diary-like entries with attachments.
	KindLifeRecords Kind = "life"
)

// FieldType describes how a writable field is bound and validated.
type FieldType int

const (
	// FieldText is a text column.
	FieldText FieldType = iota
	// FieldAttachments is a JSON array column bound as jsonb.
	FieldAttachments
)

// Field is one kind-specific writable column.
type Field struct {
	// Name is both the JSON key and the column name.
	Name string
	Type FieldType
	// Required fields must be present and non-empty on create and may not be
	// emptied by an update.
	Required bool
	// Trim strips surrounding whitespace before the value is stored.
	Trim bool
	// Default replaces an absent or empty value. Empty means no default.
	Default string
}

// Definition is the static description of a resource kind. Every table and
// column name used in SQL comes from a Definition, never from a request.
type Definition struct {
	Kind  Kind
	Table string
	// Columns are returned by every read and mutation, in this order.
	Columns []string
	// Fields are the kind-specific writable columns, in statement order.
	Fields []Field
	// DefaultLimit is the page size used when a list request gives none.
	DefaultLimit uint64
}

// Field returns the writable field with the given name.
func (d Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Articles describes the articles kind.
var Articles = Definition{
	Kind:  KindArticles,
	Table: "articles",
	Columns: []string{
		"id", "user_id", "title", "category", "content",
		"is_public", "fingerprint", "created_at", "updated_at",
	},
	Fields: []Field{
		{Name: "title", Type: FieldText, Required: true, Trim: true},
		{Name: "category", Type: FieldText, Trim: true, Default: "General"},
		{Name: "content", Type: FieldText, Required: true},
	},
	DefaultLimit: 60,
}

// LifeRecords describes the life records kind.
var LifeRecords = Definition{
	Kind:  KindLifeRecords,
	Table: "life_records",
	Columns: []string{
		"id", "user_id", "images", "description",
		"is_public", "fingerprint", "created_at", "updated_at",
	},
	Fields: []Field{
		{Name: "images", Type: FieldAttachments, Required: true},
		{Name: "description", Type: FieldText, Trim: true},
	},
	DefaultLimit: 90,
}

// Definitions lists every supported kind.
var Definitions = []Definition{Articles, LifeRecords}

// LookupDefinition returns the definition of kind.
func LookupDefinition(kind Kind) (Definition, bool) {
	for _, d := range Definitions {
		if d.Kind == kind {
			return d, true
		}
	}
	return Definition{}, false
}
