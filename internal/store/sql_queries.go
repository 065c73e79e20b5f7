package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-life-records/models"
	sq "github.com/Masterminds/squirrel"
)

// psql renders $n placeholders. Table and column names always come from a
// models.Definition; every request value travels as a bound argument.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const upsertConflictTarget = "ON CONFLICT (user_id, fingerprint) WHERE fingerprint IS NOT NULL DO UPDATE SET "

// buildListQuery selects one page of a kind, newest first.
func buildListQuery(def models.Definition, filter ListFilter) (string, []any, error) {
	query := psql.Select(def.Columns...).From(def.Table)

	if filter.PublicOnly {
		query = query.Where(sq.Eq{"is_public": true})
	} else {
		query = query.Where(sq.Eq{"user_id": filter.OwnerID})
	}

	return query.
		OrderBy("created_at DESC").
		Suffix("OFFSET ? LIMIT ?", filter.Offset, filter.Limit).
		ToSql()
}

// buildUpsertQuery inserts a record, or merges it into the owner's record
// with the same non-null fingerprint. A null fingerprint never conflicts.
func buildUpsertQuery(def models.Definition, ownerID string, write models.RecordWrite) (string, []any, error) {
	columns := make([]string, 0, len(write.Fields)+4)
	values := make([]any, 0, len(write.Fields)+4)
	merges := make([]string, 0, len(write.Fields)+2)

	columns = append(columns, "user_id")
	values = append(values, ownerID)

	for _, fv := range write.Fields {
		columns = append(columns, fv.Field.Name)
		values = append(values, bindValue(fv))
		merges = append(merges, fmt.Sprintf("%s = EXCLUDED.%s", fv.Field.Name, fv.Field.Name))
	}

	columns = append(columns, "is_public", "fingerprint", "created_at")
	values = append(values,
		write.IsPublic.Or(false),
		nullableText(write.Fingerprint),
		sq.Expr("COALESCE(?::timestamptz, now())", nullableTime(write.CreatedAt)),
	)
	merges = append(merges, "is_public = EXCLUDED.is_public", "updated_at = now()")

	return psql.Insert(def.Table).
		Columns(columns...).
		Values(values...).
		Suffix(upsertConflictTarget + strings.Join(merges, ", ")).
		Suffix("RETURNING " + strings.Join(def.Columns, ", ")).
		ToSql()
}

// buildUpdateQuery changes the listed columns of one owned record and bumps
// updated_at.
func buildUpdateQuery(def models.Definition, ownerID, id string, write models.RecordWrite) (string, []any, error) {
	if write.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	query := psql.Update(def.Table)

	for _, fv := range write.Fields {
		query = query.Set(fv.Field.Name, bindValue(fv))
	}
	if write.IsPublic.Set {
		query = query.Set("is_public", write.IsPublic.Or(false))
	}
	if write.Fingerprint.Set {
		query = query.Set("fingerprint", nullableText(write.Fingerprint))
	}

	return query.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING " + strings.Join(def.Columns, ", ")).
		ToSql()
}

// buildDeleteQuery removes one owned record.
func buildDeleteQuery(def models.Definition, ownerID, id string) (string, []any, error) {
	return psql.Delete(def.Table).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING id").
		ToSql()
}

func bindValue(fv models.FieldValue) any {
	if fv.Field.Type == models.FieldAttachments {
		return sq.Expr("?::jsonb", fv.Value)
	}
	return fv.Value
}

func nullableText(v models.Optional[string]) any {
	if !v.Present() || v.Value == "" {
		return nil
	}
	return v.Value
}

func nullableTime(v models.Optional[time.Time]) any {
	if !v.Present() {
		return nil
	}
	return v.Value
}
