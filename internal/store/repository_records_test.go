package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecordRepo(t *testing.T) (*recordRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recordRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func articleRows() *sqlmock.Rows {
	return sqlmock.NewRows(models.Articles.Columns)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestRecordRepository_List_Public(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	newer := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := articleRows().
		AddRow("id-2", "user-2", "B", "General", "b", true, nil, newer, newer).
		AddRow("id-1", "user-1", "A", "Tech", "a", true, "fp", older, older)

	mock.ExpectQuery("SELECT (.+) FROM articles WHERE is_public = \\$1 ORDER BY created_at DESC").
		WithArgs(true, uint64(0), uint64(60)).
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), models.Articles, ListFilter{PublicOnly: true, Limit: 60})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "id-2", records[0].ID)
	assert.Equal(t, "B", *records[0].Title)
	assert.Nil(t, records[0].Fingerprint)
	assert.Nil(t, records[0].Images)
	assert.Equal(t, "fp", *records[1].Fingerprint)
	assert.Equal(t, "Tech", *records[1].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_List_OwnedLifeRecords(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(models.LifeRecords.Columns).
		AddRow("id-1", "user-1", []byte(`["a.jpg",{"key":"b"}]`), "walk", false, nil, now, now)

	mock.ExpectQuery("FROM life_records WHERE user_id = \\$1").
		WithArgs("user-1", uint64(10), uint64(5)).
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), models.LifeRecords, ListFilter{OwnerID: "user-1", Offset: 10, Limit: 5})
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NotNil(t, records[0].Images)
	assert.Equal(t, models.Attachments{json.RawMessage(`"a.jpg"`), json.RawMessage(`{"key":"b"}`)}, *records[0].Images)
	assert.Equal(t, "walk", *records[0].Description)
	assert.Nil(t, records[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_List_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM articles").WillReturnRows(articleRows())

	records, err := repo.List(context.Background(), models.Articles, ListFilter{PublicOnly: true, Limit: 60})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestRecordRepository_List_RetriesRetryableError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM articles").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("FROM articles").WillReturnRows(articleRows())

	_, err := repo.List(context.Background(), models.Articles, ListFilter{PublicOnly: true, Limit: 60})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_List_QueryError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM articles").WillReturnError(errors.New("connection refused"))

	_, err := repo.List(context.Background(), models.Articles, ListFilter{PublicOnly: true, Limit: 60})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_List_ScanError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	rows := articleRows().AddRow("id", "user", "t", "c", "b", "not-a-bool", nil, time.Now(), time.Now())
	mock.ExpectQuery("FROM articles").WillReturnRows(rows)

	_, err := repo.List(context.Background(), models.Articles, ListFilter{PublicOnly: true, Limit: 60})
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Upsert ───────────────────────────────────────────────────────────────────

func TestRecordRepository_Upsert_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := articleRows().AddRow("id-1", "user-1", "Title", "General", "Body", false, nil, now, now)

	mock.ExpectQuery("INSERT INTO articles (.+) ON CONFLICT \\(user_id, fingerprint\\) WHERE fingerprint IS NOT NULL").
		WithArgs("user-1", "Title", "General", "Body", false, nil, nil).
		WillReturnRows(rows)

	record, err := repo.Upsert(context.Background(), models.Articles, "user-1", articleWrite())
	require.NoError(t, err)
	assert.Equal(t, "id-1", record.ID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "General", *record.Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Upsert_AttachmentsSentAsJSON(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(models.LifeRecords.Columns).
		AddRow("id-1", "user-1", `["a.jpg"]`, "day one", true, "fp-1", now, now)

	mock.ExpectQuery("INSERT INTO life_records").
		WithArgs("user-1", `["a.jpg"]`, "day one", true, "fp-1", nil).
		WillReturnRows(rows)

	record, err := repo.Upsert(context.Background(), models.LifeRecords, "user-1", lifeWrite())
	require.NoError(t, err)
	assert.Equal(t, "fp-1", *record.Fingerprint)
	assert.Len(t, *record.Images, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Upsert_NoRow(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO articles").WillReturnRows(articleRows())

	_, err := repo.Upsert(context.Background(), models.Articles, "user-1", articleWrite())
	assert.ErrorIs(t, err, ErrRecordNotSaved)
}

func TestRecordRepository_Upsert_DBError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO articles").WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.Upsert(context.Background(), models.Articles, "user-1", articleWrite())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Equal(t, pgerrcode.NotNullViolation, postgresError(err))
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestRecordRepository_Update_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := articleRows().AddRow("rec-1", "user-1", "Title", "Travel", "Body", false, nil, created, updated)

	mock.ExpectQuery("UPDATE articles SET category = \\$1, updated_at = now\\(\\) WHERE id = \\$2 AND user_id = \\$3").
		WithArgs("Travel", "rec-1", "user-1").
		WillReturnRows(rows)

	write := models.RecordWrite{Fields: []models.FieldValue{{Field: models.Articles.Fields[1], Value: "Travel"}}}
	record, err := repo.Update(context.Background(), models.Articles, "user-1", "rec-1", write)
	require.NoError(t, err)
	assert.Equal(t, "Travel", *record.Category)
	assert.True(t, record.UpdatedAt.After(record.CreatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Update_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mockErr error
		noRows  bool
		want    error
	}{
		{name: "not found or not owned", noRows: true, want: ErrRecordNotFound},
		{name: "fingerprint collision", mockErr: pgError(pgerrcode.UniqueViolation), want: ErrFingerprintTaken},
		{name: "malformed id", mockErr: pgError(pgerrcode.InvalidTextRepresentation), want: ErrRecordNotFound},
		{name: "other failure", mockErr: errors.New("boom"), want: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestRecordRepo(t)
			defer db.Close()

			expect := mock.ExpectQuery("UPDATE articles")
			if tt.noRows {
				expect.WillReturnRows(articleRows())
			} else {
				expect.WillReturnError(tt.mockErr)
			}

			write := models.RecordWrite{IsPublic: models.Some(true)}
			_, err := repo.Update(context.Background(), models.Articles, "user-1", "rec-1", write)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRecordRepository_Update_NothingToUpdate(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	_, err := repo.Update(context.Background(), models.Articles, "user-1", "rec-1", models.RecordWrite{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestRecordRepository_Delete_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("DELETE FROM life_records WHERE id = \\$1 AND user_id = \\$2 RETURNING id").
		WithArgs("rec-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("rec-1"))

	id, err := repo.Delete(context.Background(), models.LifeRecords, "user-1", "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Delete_NotFound(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("DELETE FROM articles").
		WithArgs("rec-1", "user-2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Delete(context.Background(), models.Articles, "user-2", "rec-1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordRepository_Delete_DBError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("DELETE FROM articles").WillReturnError(errors.New("boom"))

	_, err := repo.Delete(context.Background(), models.Articles, "user-1", "rec-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
