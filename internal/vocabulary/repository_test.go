package vocabulary

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wordRowColumns = []string{
	"id", "name", "part_of_speech", "meaning", "examples", "level", "source", "owner_id", "created_at",
}

func newMockRepository(t *testing.T) (*DBWordRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBWordRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBWordRepository_FindVisibleTo(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	learnerID := uuid.MustParse("5b0f8f3e-8a36-4c55-9d7c-0d1f1e0c2a11")
	query := regexp.QuoteMeta("SELECT " + wordColumns + " FROM words WHERE " + visibleTo + " ORDER BY id")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Word
		wantErr   bool
	}{
		{
			name: "catalog and custom words",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(wordRowColumns).
					AddRow(1, "abandon", "verb", "to leave behind", []byte(`["They had to ____ the car."]`), "B2", "oxford", nil, now).
					AddRow(5, "serendipity", "noun", "a happy accident", []byte(`["It was pure ____."]`), "C1", "custom", learnerID.String(), now)
				mock.ExpectQuery(query).WithArgs(learnerID.String()).WillReturnRows(rows)
			},
			want: []Word{
				{
					ID: 1, Name: "abandon", PartOfSpeech: "verb", Meaning: "to leave behind",
					Examples: Examples{"They had to ____ the car."}, Level: LevelB2, Source: SourceOxford,
					CreatedAt: now,
				},
				{
					ID: 5, Name: "serendipity", PartOfSpeech: "noun", Meaning: "a happy accident",
					Examples: Examples{"It was pure ____."}, Level: LevelC1, Source: SourceCustom,
					OwnerID: uuid.NullUUID{UUID: learnerID, Valid: true}, CreatedAt: now,
				},
			},
		},
		{
			name: "no words",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(learnerID.String()).WillReturnRows(sqlmock.NewRows(wordRowColumns))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindVisibleTo(context.Background(), learnerID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	learnerID := uuid.MustParse("5b0f8f3e-8a36-4c55-9d7c-0d1f1e0c2a11")
	query := regexp.QuoteMeta("SELECT " + wordColumns + " FROM words WHERE id = ? AND " + visibleTo)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantNil   bool
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(wordRowColumns).
					AddRow(3, "abandon", "verb", "to leave behind", `["x ____"]`, "B2", "oxford", nil, now)
				mock.ExpectQuery(query).WithArgs(int64(3), learnerID.String()).WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(int64(3), learnerID.String()).WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByID(context.Background(), learnerID, 3)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, int64(3), got.ID)
				assert.Equal(t, "abandon", got.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBWordRepository_FindByName(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	learnerID := uuid.MustParse("5b0f8f3e-8a36-4c55-9d7c-0d1f1e0c2a11")
	query := regexp.QuoteMeta("SELECT " + wordColumns + " FROM words WHERE name = ? AND " + visibleTo + " ORDER BY id LIMIT 1")

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		rows := sqlmock.NewRows(wordRowColumns).
			AddRow(3, "abandon", "verb", "to leave behind", `["x ____"]`, "B2", "oxford", nil, now)
		mock.ExpectQuery(query).WithArgs("abandon", learnerID.String()).WillReturnRows(rows)

		got, err := repo.FindByName(context.Background(), learnerID, "abandon")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(3), got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(query).WithArgs("missing", learnerID.String()).WillReturnRows(sqlmock.NewRows(wordRowColumns))

		got, err := repo.FindByName(context.Background(), learnerID, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBWordRepository_Create(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	owner := uuid.MustParse("5b0f8f3e-8a36-4c55-9d7c-0d1f1e0c2a11")
	query := regexp.QuoteMeta("INSERT INTO words (name, part_of_speech, meaning, examples, level, source, owner_id, created_at)")

	tests := []struct {
		name      string
		word      Word
		setupMock func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErr   bool
	}{
		{
			name: "custom word",
			word: Word{
				Name: "serendipity", PartOfSpeech: "noun", Meaning: "a happy accident",
				Examples: Examples{"It was pure ____."}, Level: LevelC1, Source: SourceCustom,
				OwnerID: uuid.NullUUID{UUID: owner, Valid: true}, CreatedAt: now,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WithArgs("serendipity", "noun", "a happy accident", `["It was pure ____."]`, "C1", "custom", owner.String(), now).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "catalog word has no owner",
			word: Word{
				Name: "abandon", PartOfSpeech: "verb", Meaning: "to leave behind",
				Examples: Examples{"x ____"}, Level: LevelB2, Source: SourceOxford, CreatedAt: now,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WithArgs("abandon", "verb", "to leave behind", `["x ____"]`, "B2", "oxford", nil, now).
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			wantID: 7,
		},
		{
			name: "duplicate key",
			word: Word{
				Name: "abandon", PartOfSpeech: "verb", Meaning: "to leave behind",
				Examples: Examples{"x ____"}, Level: LevelB2, Source: SourceOxford, CreatedAt: now,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WillReturnError(fmt.Errorf("Error 1062: Duplicate entry"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			word := tt.word
			err := repo.Create(context.Background(), &word)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, word.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
