package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/glp1-companion/internal/database"
)

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name",
	"condition", "preferences", "created_at",
}

func newRepoWithMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(database.NewBunDB(sqlDB)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), newTestUser(" Ada@Example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateDuplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), newTestUser("ada@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRepository_CreateDBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), newTestUser("ada@example.com"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
	assert.Contains(t, err.Error(), "db down")
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	id := uuid.New()
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows(userColumns).
		AddRow(id.String(), "ada@example.com", "hash", "Ada", "Lovelace", "type2", []byte(`{"exerciseLevel":"low"}`), createdAt)
	mock.ExpectQuery(`SELECT .* FROM "users".* WHERE .*email = 'ada@example.com'`).
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Lovelace", got.LastName)
	require.NotNil(t, got.Condition)
	assert.Equal(t, "type2", *got.Condition)
	require.NotNil(t, got.Preferences)
	assert.Equal(t, "low", got.Preferences.ExerciseLevel)
	assert.True(t, createdAt.Equal(got.CreatedAt))
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_UpdatePreferences(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "users".* SET preferences = .*::jsonb`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "ada@example.com", "hash", "Ada", "Lovelace", nil, []byte(`{"foodAllergies":["peanuts"]}`), time.Now()))

	got, err := repo.UpdatePreferences(context.Background(), id, &Preferences{FoodAllergies: []string{"peanuts"}})
	require.NoError(t, err)
	require.NotNil(t, got.Preferences)
	assert.Equal(t, []string{"peanuts"}, got.Preferences.FoodAllergies)
	assert.Nil(t, got.Condition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePreferencesUnknownUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE "users"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdatePreferences(context.Background(), uuid.New(), &Preferences{})
	assert.ErrorIs(t, err, ErrNotFound)
}
