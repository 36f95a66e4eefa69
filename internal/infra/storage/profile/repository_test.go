package profile

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

func TestRepository_IsAdmin(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	admin, guest := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT is_admin FROM profiles WHERE user_id = $1")).
		WithArgs(admin).
		WillReturnRows(sqlmock.NewRows([]string{"is_admin"}).AddRow(true))
	isAdmin, err := repo.IsAdmin(context.Background(), admin)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT is_admin FROM profiles")).
		WithArgs(guest).
		WillReturnRows(sqlmock.NewRows([]string{"is_admin"}))
	_, err = repo.IsAdmin(context.Background(), guest)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT is_admin FROM profiles")).
		WillReturnError(errors.New("connection refused"))
	_, err = repo.IsAdmin(context.Background(), guest)
	assert.ErrorIs(t, err, ErrScanRow)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_KeepsAdminFlagOutOfUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles (user_id,full_name,email) VALUES ($1,$2,$3) "+
		"ON CONFLICT (user_id) DO UPDATE SET full_name = EXCLUDED.full_name, email = EXCLUDED.email, updated_at = NOW() RETURNING")).
		WithArgs(userID, "Asha Rao", "asha@example.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(userID.String(), "Asha Rao", "asha@example.com", true, nil, now, now))

	saved, err := NewRepository(db).Upsert(context.Background(), &domain.Profile{
		UserID:   userID,
		FullName: "Asha Rao",
		Email:    "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", saved.FullName)
	assert.True(t, saved.IsAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EnsureExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles (user_id,full_name,email) VALUES ($1,$2,$3) ON CONFLICT (user_id) DO NOTHING")).
		WithArgs(userID, "", "new@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id = \\$1").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(userID.String(), "", "new@example.com", false, nil, now, now))

	profile, err := NewRepository(db).EnsureExists(context.Background(), userID, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.False(t, profile.IsAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetAdminByEmail_Unknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET is_admin = $1, updated_at = NOW() WHERE email = $2")).
		WithArgs(true, "nobody@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).SetAdminByEmail(context.Background(), "nobody@example.com", true)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
