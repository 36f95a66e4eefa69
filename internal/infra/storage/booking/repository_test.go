package booking

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
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func day(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func bookingRow(b *domain.Booking) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		b.ID.String(), b.UserID.String(), b.RoomID.String(),
		b.CheckIn, b.CheckOut, b.Guests,
		b.Guest.Name, b.Guest.Phone, b.Guest.Email,
		b.TotalPrice, string(b.Status), nil,
		b.CreatedAt, b.UpdatedAt,
	)
}

func sampleBooking() *domain.Booking {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		RoomID:     uuid.New(),
		CheckIn:    day("2024-06-01"),
		CheckOut:   day("2024-06-03"),
		Guests:     2,
		Guest:      domain.GuestContact{Name: "Asha", Phone: "+91 98000 00000", Email: "asha@example.com"},
		TotalPrice: 30000,
		Status:     domain.StatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, closeDB := newRepo(t)
	defer closeDB()

	b := sampleBooking()
	b.ID = uuid.Nil
	created := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (id,user_id,room_id,check_in,check_out,guests,guest_name,guest_phone,guest_email,total_price,status)")).
		WithArgs(sqlmock.AnyArg(), b.UserID, b.RoomID, b.CheckIn, b.CheckOut, 2, "Asha", "+91 98000 00000", "asha@example.com", int64(30000), "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	got, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, closeDB := newRepo(t)
	defer closeDB()

	b := sampleBooking()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
		WithArgs(b.ID).
		WillReturnRows(bookingRow(b))

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.Equal(t, "Asha", got.Guest.Name)
	assert.Nil(t, got.CancelledAt)

	missing := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
		WithArgs(missing).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = repo.GetByID(context.Background(), missing)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_AppliesFilterNewestFirst(t *testing.T) {
	repo, mock, closeDB := newRepo(t)
	defer closeDB()

	status := domain.StatusPending
	roomID := uuid.New()
	from, to := day("2024-06-01"), day("2024-06-30")

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE room_id = $1 AND status = $2 AND check_in >= $3 AND check_in <= $4 ORDER BY created_at DESC")).
		WithArgs(roomID, "pending", from, to).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background(), domain.BookingsFilter{
		RoomID:      &roomID,
		Status:      &status,
		CheckInFrom: &from,
		CheckInTo:   &to,
	})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOverlapping_LocksInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	b := sampleBooking()
	checkIn, checkOut := day("2024-06-02"), day("2024-06-05")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE room_id = $1 AND status IN ($2,$3) AND check_in < $4 AND check_out > $5 ORDER BY check_in ASC FOR UPDATE")).
		WithArgs(b.RoomID, "pending", "confirmed", checkOut, checkIn).
		WillReturnRows(bookingRow(b))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	got, err := repo.GetOverlapping(ctx, b.RoomID, checkIn, checkOut)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock, closeDB := newRepo(t)
	defer closeDB()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, cancelled_at = NOW(), updated_at = NOW() WHERE id = $2 AND status IN ($3,$4)")).
		WithArgs("cancelled", id, "pending", "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Cancel(context.Background(), id))

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Cancel(context.Background(), id), ErrStatusConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_CompareAndSet(t *testing.T) {
	repo, mock, closeDB := newRepo(t)
	defer closeDB()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3")).
		WithArgs("completed", id, "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, domain.StatusConfirmed, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, closeDB := newRepo(t)
	defer closeDB()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrBookingNotFound)

	mock.ExpectExec("DELETE FROM bookings").
		WillReturnError(errors.New("connection reset"))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrExecQuery)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumRevenue(t *testing.T) {
	repo, mock, closeDB := newRepo(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status IN ($1,$2)")).
		WithArgs("confirmed", "completed").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(int64(95000)))

	revenue, err := repo.SumRevenue(context.Background(), domain.RevenueStatuses)
	require.NoError(t, err)
	assert.Equal(t, int64(95000), revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
