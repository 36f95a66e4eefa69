package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

const tableName = "profiles"

var columns = []string{
	"user_id",
	"full_name",
	"email",
	"is_admin",
	"last_login_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей гостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает профиль пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan profile: %v", ErrScanRow, err)
	}

	return profile, nil
}

// IsAdmin читает флаг администратора
// Возвращает ErrProfileNotFound, если профиля нет
func (r *Repository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("is_admin").
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsAdmin - build select query: %v", ErrBuildQuery, err)
	}

	var isAdmin bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&isAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrProfileNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsAdmin - scan is_admin: %v", ErrScanRow, err)
	}

	return isAdmin, nil
}

// Upsert создает профиль или обновляет имя и email существующего (ON CONFLICT user_id)
// is_admin при обновлении не меняется
func (r *Repository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("user_id", "full_name", "email").
		Values(profile.UserID, profile.FullName, profile.Email).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET full_name = EXCLUDED.full_name, email = EXCLUDED.email, updated_at = NOW() " +
			"RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	saved, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return saved, nil
}

// EnsureExists создает пустой профиль, если его нет, и возвращает актуальную запись
func (r *Repository) EnsureExists(ctx context.Context, userID uuid.UUID, email string) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("user_id", "full_name", "email").
		Values(userID, "", email).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: EnsureExists - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: EnsureExists - execute insert: %v", ErrExecQuery, err)
	}

	return r.GetByUserID(ctx, userID)
}

// TouchLastLogin отмечает время последнего входа
func (r *Repository) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("last_login_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: TouchLastLogin - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "TouchLastLogin", query, args)
}

// SetAdminByEmail выставляет флаг администратора по email профиля
func (r *Repository) SetAdminByEmail(ctx context.Context, email string, isAdmin bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("is_admin", isAdmin).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAdminByEmail - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "SetAdminByEmail", query, args)
}

// Count количество профилей
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(tableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

func (r *Repository) execOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.Email,
		&profile.IsAdmin,
		&profile.LastLoginAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	return &profile, nil
}
