package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByEmailAndStatus(ctx context.Context, email string, status domain.UserStatus) (*domain.User, error)
	List(ctx context.Context, role *domain.Role) ([]domain.User, error)
	UpdateName(ctx context.Context, id, name string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	// UpdateStatusExcludingEmail applies the status to the target row only
	// when its email differs from excludeEmail, making the self-protection
	// check and the mutation a single atomic statement. Returns whether a
	// row matched.
	UpdateStatusExcludingEmail(ctx context.Context, id string, status domain.UserStatus, excludeEmail string) (bool, error)
	// DeleteExcludingEmail removes the target row under the same exclusion
	// condition. Returns whether a row matched.
	DeleteExcludingEmail(ctx context.Context, id, excludeEmail string) (bool, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, user_type, status, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (id, name, email, password_hash, user_type, status)
        VALUES ($1, $2, LOWER($3), $4, $5, $6)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.UserType,
		user.Status,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=LOWER($1)`
	return r.scanOne(ctx, query, email)
}

func (r *userRepository) GetByEmailAndStatus(ctx context.Context, email string, status domain.UserStatus) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=LOWER($1) AND status=$2`
	return r.scanOne(ctx, query, email, status)
}

func (r *userRepository) List(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	args := []any{}
	if role != nil {
		query = `SELECT ` + userColumns + ` FROM users WHERE user_type=$1 ORDER BY created_at`
		args = append(args, *role)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.UserType,
			&user.Status,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdateName(ctx context.Context, id, name string) error {
	const query = `UPDATE users SET name=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.pool.Exec(ctx, query, name, id)
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	const query = `UPDATE users SET password_hash=$1, updated_at=NOW() WHERE email=LOWER($2)`
	_, err := r.pool.Exec(ctx, query, passwordHash, email)
	return err
}

func (r *userRepository) UpdateStatusExcludingEmail(ctx context.Context, id string, status domain.UserStatus, excludeEmail string) (bool, error) {
	const query = `UPDATE users SET status=$1, updated_at=NOW() WHERE id=$2 AND email <> LOWER($3)`
	cmd, err := r.pool.Exec(ctx, query, status, id, excludeEmail)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *userRepository) DeleteExcludingEmail(ctx context.Context, id, excludeEmail string) (bool, error) {
	const query = `DELETE FROM users WHERE id=$1 AND email <> LOWER($2)`
	cmd, err := r.pool.Exec(ctx, query, id, excludeEmail)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *userRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.UserType,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
