package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

// UserProfileRepository defines persistence access for account profiles.
type UserProfileRepository interface {
	Create(ctx context.Context, userID string) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	UpdateDetails(ctx context.Context, userID, bio, phone, address string) error
	UpdateAvatar(ctx context.Context, userID, avatar string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type userProfileRepository struct {
	pool *pgxpool.Pool
}

// NewUserProfileRepository returns a Postgres-backed implementation.
func NewUserProfileRepository(pool *pgxpool.Pool) UserProfileRepository {
	return &userProfileRepository{pool: pool}
}

func (r *userProfileRepository) Create(ctx context.Context, userID string) error {
	const query = `INSERT INTO user_profiles (user_id) VALUES ($1)`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

func (r *userProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	const query = `
        SELECT user_id, avatar, bio, phone, address, created_at, updated_at
        FROM user_profiles WHERE user_id=$1`

	var profile domain.UserProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Avatar,
		&profile.Bio,
		&profile.Phone,
		&profile.Address,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) UpdateDetails(ctx context.Context, userID, bio, phone, address string) error {
	const query = `
        UPDATE user_profiles SET bio=$1, phone=$2, address=$3, updated_at=NOW()
        WHERE user_id=$4`

	cmd, err := r.pool.Exec(ctx, query, bio, phone, address, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userProfileRepository) UpdateAvatar(ctx context.Context, userID, avatar string) error {
	const query = `UPDATE user_profiles SET avatar=$1, updated_at=NOW() WHERE user_id=$2`
	cmd, err := r.pool.Exec(ctx, query, avatar, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	const query = `DELETE FROM user_profiles WHERE user_id=$1`
	cmd, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
