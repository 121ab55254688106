package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

// SmeProfileRepository defines persistence access for business profiles.
type SmeProfileRepository interface {
	Create(ctx context.Context, profile *domain.SmeProfile) error
	GetByID(ctx context.Context, id string) (*domain.SmeProfile, error)
	GetBySmeID(ctx context.Context, smeID string) (*domain.SmeProfile, error)
	List(ctx context.Context) ([]domain.SmeProfile, error)
	UpdateStatus(ctx context.Context, id string, status domain.SmeProfileStatus) error
	// DeleteBySmeID removes the profile owned by an account if one exists.
	// Accounts without a business profile are not an error here; the
	// cascade caller decides what absence means.
	DeleteBySmeID(ctx context.Context, smeID string) error
}

type smeProfileRepository struct {
	pool *pgxpool.Pool
}

// NewSmeProfileRepository returns a Postgres-backed implementation.
func NewSmeProfileRepository(pool *pgxpool.Pool) SmeProfileRepository {
	return &smeProfileRepository{pool: pool}
}

const smeProfileColumns = `id, sme_id, business_name, category, address, elevator_pitch,
        pitch_deck, tin_number, cac_number, logo, status, created_at, updated_at`

func (r *smeProfileRepository) Create(ctx context.Context, profile *domain.SmeProfile) error {
	const query = `
        INSERT INTO sme_profiles
            (id, sme_id, business_name, category, address, elevator_pitch, pitch_deck, tin_number, cac_number, status)
        VALUES ($1, $2, LOWER($3), LOWER($4), $5, $6, $7, $8, $9, $10)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.SmeID,
		profile.BusinessName,
		profile.Category,
		profile.Address,
		profile.ElevatorPitch,
		profile.PitchDeck,
		profile.TinNumber,
		profile.CacNumber,
		profile.Status,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *smeProfileRepository) GetByID(ctx context.Context, id string) (*domain.SmeProfile, error) {
	const query = `SELECT ` + smeProfileColumns + ` FROM sme_profiles WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *smeProfileRepository) GetBySmeID(ctx context.Context, smeID string) (*domain.SmeProfile, error) {
	const query = `SELECT ` + smeProfileColumns + ` FROM sme_profiles WHERE sme_id=$1`
	return r.scanOne(ctx, query, smeID)
}

func (r *smeProfileRepository) List(ctx context.Context) ([]domain.SmeProfile, error) {
	const query = `SELECT ` + smeProfileColumns + ` FROM sme_profiles ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.SmeProfile
	for rows.Next() {
		profile, err := scanSmeProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

func (r *smeProfileRepository) UpdateStatus(ctx context.Context, id string, status domain.SmeProfileStatus) error {
	const query = `UPDATE sme_profiles SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *smeProfileRepository) DeleteBySmeID(ctx context.Context, smeID string) error {
	const query = `DELETE FROM sme_profiles WHERE sme_id=$1`
	_, err := r.pool.Exec(ctx, query, smeID)
	return err
}

func (r *smeProfileRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.SmeProfile, error) {
	return scanSmeProfile(r.pool.QueryRow(ctx, query, args...))
}

func scanSmeProfile(row pgx.Row) (*domain.SmeProfile, error) {
	var profile domain.SmeProfile
	if err := row.Scan(
		&profile.ID,
		&profile.SmeID,
		&profile.BusinessName,
		&profile.Category,
		&profile.Address,
		&profile.ElevatorPitch,
		&profile.PitchDeck,
		&profile.TinNumber,
		&profile.CacNumber,
		&profile.Logo,
		&profile.Status,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
