package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

// FundRequestRepository defines persistence access for fund requests.
type FundRequestRepository interface {
	Create(ctx context.Context, request *domain.FundRequest) error
	GetByID(ctx context.Context, id string) (*domain.FundRequest, error)
	ListBySmeID(ctx context.Context, smeID string) ([]domain.FundRequest, error)
}

type fundRequestRepository struct {
	pool *pgxpool.Pool
}

// NewFundRequestRepository returns a Postgres-backed implementation.
func NewFundRequestRepository(pool *pgxpool.Pool) FundRequestRepository {
	return &fundRequestRepository{pool: pool}
}

func (r *fundRequestRepository) Create(ctx context.Context, request *domain.FundRequest) error {
	const query = `
        INSERT INTO fund_requests (id, sme_id, milestone, description, amount)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		request.ID,
		request.SmeID,
		request.Milestone,
		request.Description,
		request.Amount,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
}

func (r *fundRequestRepository) GetByID(ctx context.Context, id string) (*domain.FundRequest, error) {
	const query = `
        SELECT id, sme_id, milestone, description, amount, created_at, updated_at
        FROM fund_requests WHERE id=$1`

	var request domain.FundRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.SmeID,
		&request.Milestone,
		&request.Description,
		&request.Amount,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *fundRequestRepository) ListBySmeID(ctx context.Context, smeID string) ([]domain.FundRequest, error) {
	const query = `
        SELECT id, sme_id, milestone, description, amount, created_at, updated_at
        FROM fund_requests WHERE sme_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, smeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.FundRequest
	for rows.Next() {
		var request domain.FundRequest
		if err := rows.Scan(
			&request.ID,
			&request.SmeID,
			&request.Milestone,
			&request.Description,
			&request.Amount,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
