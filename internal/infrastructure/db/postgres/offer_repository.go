package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recordhub/records-api/internal/core/domain"
)

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

func scanOffer(row pgx.CollectableRow) (domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.OrderID, &o.ExecutorID)
	return o, err
}

func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, order_id, executor_id FROM offers ORDER BY id")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOffer)
}

func (r *OfferRepository) FindByID(ctx context.Context, id int64) (*domain.Offer, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, order_id, executor_id FROM offers WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOffer)
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO offers (id, order_id, executor_id) VALUES ($1, $2, $3)",
		o.ID, o.OrderID, o.ExecutorID,
	)
	return translate(err)
}

func (r *OfferRepository) Update(ctx context.Context, id int64, o *domain.Offer) error {
	return affected(r.pool.Exec(ctx,
		"UPDATE offers SET id = $1, order_id = $2, executor_id = $3 WHERE id = $4",
		o.ID, o.OrderID, o.ExecutorID, id,
	))
}

func (r *OfferRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.pool.Exec(ctx, "DELETE FROM offers WHERE id = $1", id))
}
