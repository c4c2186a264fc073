package sqlite

import (
	"context"
	"database/sql"

	"github.com/recordhub/records-api/internal/core/domain"
)

type OfferRepository struct {
	db *sql.DB
}

func NewOfferRepository(db *sql.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func scanOffer(row rowScanner) (domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.OrderID, &o.ExecutorID)
	return o, err
}

func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, order_id, executor_id FROM offers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) FindByID(ctx context.Context, id int64) (*domain.Offer, error) {
	o, err := scanOffer(r.db.QueryRowContext(ctx, "SELECT id, order_id, executor_id FROM offers WHERE id = ?", id))
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO offers (id, order_id, executor_id) VALUES (?, ?, ?)",
		o.ID, o.OrderID, o.ExecutorID,
	)
	return translate(err)
}

func (r *OfferRepository) Update(ctx context.Context, id int64, o *domain.Offer) error {
	return affected(r.db.ExecContext(ctx,
		"UPDATE offers SET id = ?, order_id = ?, executor_id = ? WHERE id = ?",
		o.ID, o.OrderID, o.ExecutorID, id,
	))
}

func (r *OfferRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, "DELETE FROM offers WHERE id = ?", id))
}
