package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recordhub/records-api/internal/core/domain"
)

const orderColumns = "id, description, start_date, end_date, address, price, customer_id, executor_id"

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func scanOrder(row pgx.CollectableRow) (domain.Order, error) {
	var (
		o          domain.Order
		start, end time.Time
	)
	if err := row.Scan(&o.ID, &o.Description, &start, &end, &o.Address, &o.Price, &o.CustomerID, &o.ExecutorID); err != nil {
		return domain.Order{}, err
	}
	o.StartDate = domain.DateOf(start)
	o.EndDate = domain.DateOf(end)
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY id")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOrder)
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO orders ("+orderColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		o.ID, o.Description, o.StartDate.Time(), o.EndDate.Time(), o.Address, o.Price, o.CustomerID, o.ExecutorID,
	)
	return translate(err)
}

func (r *OrderRepository) Update(ctx context.Context, id int64, o *domain.Order) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE orders
		    SET id = $1, description = $2, start_date = $3, end_date = $4,
		        address = $5, price = $6, customer_id = $7, executor_id = $8
		  WHERE id = $9`,
		o.ID, o.Description, o.StartDate.Time(), o.EndDate.Time(), o.Address, o.Price, o.CustomerID, o.ExecutorID, id,
	))
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", id))
}
