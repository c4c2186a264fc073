package sqlite

import (
	"context"
	"database/sql"

	"github.com/recordhub/records-api/internal/core/domain"
)

const orderColumns = "id, description, start_date, end_date, address, price, customer_id, executor_id"

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o          domain.Order
		start, end string
	)
	if err := row.Scan(&o.ID, &o.Description, &start, &end, &o.Address, &o.Price, &o.CustomerID, &o.ExecutorID); err != nil {
		return domain.Order{}, err
	}
	var err error
	if o.StartDate, err = domain.ParseISODate(start); err != nil {
		return domain.Order{}, err
	}
	if o.EndDate, err = domain.ParseISODate(end); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = ?", id))
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO orders ("+orderColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		o.ID, o.Description, o.StartDate.String(), o.EndDate.String(), o.Address, o.Price, o.CustomerID, o.ExecutorID,
	)
	return translate(err)
}

func (r *OrderRepository) Update(ctx context.Context, id int64, o *domain.Order) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE orders
		    SET id = ?, description = ?, start_date = ?, end_date = ?,
		        address = ?, price = ?, customer_id = ?, executor_id = ?
		  WHERE id = ?`,
		o.ID, o.Description, o.StartDate.String(), o.EndDate.String(), o.Address, o.Price, o.CustomerID, o.ExecutorID, id,
	))
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id))
}
