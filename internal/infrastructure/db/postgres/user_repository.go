package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recordhub/records-api/internal/core/domain"
)

const userColumns = "id, first_name, last_name, age, email, role, phone"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone)
	return u, err
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanUser)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO users ("+userColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
		u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone,
	)
	return translate(err)
}

func (r *UserRepository) Update(ctx context.Context, id int64, u *domain.User) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE users
		    SET id = $1, first_name = $2, last_name = $3, age = $4, email = $5, role = $6, phone = $7
		  WHERE id = $8`,
		u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone, id,
	))
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id))
}
