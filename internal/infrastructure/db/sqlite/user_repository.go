package sqlite

import (
	"context"
	"database/sql"

	"github.com/recordhub/records-api/internal/core/domain"
)

const userColumns = "id, first_name, last_name, age, email, role, phone"

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone)
	return u, err
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone,
	)
	return translate(err)
}

func (r *UserRepository) Update(ctx context.Context, id int64, u *domain.User) error {
	return affected(r.db.ExecContext(ctx,
		"UPDATE users SET id = ?, first_name = ?, last_name = ?, age = ?, email = ?, role = ?, phone = ? WHERE id = ?",
		u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone, id,
	))
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id))
}
