// Package contracttest holds behaviour every repository adapter must satisfy.
// Adapters call the Run* functions from their own tests with a factory that
// returns a repository over an empty store.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/core/ports"
)

func RunUserRepo(t *testing.T, newRepo func(t *testing.T) ports.UserRepository) {
	t.Helper()
	ctx := context.Background()
	user := func(id int64) domain.User {
		return domain.User{ID: id, FirstName: "Иван", LastName: "Петров", Age: 41, Email: "ivan@example.com", Role: "customer", Phone: "+7 911 111 11 11"}
	}

	t.Run("empty list", func(t *testing.T) {
		repo := newRepo(t)
		users, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if users == nil || len(users) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", users)
		}
	})

	t.Run("create then find", func(t *testing.T) {
		repo := newRepo(t)
		want := user(1)
		if err := repo.Create(ctx, &want); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.FindByID(ctx, 1)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if *got != want {
			t.Fatalf("expected %+v, got %+v", want, *got)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := newRepo(t)
		u := user(1)
		if err := repo.Create(ctx, &u); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.Create(ctx, &u); !errors.Is(err, domain.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo := newRepo(t)
		if _, err := repo.FindByID(ctx, 404); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("find: expected ErrNotFound, got %v", err)
		}
		u := user(404)
		if err := repo.Update(ctx, 404, &u); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("update: expected ErrNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, 404); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("delete: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update moves key", func(t *testing.T) {
		repo := newRepo(t)
		u := user(5)
		if err := repo.Create(ctx, &u); err != nil {
			t.Fatalf("create: %v", err)
		}
		moved := user(6)
		moved.Age = 42
		if err := repo.Update(ctx, 5, &moved); err != nil {
			t.Fatalf("update: %v", err)
		}
		if _, err := repo.FindByID(ctx, 5); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected old key gone, got %v", err)
		}
		got, err := repo.FindByID(ctx, 6)
		if err != nil {
			t.Fatalf("find new key: %v", err)
		}
		if *got != moved {
			t.Fatalf("expected %+v, got %+v", moved, *got)
		}
	})

	t.Run("update onto taken key", func(t *testing.T) {
		repo := newRepo(t)
		a, b := user(1), user(2)
		if err := repo.Create(ctx, &a); err != nil {
			t.Fatalf("create a: %v", err)
		}
		if err := repo.Create(ctx, &b); err != nil {
			t.Fatalf("create b: %v", err)
		}
		clash := user(2)
		if err := repo.Update(ctx, 1, &clash); !errors.Is(err, domain.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		repo := newRepo(t)
		for _, id := range []int64{3, 1, 2} {
			u := user(id)
			if err := repo.Create(ctx, &u); err != nil {
				t.Fatalf("create %d: %v", id, err)
			}
		}
		if err := repo.Delete(ctx, 2); err != nil {
			t.Fatalf("delete: %v", err)
		}
		users, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(users) != 2 || users[0].ID != 1 || users[1].ID != 3 {
			t.Fatalf("expected ids [1 3], got %+v", users)
		}
	})
}

func RunOrderRepo(t *testing.T, newRepo func(t *testing.T) ports.OrderRepository) {
	t.Helper()
	ctx := context.Background()
	order := func(id int64) domain.Order {
		return domain.Order{
			ID:          id,
			Description: "Ремонт крыши",
			StartDate:   domain.NewDate(2024, time.January, 15),
			EndDate:     domain.NewDate(2024, time.February, 20),
			Address:     "пр. Мира, 10",
			Price:       12500.75,
			CustomerID:  1,
			ExecutorID:  2,
		}
	}

	t.Run("dates round trip", func(t *testing.T) {
		repo := newRepo(t)
		want := order(1)
		if err := repo.Create(ctx, &want); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.FindByID(ctx, 1)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if got.StartDate.String() != "2024-01-15" || got.EndDate.String() != "2024-02-20" {
			t.Fatalf("unexpected dates %s %s", got.StartDate, got.EndDate)
		}
		if *got != want {
			t.Fatalf("expected %+v, got %+v", want, *got)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := newRepo(t)
		o := order(1)
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.Create(ctx, &o); !errors.Is(err, domain.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		repo := newRepo(t)
		o := order(1)
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create: %v", err)
		}
		o.EndDate = domain.NewDate(2024, time.March, 1)
		o.Price = 1
		if err := repo.Update(ctx, 1, &o); err != nil {
			t.Fatalf("update: %v", err)
		}
		orders, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(orders) != 1 || orders[0] != o {
			t.Fatalf("unexpected orders %+v", orders)
		}
		if err := repo.Delete(ctx, 1); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.FindByID(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func RunOfferRepo(t *testing.T, newRepo func(t *testing.T) ports.OfferRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("lifecycle", func(t *testing.T) {
		repo := newRepo(t)
		o := domain.Offer{ID: 7, OrderID: 1, ExecutorID: 2}
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.Create(ctx, &o); !errors.Is(err, domain.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}

		moved := domain.Offer{ID: 8, OrderID: 3, ExecutorID: 4}
		if err := repo.Update(ctx, 7, &moved); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := repo.FindByID(ctx, 8)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if *got != moved {
			t.Fatalf("expected %+v, got %+v", moved, *got)
		}

		if err := repo.Delete(ctx, 8); err != nil {
			t.Fatalf("delete: %v", err)
		}
		offers, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(offers) != 0 {
			t.Fatalf("expected no offers, got %+v", offers)
		}
	})
}
