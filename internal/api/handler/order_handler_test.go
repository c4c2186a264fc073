package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/recordhub/records-api/internal/core/domain"
)

type stubOrderService struct {
	getFn    func(ctx context.Context, id int64) (*domain.Order, error)
	createFn func(ctx context.Context, o domain.Order) error
	updateFn func(ctx context.Context, id int64, o domain.Order) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

func (s *stubOrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, o domain.Order) error {
	return s.createFn(ctx, o)
}

func (s *stubOrderService) UpdateOrder(ctx context.Context, id int64, o domain.Order) error {
	return s.updateFn(ctx, id, o)
}

func (s *stubOrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func orderBody(start, end string) string {
	return `{"id":1,"description":"Покраска","start_date":"` + start + `","end_date":"` + end +
		`","address":"ул. Ленина, 1","price":1500.5,"customer_id":1,"executor_id":2}`
}

func TestOrderHandler_Create_ParsesDates(t *testing.T) {
	var got domain.Order
	stub := &stubOrderService{
		createFn: func(ctx context.Context, o domain.Order) error {
			got = o
			return nil
		},
	}
	h := NewOrderHandler(stub, newTestMetrics())

	c, rec := newContext(http.MethodPost, "/orders", "", strings.NewReader(orderBody("01/15/2024", "02/20/2024")))
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "Заказ записан в базу данных " {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if got.StartDate != domain.NewDate(2024, time.January, 15) || got.EndDate != domain.NewDate(2024, time.February, 20) {
		t.Fatalf("unexpected dates %s %s", got.StartDate, got.EndDate)
	}
	if got.Price != 1500.5 || got.CustomerID != 1 || got.ExecutorID != 2 {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestOrderHandler_Create_BadDates(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{}, newTestMetrics())

	for _, pair := range [][2]string{
		{"2024-01-15", "02/20/2024"},
		{"01/15/2024", "20.02.2024"},
		{"02/30/2024", "02/20/2024"},
		{"01/15/2024", "aa/bb/cccc"},
	} {
		c, _ := newContext(http.MethodPost, "/orders", "", strings.NewReader(orderBody(pair[0], pair[1])))
		re := expectKind(t, h.Create(c), domain.ErrMalformedInput)
		if re.Resource != domain.ResourceOrder {
			t.Fatalf("expected order resource, got %s", re.Resource)
		}
	}
}

func TestOrderHandler_Delete(t *testing.T) {
	stub := &stubOrderService{
		deleteFn: func(ctx context.Context, id int64) error {
			return domain.NewRecordError(domain.ResourceOrder, id, domain.ErrNotFound)
		},
	}
	h := NewOrderHandler(stub, newTestMetrics())

	c, _ := newContext(http.MethodDelete, "/orders/8", "8", nil)
	re := expectKind(t, h.Delete(c), domain.ErrNotFound)
	if re.Resource != domain.ResourceOrder {
		t.Fatalf("order delete must report the order resource, got %s", re.Resource)
	}
}
