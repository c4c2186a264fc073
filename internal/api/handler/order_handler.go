package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recordhub/records-api/internal/api/metrics"
	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/core/ports"
)

type OrderHandler struct {
	orders  ports.OrderService
	metrics *metrics.Metrics
}

func NewOrderHandler(orders ports.OrderService, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{orders: orders, metrics: m}
}

// List returns every stored order.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      500  {string}  string
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Create stores an order under the id given in the body.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      plain
// @Param        body  body      orderRequest  true  "Complete order record, dates as MM/DD/YYYY"
// @Success      200   {string}  string
// @Failure      400   {string}  string
// @Failure      409   {string}  string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := bindRecord(c, domain.ResourceOrder, &req); err != nil {
		return err
	}
	if err := h.orders.CreateOrder(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceOrder, metrics.OpCreate)
	return c.String(http.StatusOK, msgOrderCreated)
}

// Get returns one order.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {string}  string
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ResourceOrder)
	if err != nil {
		return err
	}
	o, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// Update replaces every field of an order. A changed id is handled per domain.IDPolicy.
//
// @Summary      Replace an order
// @Tags         orders
// @Accept       json
// @Produce      plain
// @Param        id    path      int          true  "Order id"
// @Param        body  body      orderRequest  true  "Complete order record, dates as MM/DD/YYYY"
// @Success      200   {string}  string
// @Failure      400   {string}  string
// @Failure      404   {string}  string
// @Failure      409   {string}  string
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ResourceOrder)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if _, err := h.orders.GetOrder(ctx, id); err != nil {
		return err
	}

	var req orderRequest
	if err := bindRecord(c, domain.ResourceOrder, &req); err != nil {
		return err
	}
	if err := h.orders.UpdateOrder(ctx, id, req.toDomain()); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceOrder, metrics.OpUpdate)
	return c.String(http.StatusOK, msgOrderUpdated)
}

// Delete removes an order.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      plain
// @Param        id   path      int  true  "Order id"
// @Success      200  {string}  string
// @Failure      404  {string}  string
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ResourceOrder)
	if err != nil {
		return err
	}
	if err := h.orders.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceOrder, metrics.OpDelete)
	return c.String(http.StatusOK, fmt.Sprintf(msgOrderDeleted, id))
}
