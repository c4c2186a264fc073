package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recordhub/records-api/internal/api/metrics"
	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/core/ports"
)

type UserHandler struct {
	users   ports.UserService
	metrics *metrics.Metrics
}

func NewUserHandler(users ports.UserService, m *metrics.Metrics) *UserHandler {
	return &UserHandler{users: users, metrics: m}
}

// List returns every stored user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {string}  string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create stores a user under the id given in the body.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      plain
// @Param        body  body      userRequest  true  "Complete user record"
// @Success      200   {string}  string
// @Failure      400   {string}  string
// @Failure      409   {string}  string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := bindRecord(c, domain.ResourceUser, &req); err != nil {
		return err
	}
	if err := h.users.CreateUser(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceUser, metrics.OpCreate)
	return c.String(http.StatusOK, msgUserCreated)
}

// Get returns one user.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {string}  string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ResourceUser)
	if err != nil {
		return err
	}
	u, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Update replaces every field of a user. A changed id is handled per domain.IDPolicy.
//
// @Summary      Replace a user
// @Tags         users
// @Accept       json
// @Produce      plain
// @Param        id    path      int          true  "User id"
// @Param        body  body      userRequest  true  "Complete user record"
// @Success      200   {string}  string
// @Failure      400   {string}  string
// @Failure      404   {string}  string
// @Failure      409   {string}  string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ResourceUser)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if _, err := h.users.GetUser(ctx, id); err != nil {
		return err
	}

	var req userRequest
	if err := bindRecord(c, domain.ResourceUser, &req); err != nil {
		return err
	}
	if err := h.users.UpdateUser(ctx, id, req.toDomain()); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceUser, metrics.OpUpdate)
	return c.String(http.StatusOK, msgUserUpdated)
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      plain
// @Param        id   path      int  true  "User id"
// @Success      200  {string}  string
// @Failure      404  {string}  string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ResourceUser)
	if err != nil {
		return err
	}
	if err := h.users.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceUser, metrics.OpDelete)
	return c.String(http.StatusOK, fmt.Sprintf(msgUserDeleted, id))
}
