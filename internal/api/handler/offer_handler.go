package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recordhub/records-api/internal/api/metrics"
	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/core/ports"
)

type OfferHandler struct {
	offers  ports.OfferService
	metrics *metrics.Metrics
}

func NewOfferHandler(offers ports.OfferService, m *metrics.Metrics) *OfferHandler {
	return &OfferHandler{offers: offers, metrics: m}
}

// List returns every stored offer.
//
// @Summary      List offers
// @Tags         offers
// @Produce      json
// @Success      200  {array}   domain.Offer
// @Failure      500  {string}  string
// @Router       /offers [get]
func (h *OfferHandler) List(c echo.Context) error {
	offers, err := h.offers.ListOffers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// Create stores an offer under the id given in the body.
//
// @Summary      Create an offer
// @Tags         offers
// @Accept       json
// @Produce      plain
// @Param        body  body      offerRequest  true  "Complete offer record"
// @Success      200   {string}  string
// @Failure      400   {string}  string
// @Failure      409   {string}  string
// @Router       /offers [post]
func (h *OfferHandler) Create(c echo.Context) error {
	var req offerRequest
	if err := bindRecord(c, domain.ResourceOffer, &req); err != nil {
		return err
	}
	if err := h.offers.CreateOffer(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceOffer, metrics.OpCreate)
	return c.String(http.StatusOK, msgOfferCreated)
}

// Get returns one offer.
//
// @Summary      Get an offer
// @Tags         offers
// @Produce      json
// @Param        id   path      int  true  "Offer id"
// @Success      200  {object}  domain.Offer
// @Failure      404  {string}  string
// @Router       /offers/{id} [get]
func (h *OfferHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ResourceOffer)
	if err != nil {
		return err
	}
	o, err := h.offers.GetOffer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// Update replaces every field of an offer. A changed id is handled per domain.IDPolicy.
//
// @Summary      Replace an offer
// @Tags         offers
// @Accept       json
// @Produce      plain
// @Param        id    path      int          true  "Offer id"
// @Param        body  body      offerRequest  true  "Complete offer record"
// @Success      200   {string}  string
// @Failure      400   {string}  string
// @Failure      404   {string}  string
// @Failure      409   {string}  string
// @Router       /offers/{id} [put]
func (h *OfferHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ResourceOffer)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if _, err := h.offers.GetOffer(ctx, id); err != nil {
		return err
	}

	var req offerRequest
	if err := bindRecord(c, domain.ResourceOffer, &req); err != nil {
		return err
	}
	if err := h.offers.UpdateOffer(ctx, id, req.toDomain()); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceOffer, metrics.OpUpdate)
	return c.String(http.StatusOK, msgOfferUpdated)
}

// Delete removes an offer. The confirmation does not repeat the id.
//
// @Summary      Delete an offer
// @Tags         offers
// @Produce      plain
// @Param        id   path      int  true  "Offer id"
// @Success      200  {string}  string
// @Failure      404  {string}  string
// @Router       /offers/{id} [delete]
func (h *OfferHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ResourceOffer)
	if err != nil {
		return err
	}
	if err := h.offers.DeleteOffer(c.Request().Context(), id); err != nil {
		return err
	}
	h.metrics.RecordMutation(domain.ResourceOffer, metrics.OpDelete)
	return c.String(http.StatusOK, msgOfferDeleted)
}
