package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"giraffe-store/internal/models"
	"giraffe-store/internal/service"
)

//go:generate mockery --name=CheckoutProvider --output=./mocks --case=underscore
type CheckoutProvider interface {
	Submit(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutResult, error)
	State() service.CheckoutState
	Reset()
	ClearError()
	Quote(deliveryID string) service.Quote
}

type CheckoutHandler struct {
	checkout CheckoutProvider
}

func NewCheckoutHandler(c CheckoutProvider) *CheckoutHandler {
	return &CheckoutHandler{checkout: c}
}

type checkoutResponse struct {
	State           service.CheckoutState   `json:"state"`
	DeliveryOptions []models.DeliveryOption `json:"deliveryOptions"`
	Quote           service.Quote           `json:"quote"`
}

func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, checkoutResponse{
		State:           h.checkout.State(),
		DeliveryOptions: service.DeliveryOptions,
		Quote:           h.checkout.Quote(c.Query("deliveryOptionId")),
	})
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}

	res, err := h.checkout.Submit(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *CheckoutHandler) Reset(c *gin.Context) {
	h.checkout.Reset()
	c.JSON(http.StatusOK, h.checkout.State())
}

func (h *CheckoutHandler) ClearError(c *gin.Context) {
	h.checkout.ClearError()
	c.JSON(http.StatusOK, h.checkout.State())
}
