package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"giraffe-store/internal/cart"
	"giraffe-store/internal/models"
)

type CartProvider interface {
	AddItem(ctx context.Context, p *models.Product) error
	RemoveItem(ctx context.Context, id models.ProductID)
	Clear(ctx context.Context)
	Items() []models.CartItem
	Unavailable() []models.UnavailableItem
	Count() int
	TotalPrice() decimal.Decimal
}

// ProductSource проверяет, что товар можно положить в корзину.
//
//go:generate mockery --name=ProductSource --output=./mocks --case=underscore
type ProductSource interface {
	AvailableProduct(ctx context.Context, id models.ProductID) (models.Product, error)
}

//go:generate mockery --name=CartChecker --output=./mocks --case=underscore
type CartChecker interface {
	Check(ctx context.Context) ([]models.UnavailableItem, error)
}

type CartHandler struct {
	cart     CartProvider
	products ProductSource
	checker  CartChecker
}

func NewCartHandler(c CartProvider, products ProductSource, checker CartChecker) *CartHandler {
	return &CartHandler{cart: c, products: products, checker: checker}
}

type cartResponse struct {
	Items            []models.CartItem        `json:"items"`
	Count            int                      `json:"count"`
	MaxItems         int                      `json:"maxItems"`
	TotalPrice       decimal.Decimal          `json:"totalPrice"`
	UnavailableItems []models.UnavailableItem `json:"unavailableItems"`
}

type addItemRequest struct {
	ProductID models.ProductID `json:"productId" binding:"required"`
}

func (h *CartHandler) snapshot() cartResponse {
	return cartResponse{
		Items:            h.cart.Items(),
		Count:            h.cart.Count(),
		MaxItems:         cart.MaxItems,
		TotalPrice:       h.cart.TotalPrice(),
		UnavailableItems: h.cart.Unavailable(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// AddItem кладет товар в корзину. Статус товара проверяется по API.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Не передан productId")
		return
	}
	ctx := c.Request.Context()

	p, err := h.products.AvailableProduct(ctx, req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.cart.AddItem(ctx, &p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id := models.ProductID(c.Param("id"))
	if id == "" {
		badRequest(c, "Неправильный ID товара")
		return
	}
	h.cart.RemoveItem(c.Request.Context(), id)
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, h.snapshot())
}

// Check запускает сверку корзины вне расписания.
func (h *CartHandler) Check(c *gin.Context) {
	removed, err := h.checker.Check(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if removed == nil {
		removed = []models.UnavailableItem{}
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed, "cart": h.snapshot()})
}
