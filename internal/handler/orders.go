package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"giraffe-store/internal/models"
	"giraffe-store/internal/notify"
)

//go:generate mockery --name=OrderProvider --output=./mocks --case=underscore
type OrderProvider interface {
	History(ctx context.Context) []models.Order
	Order(ctx context.Context, id string) (models.Order, error)
}

type NotificationFeed interface {
	Recent(n int) []notify.Notification
}

type OrderHandler struct {
	service OrderProvider
	feed    NotificationFeed
}

func NewOrderHandler(s OrderProvider, feed NotificationFeed) *OrderHandler {
	return &OrderHandler{service: s, feed: feed}
}

func (h *OrderHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.History(c.Request.Context()))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		badRequest(c, "Неправильный ID")
		return
	}
	ctx := c.Request.Context()

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("http.request.order_id", id))

	order, err := h.service.Order(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetNotifications отдает последние уведомления, ?limit= ограничивает число.
func (h *OrderHandler) GetNotifications(c *gin.Context) {
	var q struct {
		Limit int `form:"limit" binding:"omitempty,min=0,max=50"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Некорректный limit")
		return
	}
	c.JSON(http.StatusOK, h.feed.Recent(q.Limit))
}
