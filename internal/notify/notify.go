// Package notify - пользовательские уведомления витрины: недоступные товары,
// созданные заказы. Уведомления складываются в ленту и, при включенной Kafka,
// публикуются в топик.
package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"giraffe-store/internal/models"

	"github.com/google/uuid"
)

type Kind string

const (
	KindItemsUnavailable Kind = "items_unavailable"
	KindOrderCreated     Kind = "order_created"
)

const FeedLimit = 50

type Notification struct {
	ID        uuid.UUID                `json:"id"`
	Kind      Kind                     `json:"kind"`
	Message   string                   `json:"message"`
	Items     []models.UnavailableItem `json:"items,omitempty"`
	OrderID   string                   `json:"orderId,omitempty"`
	CreatedAt time.Time                `json:"createdAt"`
}

//go:generate mockery --name=Notifier --output=./mocks --case=underscore
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NewUnavailableItems собирает уведомление об удаленных из корзины товарах.
func NewUnavailableItems(items []models.UnavailableItem) Notification {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.DisplayName())
	}
	return Notification{
		ID:        uuid.New(),
		Kind:      KindItemsUnavailable,
		Message:   "К сожалению, следующие товары стали недоступны и были удалены из корзины: " + strings.Join(names, ", "),
		Items:     append([]models.UnavailableItem(nil), items...),
		CreatedAt: time.Now(),
	}
}

func NewOrderCreated(orderID string) Notification {
	return Notification{
		ID:        uuid.New(),
		Kind:      KindOrderCreated,
		Message:   "Заказ #" + orderID + " успешно оформлен",
		OrderID:   orderID,
		CreatedAt: time.Now(),
	}
}

// Feed хранит последние FeedLimit уведомлений в памяти.
type Feed struct {
	mu    sync.RWMutex
	items []Notification
	limit int
}

func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = FeedLimit
	}
	return &Feed{limit: limit}
}

func (f *Feed) Notify(_ context.Context, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.items {
		if existing.ID == n.ID {
			return nil
		}
	}
	f.items = append(f.items, n)
	if len(f.items) > f.limit {
		f.items = f.items[len(f.items)-f.limit:]
	}
	return nil
}

// Recent возвращает до n уведомлений, новые первыми. n <= 0 - все.
func (f *Feed) Recent(n int) []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if n <= 0 || n > len(f.items) {
		n = len(f.items)
	}
	out := make([]Notification, 0, n)
	for i := len(f.items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.items[i])
	}
	return out
}

// Multi рассылает уведомление всем получателям и собирает их ошибки.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
