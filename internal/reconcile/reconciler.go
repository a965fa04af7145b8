// Package reconcile периодически сверяет корзину с API и удаляет из нее
// товары, которые стали недоступны.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/metric"
	"giraffe-store/internal/models"
	"giraffe-store/internal/notify"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultInterval = 30 * time.Second

//go:generate mockery --name=Cart --output=./mocks --case=underscore
type Cart interface {
	IDs() []models.ProductID
	SetUnavailable(items []models.UnavailableItem)
	RemoveUnavailable(ctx context.Context, ids []models.ProductID)
}

//go:generate mockery --name=AvailabilityChecker --output=./mocks --case=underscore
type AvailabilityChecker interface {
	CheckCart(ctx context.Context, ids []models.ProductID) ([]models.UnavailableItem, error)
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realClock struct{}

type realTicker struct{ t *time.Ticker }

func (realClock) NewTicker(d time.Duration) Ticker { return realTicker{t: time.NewTicker(d)} }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

type Reconciler struct {
	cart     Cart
	checker  AvailabilityChecker
	notifier notify.Notifier
	interval time.Duration
	clock    Clock
	log      *slog.Logger
}

type Option func(*Reconciler)

func WithInterval(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithClock(c Clock) Option {
	return func(r *Reconciler) { r.clock = c }
}

func WithLogger(log *slog.Logger) Option {
	return func(r *Reconciler) { r.log = log }
}

// New создает сверщика. notifier может быть nil.
func New(cart Cart, checker AvailabilityChecker, notifier notify.Notifier, opts ...Option) *Reconciler {
	r := &Reconciler{
		cart:     cart,
		checker:  checker,
		notifier: notifier,
		interval: DefaultInterval,
		clock:    realClock{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run проверяет корзину сразу и затем на каждом тике, пока не отменен ctx.
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("сверка корзины запущена", slog.Duration("interval", r.interval))
	_, _ = r.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			r.log.Info("сверка корзины остановлена")
			return nil
		case <-ticker.C():
			_, _ = r.Check(ctx)
		}
	}
}

// Check выполняет одну сверку. Id товаров читаются в момент вызова.
// Возвращает список товаров, удаленных из корзины.
func (r *Reconciler) Check(ctx context.Context) ([]models.UnavailableItem, error) {
	ids := r.cart.IDs()
	if len(ids) == 0 {
		metric.ReconcileRunsTotal.WithLabelValues("skipped").Inc()
		return nil, nil
	}

	ctx, span := otel.Tracer("reconcile").Start(ctx, "CheckCart")
	defer span.End()
	span.SetAttributes(attribute.Int("cart.items", len(ids)))

	unavailable, err := r.checker.CheckCart(ctx, ids)
	if ctx.Err() != nil {
		metric.ReconcileRunsTotal.WithLabelValues("discarded").Inc()
		return nil, ctx.Err()
	}
	if err != nil {
		metric.ReconcileRunsTotal.WithLabelValues("error").Inc()
		r.log.Error("ошибка при проверке доступности товаров в корзине", sl.Err(err), sl.Traced(ctx))
		return nil, fmt.Errorf("проверка корзины: %w", err)
	}

	if len(unavailable) == 0 {
		metric.ReconcileRunsTotal.WithLabelValues("ok").Inc()
		r.cart.SetUnavailable([]models.UnavailableItem{})
		return nil, nil
	}

	metric.ReconcileRunsTotal.WithLabelValues("pruned").Inc()
	r.Apply(ctx, unavailable)
	return unavailable, nil
}

// Apply помечает товары недоступными, удаляет их из корзины и уведомляет
// пользователя. Используется и при отказе API в создании заказа.
func (r *Reconciler) Apply(ctx context.Context, items []models.UnavailableItem) {
	if len(items) == 0 {
		return
	}

	ids := make([]models.ProductID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	r.cart.SetUnavailable(items)
	r.cart.RemoveUnavailable(ctx, ids)
	metric.PrunedItemsTotal.Add(float64(len(ids)))

	r.log.Warn("товары удалены из корзины как недоступные",
		slog.Any("ids", ids), sl.Traced(ctx))

	if r.notifier == nil {
		return
	}
	if err := r.notifier.Notify(ctx, notify.NewUnavailableItems(items)); err != nil {
		r.log.Error("ошибка отправки уведомления", sl.Err(err), sl.Traced(ctx))
	}
}
