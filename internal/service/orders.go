package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const historyFetchLimit = 5

// OrderService отдает заказы из локальной истории с актуальными данными API.
type OrderService struct {
	api     OrderAPI
	history OrderHistory
	log     *slog.Logger
}

func NewOrderService(orderAPI OrderAPI, history OrderHistory, log *slog.Logger) *OrderService {
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{api: orderAPI, history: history, log: log}
}

// History загружает все заказы из истории. Заказ, который не удалось
// загрузить, заменяется заглушкой со статусом error_loading.
func (s *OrderService) History(ctx context.Context) []models.Order {
	tr := otel.Tracer("orderService")
	ctx, span := tr.Start(ctx, "Service.History")
	defer span.End()

	entries := s.history.Entries(ctx)
	span.SetAttributes(attribute.Int("history.size", len(entries)))

	orders := make([]models.Order, len(entries))
	var g errgroup.Group
	g.SetLimit(historyFetchLimit)
	for i, entry := range entries {
		g.Go(func() error {
			order, err := s.api.Order(ctx, entry.OrderID)
			if err != nil {
				s.log.Warn("не удалось загрузить заказ из истории",
					slog.String("order_id", entry.OrderID), sl.Err(err), sl.Traced(ctx))
				orders[i] = models.Order{
					ID:        entry.OrderID,
					Status:    models.OrderErrorLoading,
					CreatedAt: entry.Date,
					Items:     []models.OrderLine{},
					IsError:   true,
				}
				return nil
			}
			orders[i] = order
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

func (s *OrderService) Order(ctx context.Context, id string) (models.Order, error) {
	tr := otel.Tracer("orderService")
	ctx, span := tr.Start(ctx, "Service.GetOrder")
	defer span.End()
	span.SetAttributes(attribute.String("order_id", id))

	order, err := s.api.Order(ctx, id)
	if err != nil {
		span.RecordError(err)
		return models.Order{}, fmt.Errorf("заказ %s не загружен: %w", id, err)
	}
	return order, nil
}
