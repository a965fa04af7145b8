// Package service содержит бизнес-логику оформления заказа и просмотра
// истории заказов: валидацию, ограничение на заказы в обработке
// и координацию корзины, истории и удаленного API.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"giraffe-store/internal/api"
	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/metric"
	"giraffe-store/internal/models"
	"giraffe-store/internal/notify"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	PendingOrderLimit  = 3
	PendingCheckWindow = 10
)

var (
	ErrEmptyCart            = errors.New("корзина пуста, нечего оформлять")
	ErrNameTooShort         = errors.New("имя должно содержать хотя бы 2 символа, если указано")
	ErrInvalidPhone         = errors.New("некорректный номер телефона, ожидается +7 XXX XXX XX XX")
	ErrPendingCheckFailed   = errors.New("не удалось проверить активные заказы, попробуйте позже")
	ErrPendingOrderLimit    = fmt.Errorf("у вас уже %d или больше заказов в обработке", PendingOrderLimit)
	ErrOrderFailed          = errors.New("не удалось создать заказ")
	ErrItemsUnavailable     = errors.New("некоторые товары стали недоступны")
	ErrSubmissionInProgress = errors.New("заказ уже оформляется")
)

// UnavailableItemsError - API отказал в заказе из-за недоступных товаров.
// Эти товары уже удалены из корзины.
type UnavailableItemsError struct {
	Items []models.UnavailableItem
}

func (e *UnavailableItemsError) Error() string {
	names := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		names = append(names, item.DisplayName())
	}
	return ErrItemsUnavailable.Error() + ": " + strings.Join(names, ", ")
}

func (e *UnavailableItemsError) Unwrap() error { return ErrItemsUnavailable }

var phoneRe = regexp.MustCompile(`^\+?[78][-\s(]?\d{3}\)?[-\s]?\d{3}[-\s]?\d{2}[-\s]?\d{2}$`)

// DeliveryOptions - способы доставки; первый используется по умолчанию.
var DeliveryOptions = []models.DeliveryOption{
	{ID: "pickup", Name: "Самовывоз", Price: 0},
	{ID: "post", Name: "Доставка почтой", Price: 1500},
}

//go:generate mockery --name=OrderAPI --output=./mocks --case=underscore
type OrderAPI interface {
	CreateOrder(ctx context.Context, draft models.OrderDraft) (models.CreatedOrder, error)
	Order(ctx context.Context, id string) (models.Order, error)
}

//go:generate mockery --name=OrderHistory --output=./mocks --case=underscore
type OrderHistory interface {
	Entries(ctx context.Context) []models.HistoryEntry
	Recent(ctx context.Context, n int) []models.HistoryEntry
	Add(ctx context.Context, orderID string, date time.Time) error
}

//go:generate mockery --name=Cart --output=./mocks --case=underscore
type Cart interface {
	Items() []models.CartItem
	TotalPrice() decimal.Decimal
	Clear(ctx context.Context)
}

// UnavailableHandler удаляет из корзины товары, названные API недоступными.
//
//go:generate mockery --name=UnavailableHandler --output=./mocks --case=underscore
type UnavailableHandler interface {
	Apply(ctx context.Context, items []models.UnavailableItem)
}

type CheckoutRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	DeliveryOptionID string `json:"deliveryOptionId"`
}

type CheckoutResult struct {
	Order          models.CreatedOrder   `json:"order"`
	DeliveryOption models.DeliveryOption `json:"deliveryOption"`
	WhatsAppURL    string                `json:"whatsappUrl"`
}

// CheckoutState - стадия оформления: idle, pending, succeeded или failed.
type CheckoutState struct {
	Status           models.LoadStatus        `json:"status"`
	Error            string                   `json:"error,omitempty"`
	UnavailableItems []models.UnavailableItem `json:"unavailableItems,omitempty"`
}

type Quote struct {
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DeliveryOption models.DeliveryOption `json:"deliveryOption"`
	Total          decimal.Decimal       `json:"total"`
}

type CheckoutOptions struct {
	WhatsAppNumber string
	SiteOrigin     string
}

type CheckoutService struct {
	mu       sync.Mutex
	state    CheckoutState
	inFlight bool

	api      OrderAPI
	history  OrderHistory
	cart     Cart
	removal  UnavailableHandler
	notifier notify.Notifier
	validate *validator.Validate
	opts     CheckoutOptions
	log      *slog.Logger
}

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("kzphone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

// NewCheckoutService принимает интерфейсы. notifier может быть nil.
func NewCheckoutService(orderAPI OrderAPI, history OrderHistory, cart Cart, removal UnavailableHandler,
	notifier notify.Notifier, opts CheckoutOptions, log *slog.Logger) *CheckoutService {
	if log == nil {
		log = slog.Default()
	}
	return &CheckoutService{
		state:    CheckoutState{Status: models.LoadIdle},
		api:      orderAPI,
		history:  history,
		cart:     cart,
		removal:  removal,
		notifier: notifier,
		validate: NewValidator(),
		opts:     opts,
		log:      log,
	}
}

// Submit проверяет данные, ограничение на заказы в обработке и создает заказ.
func (s *CheckoutService) Submit(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	tr := otel.Tracer("checkoutService")
	ctx, span := tr.Start(ctx, "Service.Submit")
	defer span.End()

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		metric.OrderSubmissionsTotal.WithLabelValues("busy").Inc()
		return nil, ErrSubmissionInProgress
	}
	s.inFlight = true
	if s.state.Status == models.LoadFailed {
		s.state = CheckoutState{Status: models.LoadIdle}
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	//1. Корзина и контактные данные
	items := s.cart.Items()
	if len(items) == 0 {
		metric.OrderSubmissionsTotal.WithLabelValues("validation").Inc()
		return nil, ErrEmptyCart
	}
	customer := models.CustomerData{
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
	}
	if err := s.validateCustomer(customer); err != nil {
		metric.OrderSubmissionsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	//2. Не больше PendingOrderLimit заказов в обработке
	pending, err := s.countPending(ctx)
	if err != nil {
		span.RecordError(err)
		metric.OrderSubmissionsTotal.WithLabelValues("check_failed").Inc()
		s.log.Error("ошибка проверки активных заказов", sl.Err(err), sl.Traced(ctx))
		return nil, fmt.Errorf("%w: %w", ErrPendingCheckFailed, err)
	}
	span.SetAttributes(attribute.Int("orders.pending", pending))
	if pending >= PendingOrderLimit {
		metric.OrderSubmissionsTotal.WithLabelValues("throttled").Inc()
		return nil, ErrPendingOrderLimit
	}

	//3. Черновик заказа
	delivery := ResolveDelivery(req.DeliveryOptionID)
	draft := models.OrderDraft{
		Items:              make([]models.OrderItem, 0, len(items)),
		CustomerData:       customer,
		DeliveryOptionID:   delivery.ID,
		DeliveryOptionName: delivery.Name,
	}
	for _, item := range items {
		draft.Items = append(draft.Items, models.OrderItem{ProductID: item.ProductDetails.ID})
	}
	if err := s.validate.Struct(draft); err != nil {
		metric.OrderSubmissionsTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("черновик заказа не прошел валидацию: %w", err)
	}

	//4. Создание заказа
	s.setState(CheckoutState{Status: models.LoadPending})
	created, err := s.api.CreateOrder(ctx, draft)
	if err != nil {
		span.RecordError(err)
		return nil, s.fail(ctx, err)
	}
	span.SetAttributes(attribute.String("order_id", created.OrderID))

	//5. История, очистка корзины, сброс состояния
	date := created.CreatedAt
	if date.IsZero() {
		date = time.Now()
	}
	if err := s.history.Add(ctx, created.OrderID, date); err != nil {
		s.log.Error("ошибка сохранения заказа в историю", sl.Err(err), slog.String("order_id", created.OrderID), sl.Traced(ctx))
	}
	s.cart.Clear(ctx)
	s.setState(CheckoutState{Status: models.LoadIdle})

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, notify.NewOrderCreated(created.OrderID)); err != nil {
			s.log.Error("ошибка отправки уведомления", sl.Err(err), sl.Traced(ctx))
		}
	}

	metric.OrderSubmissionsTotal.WithLabelValues("success").Inc()
	s.log.Info("заказ оформлен", slog.String("order_id", created.OrderID), slog.Int("items", len(draft.Items)), sl.Traced(ctx))

	return &CheckoutResult{
		Order:          created,
		DeliveryOption: delivery,
		WhatsAppURL:    s.WhatsAppURL(created.OrderID),
	}, nil
}

// fail переводит оформление в failed. Недоступные товары сразу удаляются из корзины.
func (s *CheckoutService) fail(ctx context.Context, err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && len(apiErr.UnavailableItems) > 0 {
		unavailable := &UnavailableItemsError{Items: apiErr.UnavailableItems}
		s.setState(CheckoutState{
			Status:           models.LoadFailed,
			Error:            unavailable.Error(),
			UnavailableItems: apiErr.UnavailableItems,
		})
		s.removal.Apply(ctx, apiErr.UnavailableItems)
		metric.OrderSubmissionsTotal.WithLabelValues("unavailable").Inc()
		return unavailable
	}

	message := ErrOrderFailed.Error()
	if apiErr != nil && apiErr.Message != "" {
		message = apiErr.Message
	}
	s.setState(CheckoutState{Status: models.LoadFailed, Error: message})
	metric.OrderSubmissionsTotal.WithLabelValues("failed").Inc()
	s.log.Error("ошибка создания заказа", sl.Err(err), sl.Traced(ctx))
	return fmt.Errorf("%w: %s: %w", ErrOrderFailed, message, err)
}

func (s *CheckoutService) validateCustomer(c models.CustomerData) error {
	err := s.validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if verrs[0].StructField() == "Name" {
			return ErrNameTooShort
		}
		return ErrInvalidPhone
	}
	return fmt.Errorf("валидация контактных данных: %w", err)
}

// countPending запрашивает статусы последних заказов параллельно.
// Любая ошибка прерывает проверку целиком.
func (s *CheckoutService) countPending(ctx context.Context) (int, error) {
	entries := s.history.Recent(ctx, PendingCheckWindow)
	if len(entries) == 0 {
		return 0, nil
	}

	var pending atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		id := entry.OrderID
		g.Go(func() error {
			order, err := s.api.Order(gctx, id)
			if err != nil {
				return fmt.Errorf("статус заказа %s: %w", id, err)
			}
			if order.Status == models.OrderPending {
				pending.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(pending.Load()), nil
}

// WhatsAppURL - ссылка на чат магазина с текстом о собранном заказе.
func (s *CheckoutService) WhatsAppURL(orderID string) string {
	orderURL := strings.TrimRight(s.opts.SiteOrigin, "/") + "/order/" + url.PathEscape(orderID)
	text := "Здравствуйте!\nЗаказ собран на сайте.\nДетали заказа: " + orderURL
	return "https://wa.me/" + s.opts.WhatsAppNumber + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// ResolveDelivery находит способ доставки по id; неизвестный id дает первый.
func ResolveDelivery(id string) models.DeliveryOption {
	for _, opt := range DeliveryOptions {
		if opt.ID == id {
			return opt
		}
	}
	return DeliveryOptions[0]
}

// Quote - итог к оплате: корзина плюс доставка.
func (s *CheckoutService) Quote(deliveryID string) Quote {
	delivery := ResolveDelivery(deliveryID)
	subtotal := s.cart.TotalPrice()
	return Quote{
		Subtotal:       subtotal,
		DeliveryOption: delivery,
		Total:          subtotal.Add(decimal.NewFromFloat(delivery.Price)),
	}
}

func (s *CheckoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.UnavailableItems = append([]models.UnavailableItem(nil), s.state.UnavailableItems...)
	return st
}

// Reset возвращает оформление в idle.
func (s *CheckoutService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status == models.LoadPending {
		return
	}
	s.state = CheckoutState{Status: models.LoadIdle}
}

// ClearError убирает текст ошибки, статус не меняется.
func (s *CheckoutService) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
	s.state.UnavailableItems = nil
}

func (s *CheckoutService) setState(st CheckoutState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}
