// Package catalog хранит загруженный список товаров, опции фильтров
// и выбранные пользователем фильтры.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"giraffe-store/internal/age"
	"giraffe-store/internal/api"
	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/metric"
	"giraffe-store/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProductNotAvailable = errors.New("товар недоступен для заказа")

var AvailableGenders = []string{"Мальчик", "Девочка"}

const (
	defaultProductsError = "Не удалось загрузить товары"
	defaultFiltersError  = "Не удалось загрузить опции фильтров"
)

//go:generate mockery --name=ProductAPI --output=./mocks --case=underscore
type ProductAPI interface {
	Products(ctx context.Context, q models.ProductQuery) ([]models.Product, error)
	Filters(ctx context.Context) (models.FilterOptions, error)
	Product(ctx context.Context, id models.ProductID) (models.Product, error)
	SimilarProducts(ctx context.Context, id models.ProductID) ([]models.Product, error)
}

//go:generate mockery --name=ProductCache --output=./mocks --case=underscore
type ProductCache interface {
	Get(id models.ProductID) (*models.Product, bool)
	Set(id models.ProductID, p *models.Product)
}

// State - снимок каталога для отдачи наружу.
type State struct {
	Items            []models.Product     `json:"items"`
	Loading          models.LoadStatus    `json:"loading"`
	Error            string               `json:"error,omitempty"`
	Filters          models.ProductQuery  `json:"filters"`
	Options          models.FilterOptions `json:"options"`
	AvailableGenders []string             `json:"availableGenders"`
	FiltersLoading   models.LoadStatus    `json:"filtersLoading"`
	FiltersError     string               `json:"filtersError,omitempty"`
}

type Service struct {
	mu    sync.RWMutex
	state State
	// seq отбрасывает ответы устаревших запросов списка товаров
	seq uint64

	api   ProductAPI
	cache ProductCache
	log   *slog.Logger
}

func NewService(productAPI ProductAPI, cache ProductCache, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		api:   productAPI,
		cache: cache,
		log:   log,
		state: State{
			Items:            []models.Product{},
			Loading:          models.LoadIdle,
			FiltersLoading:   models.LoadIdle,
			AvailableGenders: slices.Clone(AvailableGenders),
			Filters:          models.ProductQuery{Brands: []string{}, Ages: []string{}},
			Options:          models.FilterOptions{Brands: []string{}, AllAges: []string{}, AgesByBrand: map[string][]string{}},
		},
	}
}

// FetchProducts загружает товары по переданным фильтрам.
func (s *Service) FetchProducts(ctx context.Context, q models.ProductQuery) error {
	ctx, span := otel.Tracer("catalog").Start(ctx, "FetchProducts")
	defer span.End()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state.Loading = models.LoadPending
	s.state.Error = ""
	s.mu.Unlock()

	products, err := s.api.Products(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return nil
	}
	if err != nil {
		s.state.Loading = models.LoadFailed
		s.state.Error = apiMessage(err, defaultProductsError)
		s.log.Error("ошибка загрузки товаров", sl.Err(err), sl.Traced(ctx))
		return fmt.Errorf("загрузка товаров: %w", err)
	}

	s.state.Loading = models.LoadSucceeded
	s.state.Items = products
	span.SetAttributes(attribute.Int("products.count", len(products)))
	if s.cache != nil {
		for i := range products {
			s.cache.Set(products[i].ID, &products[i])
		}
	}
	return nil
}

// Refresh перезагружает товары по текущим выбранным фильтрам.
func (s *Service) Refresh(ctx context.Context) error {
	return s.FetchProducts(ctx, s.Filters())
}

func (s *Service) FetchFilterOptions(ctx context.Context) error {
	s.mu.Lock()
	s.state.FiltersLoading = models.LoadPending
	s.state.FiltersError = ""
	s.mu.Unlock()

	opts, err := s.api.Filters(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.FiltersLoading = models.LoadFailed
		s.state.FiltersError = apiMessage(err, defaultFiltersError)
		s.log.Error("ошибка загрузки фильтров", sl.Err(err), sl.Traced(ctx))
		return fmt.Errorf("загрузка фильтров: %w", err)
	}

	if opts.Brands == nil {
		opts.Brands = []string{}
	}
	if opts.AllAges == nil {
		opts.AllAges = []string{}
	}
	if opts.AgesByBrand == nil {
		opts.AgesByBrand = map[string][]string{}
	}
	s.state.FiltersLoading = models.LoadSucceeded
	s.state.Options = opts
	return nil
}

// Product отдает карточку товара, сначала из кэша.
func (s *Service) Product(ctx context.Context, id models.ProductID) (models.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(id); ok {
			metric.CacheHitsTotal.WithLabelValues("hit").Inc()
			return *p, nil
		}
		metric.CacheHitsTotal.WithLabelValues("miss").Inc()
	}

	p, err := s.api.Product(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("загрузка товара %s: %w", id, err)
	}
	if s.cache != nil {
		s.cache.Set(p.ID, &p)
	}
	return p, nil
}

// AvailableProduct - товар, который можно положить в корзину.
// Карточка берется напрямую из API, чтобы статус был актуальным.
func (s *Service) AvailableProduct(ctx context.Context, id models.ProductID) (models.Product, error) {
	p, err := s.api.Product(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("загрузка товара %s: %w", id, err)
	}
	if s.cache != nil {
		s.cache.Set(p.ID, &p)
	}
	if !p.IsAvailable() {
		return p, fmt.Errorf("%w: %s (%s)", ErrProductNotAvailable, id, p.Status)
	}
	return p, nil
}

func (s *Service) SimilarProducts(ctx context.Context, id models.ProductID) ([]models.Product, error) {
	products, err := s.api.SimilarProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("загрузка похожих товаров %s: %w", id, err)
	}
	return products, nil
}

// ToggleBrand добавляет или убирает бренд. Выбранные возрасты сбрасываются:
// набор доступных возрастов зависит от брендов.
func (s *Service) ToggleBrand(brand string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters.Brands = toggle(s.state.Filters.Brands, brand)
	s.state.Filters.Ages = []string{}
}

func (s *Service) ToggleAge(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters.Ages = toggle(s.state.Filters.Ages, value)
}

// SetGender выбирает пол; повторный выбор того же значения снимает фильтр.
func (s *Service) SetGender(gender string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Filters.Gender == gender {
		s.state.Filters.Gender = ""
		return
	}
	s.state.Filters.Gender = gender
}

func (s *Service) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters = models.ProductQuery{Brands: []string{}, Ages: []string{}}
}

func (s *Service) ClearProductError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

func (s *Service) ClearFiltersError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.FiltersError = ""
}

func (s *Service) Filters() models.ProductQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneQuery(s.state.Filters)
}

// DisplayAges - возрасты для панели фильтров: объединение возрастов выбранных
// брендов или все возрасты, без повторов, по возрастанию.
func (s *Service) DisplayAges() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.state.Filters.Brands) == 0 {
		return age.SortUnique(s.state.Options.AllAges)
	}
	var ages []string
	for _, brand := range s.state.Filters.Brands {
		ages = append(ages, s.state.Options.AgesByBrand[brand]...)
	}
	return age.SortUnique(ages)
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	st.Items = slices.Clone(s.state.Items)
	st.Filters = cloneQuery(s.state.Filters)
	st.AvailableGenders = slices.Clone(s.state.AvailableGenders)
	st.Options.Brands = slices.Clone(s.state.Options.Brands)
	st.Options.AllAges = slices.Clone(s.state.Options.AllAges)
	st.Options.AgesByBrand = make(map[string][]string, len(s.state.Options.AgesByBrand))
	for brand, ages := range s.state.Options.AgesByBrand {
		st.Options.AgesByBrand[brand] = slices.Clone(ages)
	}
	return st
}

func toggle(values []string, v string) []string {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}
	return append(slices.Clone(values), v)
}

func cloneQuery(q models.ProductQuery) models.ProductQuery {
	return models.ProductQuery{
		Brands: append([]string{}, q.Brands...),
		Ages:   append([]string{}, q.Ages...),
		Gender: q.Gender,
	}
}

func apiMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
