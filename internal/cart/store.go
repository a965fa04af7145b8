package cart

import (
	"context"
	"log/slog"
	"sync"

	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/metric"
	"giraffe-store/internal/models"

	"github.com/shopspring/decimal"
)

// Persister сохраняет товары корзины между перезапусками.
// Список недоступных товаров не сохраняется.
type Persister interface {
	LoadItems(ctx context.Context) (map[models.ProductID]models.CartItem, error)
	SaveItems(ctx context.Context, items map[models.ProductID]models.CartItem) error
}

// Store - единственное разделяемое изменяемое состояние корзины.
// Все изменения проходят через его методы и применяются строго по одному.
type Store struct {
	mu      sync.RWMutex
	state   State
	persist Persister
	log     *slog.Logger
}

// NewStore создает пустую корзину. persist может быть nil.
func NewStore(persist Persister, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{state: NewState(), persist: persist, log: log}
}

// Restore поднимает сохраненные товары. Лишние сверх лимита отбрасываются.
func (s *Store) Restore(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	items, err := s.persist.LoadItems(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := NewState()
	for id, item := range items {
		if len(next.Items) >= MaxItems {
			s.log.Warn("сохраненная корзина больше лимита, лишние товары отброшены", slog.Int("limit", MaxItems))
			break
		}
		if id == "" {
			continue
		}
		next.Items[id] = item
	}
	s.state = next
	metric.CartSize.Set(float64(len(next.Items)))
	s.log.Info("корзина восстановлена", slog.Int("items", len(next.Items)))
	return nil
}

// apply выполняет переход под блокировкой и сохраняет товары, если они изменились.
func (s *Store) apply(ctx context.Context, transition func(State) (State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	next, err := transition(prev)
	if err != nil {
		return err
	}
	s.state = next
	metric.CartSize.Set(float64(len(next.Items)))

	if s.persist != nil && itemsChanged(prev, next) {
		if err := s.persist.SaveItems(ctx, next.Items); err != nil {
			s.log.Error("не удалось сохранить корзину", sl.Err(err), sl.Traced(ctx))
		}
	}
	return nil
}

func itemsChanged(prev, next State) bool {
	if len(prev.Items) != len(next.Items) {
		return true
	}
	for id := range next.Items {
		if _, ok := prev.Items[id]; !ok {
			return true
		}
	}
	return false
}

// AddItem возвращает ErrCartFull, если товар новый, а корзина заполнена.
func (s *Store) AddItem(ctx context.Context, p *models.Product) error {
	err := s.apply(ctx, func(st State) (State, error) {
		return st.AddItem(p)
	})
	if err != nil {
		metric.CartRejectedTotal.Inc()
		s.log.Warn("товар не добавлен в корзину", sl.Err(err), sl.Traced(ctx))
	}
	return err
}

func (s *Store) RemoveItem(ctx context.Context, id models.ProductID) {
	_ = s.apply(ctx, func(st State) (State, error) {
		return st.RemoveItem(id), nil
	})
}

func (s *Store) Clear(ctx context.Context) {
	_ = s.apply(ctx, func(st State) (State, error) {
		return st.Clear(), nil
	})
}

func (s *Store) RemoveUnavailable(ctx context.Context, ids []models.ProductID) {
	_ = s.apply(ctx, func(st State) (State, error) {
		return st.RemoveUnavailable(ids), nil
	})
}

func (s *Store) SetUnavailable(items []models.UnavailableItem) {
	_ = s.apply(context.Background(), func(st State) (State, error) {
		return st.SetUnavailable(items), nil
	})
}

// State возвращает копию текущего состояния.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// IDs читает корзину в момент вызова.
func (s *Store) IDs() []models.ProductID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return IDs(s.state)
}

func (s *Store) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Items(s.state)
}

func (s *Store) Unavailable() []models.UnavailableItem {
	return s.State().Unavailable
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Count(s.state)
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TotalPrice(s.state)
}

func (s *Store) Contains(id models.ProductID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Contains(s.state, id)
}
