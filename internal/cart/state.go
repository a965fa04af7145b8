// Package cart - состояние корзины: чистые переходы над State и Store,
// который применяет их по одному и сохраняет товары между перезапусками.
package cart

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"giraffe-store/internal/models"

	"github.com/shopspring/decimal"
)

// MaxItems - лимит уникальных товаров в корзине.
const MaxItems = 30

// ErrCartFull - товар не добавлен, корзина заполнена.
var ErrCartFull = errors.New("достигнут лимит корзины")

// State - значение корзины. Переходы не меняют исходное значение,
// а возвращают новое.
type State struct {
	Items       map[models.ProductID]models.CartItem `json:"items"`
	Unavailable []models.UnavailableItem            `json:"unavailableItems"`
}

func NewState() State {
	return State{
		Items:       make(map[models.ProductID]models.CartItem),
		Unavailable: []models.UnavailableItem{},
	}
}

func (s State) clone() State {
	next := State{
		Items:       make(map[models.ProductID]models.CartItem, len(s.Items)),
		Unavailable: slices.Clone(s.Unavailable),
	}
	maps.Copy(next.Items, s.Items)
	if next.Unavailable == nil {
		next.Unavailable = []models.UnavailableItem{}
	}
	return next
}

// AddItem кладет снимок товара в корзину. Повторное добавление ничего не меняет,
// новый товар сверх лимита отклоняется с ErrCartFull.
func (s State) AddItem(p *models.Product) (State, error) {
	if p == nil || p.ID == "" {
		return s, nil
	}
	if _, ok := s.Items[p.ID]; ok {
		return s, nil
	}
	if len(s.Items) >= MaxItems {
		return s, fmt.Errorf("%w (%d уникальных товаров): товар %q не добавлен", ErrCartFull, MaxItems, p.Name)
	}

	next := s.clone()
	next.Items[p.ID] = models.NewCartItem(*p)
	return next, nil
}

func (s State) RemoveItem(id models.ProductID) State {
	if _, ok := s.Items[id]; !ok {
		return s
	}
	next := s.clone()
	delete(next.Items, id)
	return next
}

// Clear очищает и товары, и список недоступных.
func (s State) Clear() State {
	return NewState()
}

// RemoveUnavailable удаляет перечисленные товары, неизвестные id игнорируются.
func (s State) RemoveUnavailable(ids []models.ProductID) State {
	next := s
	for _, id := range ids {
		next = next.RemoveItem(id)
	}
	return next
}

// SetUnavailable заменяет список недоступных целиком.
func (s State) SetUnavailable(items []models.UnavailableItem) State {
	next := s.clone()
	next.Unavailable = slices.Clone(items)
	if next.Unavailable == nil {
		next.Unavailable = []models.UnavailableItem{}
	}
	return next
}

// Items возвращает позиции в стабильном порядке: по имени, затем по id.
func Items(s State) []models.CartItem {
	items := slices.Collect(maps.Values(s.Items))
	slices.SortFunc(items, func(a, b models.CartItem) int {
		return cmp.Or(
			cmp.Compare(a.ProductDetails.Name, b.ProductDetails.Name),
			cmp.Compare(a.ProductDetails.ID, b.ProductDetails.ID),
		)
	})
	return items
}

// IDs - id товаров в корзине, отсортированные.
func IDs(s State) []models.ProductID {
	ids := slices.Collect(maps.Keys(s.Items))
	slices.Sort(ids)
	return ids
}

func Count(s State) int {
	return len(s.Items)
}

// TotalPrice суммирует цены. Товар без цены дает 0.
func TotalPrice(s State) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		if price := item.ProductDetails.Price; price != nil {
			total = total.Add(decimal.NewFromFloat(*price))
		}
	}
	return total
}

func Contains(s State, id models.ProductID) bool {
	_, ok := s.Items[id]
	return ok
}
