package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"giraffe-store/internal/metric"
	"giraffe-store/internal/models"
)

// Кеш карточек товаров: страница товара и добавление в корзину
// не должны каждый раз ходить в API.
type cacheItem struct {
	data      models.Product
	expiresAt int64
}

type ProductCache struct {
	items             map[models.ProductID]cacheItem
	defaultExpiration time.Duration //Это стандартное время жизни.
	cleanupInterval   time.Duration //Это частота работы нашего "уборщика", который чистит кеш
	now               func() time.Time
	sync.RWMutex
}

func NewProductCache(defaultExpiration, cleanupInterval time.Duration) *ProductCache {
	return &ProductCache{
		items:             make(map[models.ProductID]cacheItem),
		defaultExpiration: defaultExpiration,
		cleanupInterval:   cleanupInterval,
		now:               time.Now,
	}
}

func (ch *ProductCache) Set(id models.ProductID, product *models.Product) {
	if product == nil || id == "" {
		return
	}
	ch.Lock()
	defer ch.Unlock()
	_, exists := ch.items[id]
	//При сохранении указываем время жизни, когда нужно удалить объект
	ch.items[id] = cacheItem{
		data:      *product,
		expiresAt: ch.now().Add(ch.defaultExpiration).UnixNano(),
	}
	if !exists {
		metric.CacheSize.Inc()
	}
}

func (ch *ProductCache) Get(id models.ProductID) (*models.Product, bool) {
	ch.RLock()
	defer ch.RUnlock()

	res, ok := ch.items[id]
	if !ok {
		return nil, false
	}

	// Если ключ есть, проверяем, не протух ли он
	if ch.now().UnixNano() > res.expiresAt {
		return nil, false
	}

	product := res.data
	return &product, true
}

// Delete убирает товар из кеша, например после того как API сообщил,
// что он больше недоступен.
func (ch *ProductCache) Delete(id models.ProductID) {
	ch.Lock()
	defer ch.Unlock()
	if _, ok := ch.items[id]; ok {
		delete(ch.items, id)
		metric.CacheSize.Dec()
	}
}

func (ch *ProductCache) Len() int {
	ch.RLock()
	defer ch.RUnlock()
	return len(ch.items)
}

func (ch *ProductCache) evictExpired() int {
	ch.Lock()
	defer ch.Unlock()
	now := ch.now().UnixNano()
	deleted := 0
	for key, item := range ch.items {
		if now > item.expiresAt {
			metric.CacheSize.Dec()
			delete(ch.items, key)
			deleted++
		}
	}
	return deleted
}

// GC чистит просроченные записи, пока не отменен ctx.
func (ch *ProductCache) GC(ctx context.Context) error {
	ticker := time.NewTicker(ch.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if deleted := ch.evictExpired(); deleted > 0 {
				slog.Debug("GC кеша товаров", slog.Int("deleted", deleted))
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
