package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"giraffe-store/internal/models"
	"giraffe-store/internal/storage"
)

// PersistKey - ключ, под которым лежат товары корзины.
const PersistKey = "persist:cart"

type persistedCart struct {
	Items map[models.ProductID]models.CartItem `json:"items"`
}

// KVPersister хранит товары корзины одним JSON-документом.
type KVPersister struct {
	kv storage.KV
}

func NewKVPersister(kv storage.KV) *KVPersister {
	return &KVPersister{kv: kv}
}

func (p *KVPersister) LoadItems(ctx context.Context) (map[models.ProductID]models.CartItem, error) {
	data, err := p.kv.Get(ctx, PersistKey)
	if errors.Is(err, storage.ErrNotFound) {
		return map[models.ProductID]models.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("чтение сохраненной корзины: %w", err)
	}

	var saved persistedCart
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("разбор сохраненной корзины: %w", err)
	}
	if saved.Items == nil {
		saved.Items = map[models.ProductID]models.CartItem{}
	}
	return saved.Items, nil
}

func (p *KVPersister) SaveItems(ctx context.Context, items map[models.ProductID]models.CartItem) error {
	data, err := json.Marshal(persistedCart{Items: items})
	if err != nil {
		return fmt.Errorf("сериализация корзины: %w", err)
	}
	return p.kv.Set(ctx, PersistKey, data)
}
