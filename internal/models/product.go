// Package models содержит описания структур данных (DTO),
// которые используются во всем приложении и для маппинга JSON удаленного API.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProductStatus - состояние товара на витрине.
type ProductStatus string

const (
	StatusAvailable ProductStatus = "available"
	StatusReserved  ProductStatus = "reserved"
	StatusSold      ProductStatus = "sold"
)

// ProductID - идентификатор товара. API отдает его то строкой, то числом,
// поэтому при декодировании принимаются оба варианта.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("некорректный id товара %s: %w", data, err)
	}
	*id = ProductID(n.String())
	return nil
}

func (id ProductID) String() string {
	return string(id)
}

// Product представляет карточку товара в том виде, в каком ее отдает API.
type Product struct {
	ID          ProductID     `json:"id"`
	Name        string        `json:"name"`
	Price       *float64      `json:"price,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Images      []string      `json:"images,omitempty"`
	Age         string        `json:"age,omitempty"`
	Gender      string        `json:"gender,omitempty"`
	Brand       string        `json:"brand,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      ProductStatus `json:"status"`
}

// IsAvailable сообщает, можно ли положить товар в корзину.
func (p Product) IsAvailable() bool {
	return p.Status == StatusAvailable
}

// ProductQuery - набор фильтров для GET /products.
type ProductQuery struct {
	Brands []string `json:"brand[]" form:"brand[]"`
	Ages   []string `json:"age[]" form:"age[]"`
	Gender string   `json:"gender,omitempty" form:"gender"`
}

// IsEmpty - true, если ни один фильтр не выбран.
func (q ProductQuery) IsEmpty() bool {
	return len(q.Brands) == 0 && len(q.Ages) == 0 && q.Gender == ""
}

// FilterOptions - метаданные для боковой панели фильтров (GET /filters).
type FilterOptions struct {
	Brands      []string            `json:"brands"`
	AllAges     []string            `json:"allAges"`
	AgesByBrand map[string][]string `json:"agesByBrand"`
}

// LoadStatus - стадия асинхронной операции: загрузки списка или оформления заказа.
type LoadStatus string

const (
	LoadIdle      LoadStatus = "idle"
	LoadPending   LoadStatus = "pending"
	LoadSucceeded LoadStatus = "succeeded"
	LoadFailed    LoadStatus = "failed"
)
