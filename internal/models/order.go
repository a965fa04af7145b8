package models

import "time"

// OrderStatus - статус заказа на стороне API.
type OrderStatus string

const (
	OrderPending      OrderStatus = "pending"
	OrderConfirmed    OrderStatus = "confirmed"
	OrderRejected     OrderStatus = "rejected"
	OrderSold         OrderStatus = "sold"
	OrderErrorLoading OrderStatus = "error_loading"
)

// CustomerData - контактные данные покупателя. Оба поля необязательны,
// но если заполнены, то должны пройти проверку формата.
type CustomerData struct {
	Name  string `json:"name" validate:"omitempty,min=2"`
	Phone string `json:"phone" validate:"omitempty,kzphone"`
}

// OrderItem - позиция черновика заказа.
type OrderItem struct {
	ProductID ProductID `json:"productId" validate:"required"`
}

// OrderDraft - тело POST /orders. Живет только в рамках одной попытки оформления.
type OrderDraft struct {
	Items              []OrderItem  `json:"items" validate:"required,gt=0,dive"`
	CustomerData       CustomerData `json:"customerData"`
	DeliveryOptionID   string       `json:"deliveryOptionId" validate:"required"`
	DeliveryOptionName string       `json:"deliveryOptionName"`
}

// CreatedOrder - успешный ответ POST /orders.
type CreatedOrder struct {
	OrderID     string    `json:"orderId"`
	CreatedAt   time.Time `json:"createdAt"`
	TotalAmount float64   `json:"totalAmount"`
}

// OrderLine - товар внутри заказа (GET /orders/:id).
type OrderLine struct {
	ProductID ProductID `json:"productId,omitempty"`
	Name      string    `json:"name,omitempty"`
	Price     float64   `json:"price,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Age       string    `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
}

// Order - заказ в том виде, в каком его отдает GET /orders/:id.
type Order struct {
	ID                         string       `json:"id"`
	Status                     OrderStatus  `json:"status"`
	CreatedAt                  time.Time    `json:"createdAt"`
	CustomerData               CustomerData `json:"customerData"`
	DeliveryOptionID           string       `json:"deliveryOptionId,omitempty"`
	DeliveryOptionNameSnapshot string       `json:"deliveryOptionNameSnapshot,omitempty"`
	Items                      []OrderLine  `json:"items"`
	TotalAmount                float64      `json:"totalAmount"`
	IsError                    bool         `json:"isError,omitempty"`
}

// HistoryEntry - запись локальной истории заказов.
type HistoryEntry struct {
	OrderID string    `json:"orderId"`
	Date    time.Time `json:"date"`
}

// DeliveryOption - способ доставки, доступный при оформлении.
type DeliveryOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
