package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"giraffe-store/internal/models"
	"giraffe-store/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_History(t *testing.T) {
	//1. Arrange(подготовка)
	orderAPI := mocks.NewOrderAPI(t)
	hist := mocks.NewOrderHistory(t)
	svc := NewOrderService(orderAPI, hist, nil)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	hist.On("Entries", mock.Anything).Return([]models.HistoryEntry{
		{OrderID: "new", Date: day.Add(48 * time.Hour)},
		{OrderID: "broken", Date: day.Add(24 * time.Hour)},
		{OrderID: "old", Date: day},
	})
	orderAPI.On("Order", mock.Anything, "new").Return(models.Order{ID: "new", Status: models.OrderPending, CreatedAt: day.Add(48 * time.Hour)}, nil)
	orderAPI.On("Order", mock.Anything, "old").Return(models.Order{ID: "old", Status: models.OrderSold, CreatedAt: day}, nil)
	orderAPI.On("Order", mock.Anything, "broken").Return(models.Order{}, errors.New("404"))

	//2. Act(Действие)
	orders := svc.History(context.Background())

	//3. Assert
	require.Len(t, orders, 3)
	assert.Equal(t, "new", orders[0].ID)
	assert.Equal(t, "broken", orders[1].ID)
	assert.Equal(t, models.OrderErrorLoading, orders[1].Status)
	assert.True(t, orders[1].IsError)
	assert.True(t, orders[1].CreatedAt.Equal(day.Add(24*time.Hour)))
	assert.Equal(t, "old", orders[2].ID)
}

func TestOrderService_Order(t *testing.T) {
	orderAPI := mocks.NewOrderAPI(t)
	svc := NewOrderService(orderAPI, mocks.NewOrderHistory(t), nil)

	orderAPI.On("Order", mock.Anything, "x").Return(models.Order{}, errors.New("not found"))

	_, err := svc.Order(context.Background(), "x")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "заказ x не загружен")
}
