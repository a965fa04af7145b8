package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"giraffe-store/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClientWithHTTP(srv.URL+"/api/", srv.Client())
}

func TestClient_Products(t *testing.T) {
	t.Run("Фильтры передаются в query", func(t *testing.T) {
		client := setup(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products", r.URL.Path)
			assert.Equal(t, []string{"Zara", "H&M"}, r.URL.Query()["brand[]"])
			assert.Equal(t, []string{"3-6m"}, r.URL.Query()["age[]"])
			assert.Equal(t, "Девочка", r.URL.Query().Get("gender"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			_, _ = w.Write([]byte(`[{"id":7,"name":"Платье","price":2500,"status":"available"}]`))
		})

		products, err := client.Products(context.Background(), models.ProductQuery{
			Brands: []string{"Zara", "H&M"},
			Ages:   []string{"3-6m"},
			Gender: "Девочка",
		})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, models.ProductID("7"), products[0].ID)
		assert.True(t, products[0].IsAvailable())
	})

	t.Run("Пустой ответ дает пустой список", func(t *testing.T) {
		client := setup(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			_, _ = w.Write([]byte(`null`))
		})

		products, err := client.Products(context.Background(), models.ProductQuery{})

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestClient_CheckCart(t *testing.T) {
	client := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cart/check", r.URL.Path)

		var req models.CartCheckRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []models.ProductID{"A", "B", "C"}, req.Items)

		_, _ = w.Write([]byte(`{"unavailableItems":[{"id":"B","name":"Кофта"}]}`))
	})

	items, err := client.CheckCart(context.Background(), []models.ProductID{"A", "B", "C"})

	require.NoError(t, err)
	assert.Equal(t, []models.UnavailableItem{{ID: "B", Name: "Кофта"}}, items)
}

func TestClient_CreateOrder(t *testing.T) {
	draft := models.OrderDraft{
		Items:            []models.OrderItem{{ProductID: "A"}},
		DeliveryOptionID: "pickup",
	}

	t.Run("Заказ создан", func(t *testing.T) {
		client := setup(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"orderId":"o-1","createdAt":"2026-10-01T10:00:00Z","totalAmount":2500}`))
		})

		created, err := client.CreateOrder(context.Background(), draft)

		require.NoError(t, err)
		assert.Equal(t, "o-1", created.OrderID)
		assert.Equal(t, 2500.0, created.TotalAmount)
		assert.True(t, created.CreatedAt.Equal(time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("Товары недоступны", func(t *testing.T) {
		client := setup(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"Некоторые товары недоступны","unavailableItems":[{"id":"A","name":"Шапка"}]}`))
		})

		_, err := client.CreateOrder(context.Background(), draft)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "Некоторые товары недоступны", apiErr.Message)
		assert.Equal(t, []models.UnavailableItem{{ID: "A", Name: "Шапка"}}, apiErr.UnavailableItems)
	})

	t.Run("Тело ошибки не JSON", func(t *testing.T) {
		client := setup(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		})

		_, err := client.CreateOrder(context.Background(), draft)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "upstream down", apiErr.Message)
		assert.Empty(t, apiErr.UnavailableItems)
	})
}

func TestClient_Order(t *testing.T) {
	client := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/o-42", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"o-42","status":"pending","totalAmount":100}`))
	})

	order, err := client.Order(context.Background(), "o-42")

	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClientWithHTTP(srv.URL, srv.Client())
	srv.Close()

	_, err := client.Filters(context.Background())

	assert.True(t, errors.Is(err, ErrTransport))
}

func TestClient_SimilarAndProduct(t *testing.T) {
	client := setup(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products/similar/5":
			_, _ = w.Write([]byte(`[{"id":"6","name":"Куртка"}]`))
		case "/api/products/5":
			_, _ = w.Write([]byte(`{"id":"5","name":"Шарф","status":"sold"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	similar, err := client.SimilarProducts(context.Background(), "5")
	require.NoError(t, err)
	assert.Len(t, similar, 1)

	p, err := client.Product(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSold, p.Status)

	_, err = client.Product(context.Background(), "404")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
