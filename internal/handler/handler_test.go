package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"giraffe-store/internal/api"
	"giraffe-store/internal/cart"
	"giraffe-store/internal/catalog"
	"giraffe-store/internal/handler/mocks"
	"giraffe-store/internal/models"
	"giraffe-store/internal/notify"
	"giraffe-store/internal/service"
)

type testEnv struct {
	router   *gin.Engine
	catalog  *mocks.CatalogProvider
	products *mocks.ProductSource
	checker  *mocks.CartChecker
	checkout *mocks.CheckoutProvider
	orders   *mocks.OrderProvider
	cart     *cart.Store
	feed     *notify.Feed
}

func setup(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		catalog:  mocks.NewCatalogProvider(t),
		products: mocks.NewProductSource(t),
		checker:  mocks.NewCartChecker(t),
		checkout: mocks.NewCheckoutProvider(t),
		orders:   mocks.NewOrderProvider(t),
		cart:     cart.NewStore(nil, nil),
		feed:     notify.NewFeed(10),
	}
	env.router = NewRouter(Handlers{
		Catalog:  NewCatalogHandler(env.catalog),
		Cart:     NewCartHandler(env.cart, env.products, env.checker),
		Checkout: NewCheckoutHandler(env.checkout),
		Orders:   NewOrderHandler(env.orders, env.feed),
	}, "test")
	return env
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("Товар добавлен", func(t *testing.T) {
		env := setup(t)
		price := 2500.0
		env.products.On("AvailableProduct", mock.Anything, models.ProductID("7")).
			Return(models.Product{ID: "7", Name: "Платье", Price: &price, Status: models.StatusAvailable}, nil)

		w := env.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": 7})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[cartResponse](t, w)
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, cart.MaxItems, resp.MaxItems)
		assert.Equal(t, "2500", resp.TotalPrice.String())
	})

	t.Run("Товар уже зарезервирован", func(t *testing.T) {
		env := setup(t)
		env.products.On("AvailableProduct", mock.Anything, models.ProductID("8")).
			Return(models.Product{ID: "8"}, catalog.ErrProductNotAvailable)

		w := env.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": "8"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "product_not_available", decode[errorResponse](t, w).Code)
		assert.Equal(t, 0, env.cart.Count())
	})

	t.Run("Корзина заполнена", func(t *testing.T) {
		env := setup(t)
		for i := 0; i < cart.MaxItems; i++ {
			require.NoError(t, env.cart.AddItem(context.Background(), &models.Product{ID: models.ProductID(fmt.Sprintf("p-%d", i))}))
		}
		env.products.On("AvailableProduct", mock.Anything, models.ProductID("new")).
			Return(models.Product{ID: "new", Status: models.StatusAvailable}, nil)

		w := env.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": "new"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "cart_full", decode[errorResponse](t, w).Code)
		assert.Equal(t, cart.MaxItems, env.cart.Count())
	})

	t.Run("Пустое тело", func(t *testing.T) {
		env := setup(t)

		w := env.do(http.MethodPost, "/api/cart/items", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env.products.AssertNotCalled(t, "AvailableProduct", mock.Anything, mock.Anything)
	})
}

func TestCartHandler_RemoveAndCheck(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.cart.AddItem(context.Background(), &models.Product{ID: "1", Name: "Кофта"}))
	require.NoError(t, env.cart.AddItem(context.Background(), &models.Product{ID: "2", Name: "Шапка"}))

	w := env.do(http.MethodDelete, "/api/cart/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[cartResponse](t, w).Count)

	env.checker.On("Check", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	w = env.do(http.MethodPost, "/api/cart/check", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	env.checker.On("Check", mock.Anything).Return([]models.UnavailableItem{}, nil).Once()
	w = env.do(http.MethodPost, "/api/cart/check", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutHandler_Submit(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"Пустая корзина", service.ErrEmptyCart, http.StatusBadRequest, "empty_cart"},
		{"Некорректный телефон", service.ErrInvalidPhone, http.StatusBadRequest, "invalid_phone"},
		{"Лимит заказов", service.ErrPendingOrderLimit, http.StatusTooManyRequests, "pending_order_limit"},
		{"Проверка не удалась", service.ErrPendingCheckFailed, http.StatusBadGateway, "pending_check_failed"},
		{"Недоступные товары", &service.UnavailableItemsError{Items: []models.UnavailableItem{{ID: "1"}}}, http.StatusConflict, "items_unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setup(t)
			env.checkout.On("Submit", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := env.do(http.MethodPost, "/api/checkout", service.CheckoutRequest{Name: "Ян"})

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantErr, decode[errorResponse](t, w).Code)
		})
	}

	t.Run("Заказ оформлен", func(t *testing.T) {
		env := setup(t)
		req := service.CheckoutRequest{Name: "Ян", Phone: "+77011234567", DeliveryOptionID: "post"}
		env.checkout.On("Submit", mock.Anything, req).
			Return(&service.CheckoutResult{Order: models.CreatedOrder{OrderID: "o-1"}}, nil)

		w := env.do(http.MethodPost, "/api/checkout", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "o-1", decode[service.CheckoutResult](t, w).Order.OrderID)
	})
}

func TestCheckoutHandler_UnavailableItemsInBody(t *testing.T) {
	env := setup(t)
	items := []models.UnavailableItem{{ID: "3", Name: "Куртка"}}
	env.checkout.On("Submit", mock.Anything, mock.Anything).Return(nil, &service.UnavailableItemsError{Items: items})

	w := env.do(http.MethodPost, "/api/checkout", service.CheckoutRequest{})

	assert.Equal(t, items, decode[errorResponse](t, w).UnavailableItems)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("Заказ найден", func(t *testing.T) {
		env := setup(t)
		env.orders.On("Order", mock.Anything, "o-1").Return(models.Order{ID: "o-1", Status: models.OrderConfirmed}, nil)

		w := env.do(http.MethodGet, "/api/orders/o-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.OrderConfirmed, decode[models.Order](t, w).Status)
	})

	t.Run("Заказ не найден в системе", func(t *testing.T) {
		env := setup(t)
		env.orders.On("Order", mock.Anything, "unknown").Return(models.Order{}, &api.Error{StatusCode: http.StatusNotFound})

		w := env.do(http.MethodGet, "/api/orders/unknown", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("API недоступен", func(t *testing.T) {
		env := setup(t)
		env.orders.On("Order", mock.Anything, "x").Return(models.Order{}, api.ErrTransport)

		w := env.do(http.MethodGet, "/api/orders/x", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestOrderHandler_GetNotifications(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.feed.Notify(context.Background(), notify.NewOrderCreated("o-1")))
	require.NoError(t, env.feed.Notify(context.Background(), notify.NewOrderCreated("o-2")))

	w := env.do(http.MethodGet, "/api/notifications?limit=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[[]notify.Notification](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "o-2", got[0].OrderID)

	w = env.do(http.MethodGet, "/api/notifications?limit=500", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_GetProducts(t *testing.T) {
	t.Run("Фильтры из query", func(t *testing.T) {
		env := setup(t)
		q := models.ProductQuery{Brands: []string{"Zara"}, Ages: []string{"2Y"}, Gender: "Мальчик"}
		env.catalog.On("FetchProducts", mock.Anything, q).Return(nil)
		env.catalog.On("State").Return(catalog.State{Items: []models.Product{{ID: "1"}}})

		w := env.do(http.MethodGet, "/api/products?brand[]=Zara&age[]=2Y&gender=%D0%9C%D0%B0%D0%BB%D1%8C%D1%87%D0%B8%D0%BA", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]models.Product](t, w), 1)
	})

	t.Run("Без query используются выбранные фильтры", func(t *testing.T) {
		env := setup(t)
		env.catalog.On("Refresh", mock.Anything).Return(&api.Error{StatusCode: 500})

		w := env.do(http.MethodGet, "/api/products", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestCatalogHandler_GetFilters(t *testing.T) {
	env := setup(t)
	st := catalog.State{
		FiltersLoading:   models.LoadSucceeded,
		Options:          models.FilterOptions{Brands: []string{"Zara"}},
		AvailableGenders: []string{"Мальчик", "Девочка"},
	}
	env.catalog.On("State").Return(st)
	env.catalog.On("DisplayAges").Return([]string{"3-6m", "2Y"})

	w := env.do(http.MethodGet, "/api/filters?lang=ru", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[filtersResponse](t, w)
	assert.Equal(t, []AgeOption{
		{Value: "3-6m", Label: "3-6 мес."},
		{Value: "2Y", Label: "2 года"},
	}, resp.Ages)
	env.catalog.AssertNotCalled(t, "FetchFilterOptions", mock.Anything)
}

func TestCatalogHandler_ToggleBrand(t *testing.T) {
	env := setup(t)
	env.catalog.On("ToggleBrand", "Zara").Return()
	env.catalog.On("State").Return(catalog.State{Filters: models.ProductQuery{Brands: []string{"Zara"}}})

	w := env.do(http.MethodPost, "/api/catalog/filters/brand", filterValue{Value: "Zara"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/catalog/filters/brand", filterValue{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
