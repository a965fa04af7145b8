// Package api - HTTP-клиент удаленного API магазина.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"giraffe-store/internal/metric"
	"giraffe-store/internal/models"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 64 << 10

// Error - ответ API с кодом не 2xx. Для POST /orders может содержать
// список товаров, ставших недоступными.
type Error struct {
	StatusCode       int                      `json:"-"`
	Message          string                   `json:"message"`
	UnavailableItems []models.UnavailableItem `json:"unavailableItems,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ErrTransport - запрос не дошел до API или ответ не удалось прочитать.
var ErrTransport = errors.New("ошибка соединения с API")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает клиента. baseURL - например "http://localhost:5000/api".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// do выполняет запрос; endpoint - шаблон пути для метрик, без id.
func (c *Client) do(ctx context.Context, method, endpoint, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("сериализация запроса %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("создание запроса %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metric.ObserveAPI(endpoint, "transport_error", time.Since(start))
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, endpoint, err)
	}
	defer resp.Body.Close()
	metric.ObserveAPI(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: разбор ответа %s %s: %w", ErrTransport, method, endpoint, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return apiErr
	}
	if json.Unmarshal(data, apiErr) != nil {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}

// Products - GET /products с фильтрами brand[], age[], gender.
func (c *Client) Products(ctx context.Context, q models.ProductQuery) ([]models.Product, error) {
	query := url.Values{}
	for _, b := range q.Brands {
		query.Add("brand[]", b)
	}
	for _, a := range q.Ages {
		query.Add("age[]", a)
	}
	if q.Gender != "" {
		query.Set("gender", q.Gender)
	}

	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", "/products", query, nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Filters - GET /filters.
func (c *Client) Filters(ctx context.Context) (models.FilterOptions, error) {
	var opts models.FilterOptions
	if err := c.do(ctx, http.MethodGet, "/filters", "/filters", nil, nil, &opts); err != nil {
		return models.FilterOptions{}, err
	}
	return opts, nil
}

// Product - GET /products/:id.
func (c *Client) Product(ctx context.Context, id models.ProductID) (models.Product, error) {
	var p models.Product
	err := c.do(ctx, http.MethodGet, "/products/:id", "/products/"+url.PathEscape(id.String()), nil, nil, &p)
	return p, err
}

// SimilarProducts - GET /products/similar/:id.
func (c *Client) SimilarProducts(ctx context.Context, id models.ProductID) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, http.MethodGet, "/products/similar/:id", "/products/similar/"+url.PathEscape(id.String()), nil, nil, &products)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// CheckCart - POST /cart/check, один запрос на всю корзину.
func (c *Client) CheckCart(ctx context.Context, ids []models.ProductID) ([]models.UnavailableItem, error) {
	var resp models.CartCheckResponse
	err := c.do(ctx, http.MethodPost, "/cart/check", "/cart/check", nil, models.CartCheckRequest{Items: ids}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.UnavailableItems, nil
}

// CreateOrder - POST /orders.
func (c *Client) CreateOrder(ctx context.Context, draft models.OrderDraft) (models.CreatedOrder, error) {
	var created models.CreatedOrder
	err := c.do(ctx, http.MethodPost, "/orders", "/orders", nil, draft, &created)
	return created, err
}

// Order - GET /orders/:id.
func (c *Client) Order(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodGet, "/orders/:id", "/orders/"+url.PathEscape(id), nil, nil, &order)
	return order, err
}
