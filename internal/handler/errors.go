package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"giraffe-store/internal/api"
	"giraffe-store/internal/cart"
	"giraffe-store/internal/catalog"
	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/models"
	"giraffe-store/internal/service"
)

type errorResponse struct {
	Error            string                   `json:"error"`
	Code             string                   `json:"code"`
	UnavailableItems []models.UnavailableItem `json:"unavailableItems,omitempty"`
}

// statusFor сопоставляет ошибку сервисов с HTTP-кодом и машинным кодом ошибки.
func statusFor(err error) (int, string) {
	var apiErr *api.Error
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest, "empty_cart"
	case errors.Is(err, service.ErrNameTooShort):
		return http.StatusBadRequest, "name_too_short"
	case errors.Is(err, service.ErrInvalidPhone):
		return http.StatusBadRequest, "invalid_phone"
	case errors.Is(err, cart.ErrCartFull):
		return http.StatusConflict, "cart_full"
	case errors.Is(err, catalog.ErrProductNotAvailable):
		return http.StatusConflict, "product_not_available"
	case errors.Is(err, service.ErrItemsUnavailable):
		return http.StatusConflict, "items_unavailable"
	case errors.Is(err, service.ErrSubmissionInProgress):
		return http.StatusConflict, "submission_in_progress"
	case errors.Is(err, service.ErrPendingOrderLimit):
		return http.StatusTooManyRequests, "pending_order_limit"
	case errors.Is(err, service.ErrPendingCheckFailed):
		return http.StatusBadGateway, "pending_check_failed"
	case errors.Is(err, service.ErrOrderFailed):
		return http.StatusBadGateway, "order_failed"
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		return http.StatusNotFound, "not_found"
	case apiErr != nil, errors.Is(err, api.ErrTransport):
		return http.StatusBadGateway, "upstream_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(c *gin.Context, err error) {
	status, code := statusFor(err)
	resp := errorResponse{Error: err.Error(), Code: code}

	var unavailable *service.UnavailableItemsError
	if errors.As(err, &unavailable) {
		resp.UnavailableItems = unavailable.Items
	}

	if status >= http.StatusInternalServerError {
		slog.Error("ошибка обработки запроса",
			sl.Err(err),
			slog.String("path", c.FullPath()),
			sl.Traced(c.Request.Context()))
	}
	c.JSON(status, resp)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message, Code: "bad_request"})
}
