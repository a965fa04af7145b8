package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"giraffe-store/internal/age"
	"giraffe-store/internal/catalog"
	"giraffe-store/internal/models"
)

//go:generate mockery --name=CatalogProvider --output=./mocks --case=underscore
type CatalogProvider interface {
	FetchProducts(ctx context.Context, q models.ProductQuery) error
	Refresh(ctx context.Context) error
	FetchFilterOptions(ctx context.Context) error
	Product(ctx context.Context, id models.ProductID) (models.Product, error)
	SimilarProducts(ctx context.Context, id models.ProductID) ([]models.Product, error)
	ToggleBrand(brand string)
	ToggleAge(value string)
	SetGender(gender string)
	ClearFilters()
	ClearProductError()
	ClearFiltersError()
	DisplayAges() []string
	State() catalog.State
}

type CatalogHandler struct {
	catalog CatalogProvider
}

func NewCatalogHandler(c CatalogProvider) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// AgeOption - возраст для панели фильтров: значение для запроса и подпись.
type AgeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type filtersResponse struct {
	Brands   []string            `json:"brands"`
	Ages     []AgeOption         `json:"ages"`
	Genders  []string            `json:"genders"`
	Selected models.ProductQuery `json:"selected"`
}

type filterValue struct {
	Value string `json:"value"`
}

// GetProducts загружает товары. Фильтры из query заменяют выбранные;
// без query используются выбранные фильтры.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var q models.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Некорректные параметры фильтра")
		return
	}

	ctx := c.Request.Context()
	var err error
	if q.IsEmpty() {
		err = h.catalog.Refresh(ctx)
	} else {
		err = h.catalog.FetchProducts(ctx, q)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.catalog.State().Items)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := models.ProductID(c.Param("id"))
	if id == "" {
		badRequest(c, "Неправильный ID товара")
		return
	}
	ctx := c.Request.Context()
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("http.request.product_id", id.String()))

	p, err := h.catalog.Product(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) GetSimilar(c *gin.Context) {
	id := models.ProductID(c.Param("id"))
	if id == "" {
		badRequest(c, "Неправильный ID товара")
		return
	}

	products, err := h.catalog.SimilarProducts(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.State())
}

// GetFilters отдает опции фильтров с переведенными подписями возрастов.
// Язык: ?lang=, затем Accept-Language, по умолчанию русский.
func (h *CatalogHandler) GetFilters(c *gin.Context) {
	st := h.catalog.State()
	if st.FiltersLoading != models.LoadSucceeded || c.Query("refresh") == "true" {
		if err := h.catalog.FetchFilterOptions(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		st = h.catalog.State()
	}

	localizer := age.NewLocalizer(age.MatchLanguage(c.Query("lang"), c.GetHeader("Accept-Language")))
	ages := h.catalog.DisplayAges()
	options := make([]AgeOption, 0, len(ages))
	for _, a := range ages {
		options = append(options, AgeOption{Value: a, Label: age.Translate(a, localizer)})
	}

	c.JSON(http.StatusOK, filtersResponse{
		Brands:   st.Options.Brands,
		Ages:     options,
		Genders:  st.AvailableGenders,
		Selected: st.Filters,
	})
}

func (h *CatalogHandler) ToggleBrand(c *gin.Context) {
	h.withValue(c, h.catalog.ToggleBrand)
}

func (h *CatalogHandler) ToggleAge(c *gin.Context) {
	h.withValue(c, h.catalog.ToggleAge)
}

func (h *CatalogHandler) SetGender(c *gin.Context) {
	h.withValue(c, h.catalog.SetGender)
}

func (h *CatalogHandler) ClearFilters(c *gin.Context) {
	h.catalog.ClearFilters()
	c.JSON(http.StatusOK, h.catalog.State().Filters)
}

func (h *CatalogHandler) ClearErrors(c *gin.Context) {
	h.catalog.ClearProductError()
	h.catalog.ClearFiltersError()
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) withValue(c *gin.Context, apply func(string)) {
	var body filterValue
	if err := c.ShouldBindJSON(&body); err != nil || body.Value == "" {
		badRequest(c, "Не передано значение фильтра")
		return
	}
	apply(body.Value)
	c.JSON(http.StatusOK, h.catalog.State().Filters)
}
