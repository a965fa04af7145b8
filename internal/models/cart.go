package models

// ProductDetails - снимок товара, сделанный в момент добавления в корзину.
// После добавления снимок не обновляется: сверка с API только удаляет позиции.
type ProductDetails struct {
	ID       ProductID     `json:"id"`
	Name     string        `json:"name"`
	Price    *float64      `json:"price,omitempty"`
	ImageURL string        `json:"imageUrl,omitempty"`
	Age      string        `json:"age,omitempty"`
	Gender   string        `json:"gender,omitempty"`
	Status   ProductStatus `json:"status"`
}

// CartItem - позиция корзины. Количество не хранится: каждый товар уникален.
type CartItem struct {
	ProductDetails ProductDetails `json:"productDetails"`
}

// NewCartItem копирует поля товара в снимок.
func NewCartItem(p Product) CartItem {
	details := ProductDetails{
		ID:       p.ID,
		Name:     p.Name,
		ImageURL: p.ImageURL,
		Age:      p.Age,
		Gender:   p.Gender,
		Status:   p.Status,
	}
	if p.Price != nil {
		price := *p.Price
		details.Price = &price
	}
	return CartItem{ProductDetails: details}
}

// UnavailableItem - товар, который API пометил недоступным.
type UnavailableItem struct {
	ID   ProductID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// DisplayName возвращает имя товара или "ID: <id>", если имени нет.
func (u UnavailableItem) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return "ID: " + u.ID.String()
}

// CartCheckRequest - тело POST /cart/check.
type CartCheckRequest struct {
	Items []ProductID `json:"items"`
}

// CartCheckResponse - ответ POST /cart/check.
type CartCheckResponse struct {
	UnavailableItems []UnavailableItem `json:"unavailableItems"`
}
