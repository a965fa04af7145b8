package cache

import (
	"testing"
	"time"

	"giraffe-store/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCache(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewProductCache(time.Minute, time.Second)
	c.now = func() time.Time { return now }

	product := &models.Product{ID: "10", Name: "Комбинезон", Status: models.StatusAvailable}
	c.Set(product.ID, product)

	t.Run("Товар найден", func(t *testing.T) {
		got, ok := c.Get("10")
		require.True(t, ok)
		assert.Equal(t, "Комбинезон", got.Name)

		got.Name = "изменен"
		again, _ := c.Get("10")
		assert.Equal(t, "Комбинезон", again.Name, "кеш отдает копию")
	})

	t.Run("Товар протух", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		_, ok := c.Get("10")
		assert.False(t, ok)

		assert.Equal(t, 1, c.evictExpired())
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Пустой id не кешируется", func(t *testing.T) {
		c.Set("", &models.Product{})
		c.Set("11", nil)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Удаление", func(t *testing.T) {
		c.Set("12", &models.Product{ID: "12"})
		c.Delete("12")
		_, ok := c.Get("12")
		assert.False(t, ok)
	})
}
