package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)

	value := []byte(`{"items":{}}`)
	require.NoError(t, m.Set(ctx, "cart", value))
	value[0] = 'x'

	got, err := m.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `{"items":{}}`, string(got), "хранилище держит свою копию")

	require.NoError(t, m.Delete(ctx, "cart"))
	_, err = m.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)
}
