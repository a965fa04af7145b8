package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"giraffe-store/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*storage.Memory, *Log) {
	kv := storage.NewMemory()
	return kv, NewLog(kv, nil)
}

var base = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestLog_Add(t *testing.T) {
	t.Run("Новые записи в начале", func(t *testing.T) {
		_, l := setup(t)
		ctx := context.Background()

		require.NoError(t, l.Add(ctx, "o-1", base))
		require.NoError(t, l.Add(ctx, "o-2", base.Add(time.Hour)))

		entries := l.Entries(ctx)
		require.Len(t, entries, 2)
		assert.Equal(t, "o-2", entries[0].OrderID)
		assert.Equal(t, "o-1", entries[1].OrderID)
	})

	t.Run("Повторный id не добавляется", func(t *testing.T) {
		_, l := setup(t)
		ctx := context.Background()

		require.NoError(t, l.Add(ctx, "o-1", base))
		require.NoError(t, l.Add(ctx, "o-1", base.Add(time.Hour)))

		entries := l.Entries(ctx)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].Date.Equal(base))
	})

	t.Run("31-я запись вытесняет самую старую", func(t *testing.T) {
		_, l := setup(t)
		ctx := context.Background()

		for i := 1; i <= MaxEntries+1; i++ {
			require.NoError(t, l.Add(ctx, fmt.Sprintf("o-%d", i), base.Add(time.Duration(i)*time.Minute)))
		}

		entries := l.Entries(ctx)
		require.Len(t, entries, MaxEntries)
		assert.Equal(t, fmt.Sprintf("o-%d", MaxEntries+1), entries[0].OrderID)
		assert.Equal(t, "o-2", entries[MaxEntries-1].OrderID)
	})

	t.Run("Пустые данные отклоняются", func(t *testing.T) {
		_, l := setup(t)

		assert.ErrorIs(t, l.Add(context.Background(), "", base), ErrInvalidEntry)
		assert.ErrorIs(t, l.Add(context.Background(), "o-1", time.Time{}), ErrInvalidEntry)
		assert.Empty(t, l.Entries(context.Background()))
	})
}

func TestLog_Recent(t *testing.T) {
	_, l := setup(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		require.NoError(t, l.Add(ctx, fmt.Sprintf("o-%d", i), base))
	}

	recent := l.Recent(ctx, 10)

	require.Len(t, recent, 10)
	assert.Equal(t, "o-11", recent[0].OrderID)
}

func TestLog_CorruptedAndClear(t *testing.T) {
	kv, l := setup(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, Key, []byte("{not json")))

	assert.Empty(t, l.Entries(ctx))

	require.NoError(t, l.Add(ctx, "o-1", base))
	require.NoError(t, l.Clear(ctx))
	assert.Empty(t, l.Entries(ctx))
	require.NoError(t, l.Clear(ctx))
}
