package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"giraffe-store/internal/models"
	"giraffe-store/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct {
	storage.KV
	setCalls int
}

func (f *failingKV) Set(context.Context, string, []byte) error {
	f.setCalls++
	return errors.New("disk full")
}

func TestStore_PersistsItemsOnly(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	store := NewStore(NewKVPersister(kv), nil)

	require.NoError(t, store.AddItem(ctx, fakeProduct("A")))
	require.NoError(t, store.AddItem(ctx, fakeProduct("B")))
	store.SetUnavailable([]models.UnavailableItem{{ID: "Z", Name: "Шапка"}})

	restored := NewStore(NewKVPersister(kv), nil)
	require.NoError(t, restored.Restore(ctx))

	assert.Equal(t, []models.ProductID{"A", "B"}, restored.IDs())
	assert.Empty(t, restored.Unavailable(), "список недоступных не сохраняется")
}

func TestStore_RestoreEmpty(t *testing.T) {
	store := NewStore(NewKVPersister(storage.NewMemory()), nil)

	require.NoError(t, store.Restore(context.Background()))
	assert.Equal(t, 0, store.Count())
}

func TestStore_RestoreCorrupted(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, PersistKey, []byte("not a json")))

	err := NewStore(NewKVPersister(kv), nil).Restore(ctx)

	assert.Error(t, err)
}

func TestStore_PersistFailureDoesNotFailMutation(t *testing.T) {
	kv := &failingKV{KV: storage.NewMemory()}
	store := NewStore(NewKVPersister(kv), nil)

	err := store.AddItem(context.Background(), fakeProduct("A"))

	assert.NoError(t, err)
	assert.True(t, store.Contains("A"))
	assert.Equal(t, 1, kv.setCalls)
}

func TestStore_SetUnavailableDoesNotPersist(t *testing.T) {
	kv := &failingKV{KV: storage.NewMemory()}
	store := NewStore(NewKVPersister(kv), nil)

	store.SetUnavailable([]models.UnavailableItem{{ID: "A"}})
	store.RemoveItem(context.Background(), "missing")

	assert.Equal(t, 0, kv.setCalls)
}

func TestStore_CapacityUnderConcurrency(t *testing.T) {
	store := NewStore(nil, nil)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		rejected int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := store.AddItem(context.Background(), fakeProduct(fmt.Sprintf("p-%d", i))); errors.Is(err, ErrCartFull) {
				mu.Lock()
				rejected++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, MaxItems, store.Count())
	assert.Equal(t, 100-MaxItems, rejected)
}

func TestStore_StateIsCopy(t *testing.T) {
	store := NewStore(nil, nil)
	require.NoError(t, store.AddItem(context.Background(), fakeProduct("A")))

	st := store.State()
	delete(st.Items, "A")

	assert.True(t, store.Contains("A"))
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	store := NewStore(NewKVPersister(kv), nil)
	require.NoError(t, store.AddItem(ctx, fakeProduct("A")))
	store.SetUnavailable([]models.UnavailableItem{{ID: "B"}})

	store.Clear(ctx)

	assert.Equal(t, 0, store.Count())
	assert.Empty(t, store.Unavailable())
	items, err := NewKVPersister(kv).LoadItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
