// Package history - локальный журнал оформленных заказов: только id и дата,
// новые первыми, не больше MaxEntries записей.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/models"
	"giraffe-store/internal/storage"
)

const (
	Key        = "giraffekids_orderHistory_v2"
	MaxEntries = 30
)

var ErrInvalidEntry = errors.New("некорректная запись истории заказов")

type Log struct {
	mu  sync.Mutex
	kv  storage.KV
	log *slog.Logger
}

func NewLog(kv storage.KV, log *slog.Logger) *Log {
	if log == nil {
		log = slog.Default()
	}
	return &Log{kv: kv, log: log}
}

// Entries возвращает журнал целиком. Отсутствующий или поврежденный журнал
// читается как пустой.
func (l *Log) Entries(ctx context.Context) []models.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// Recent возвращает до n самых новых записей.
func (l *Log) Recent(ctx context.Context, n int) []models.HistoryEntry {
	entries := l.Entries(ctx)
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Add добавляет заказ в начало журнала. Повторный id игнорируется.
func (l *Log) Add(ctx context.Context, orderID string, date time.Time) error {
	if orderID == "" || date.IsZero() {
		return fmt.Errorf("%w: orderId=%q date=%v", ErrInvalidEntry, orderID, date)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.load(ctx)
	for _, e := range entries {
		if e.OrderID == orderID {
			return nil
		}
	}

	entries = append([]models.HistoryEntry{{OrderID: orderID, Date: date}}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("ошибка сериализации истории заказов: %w", err)
	}
	if err := l.kv.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("ошибка сохранения истории заказов: %w", err)
	}
	return nil
}

func (l *Log) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.kv.Delete(ctx, Key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("ошибка очистки истории заказов: %w", err)
	}
	return nil
}

func (l *Log) load(ctx context.Context) []models.HistoryEntry {
	data, err := l.kv.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.log.Error("ошибка чтения истории заказов", sl.Err(err), sl.Traced(ctx))
		}
		return []models.HistoryEntry{}
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		l.log.Error("история заказов повреждена", sl.Err(err), sl.Traced(ctx))
		return []models.HistoryEntry{}
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries
}
