package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 1. Удаленный API магазина
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Запросы к удаленному API по эндпоинтам",
	}, []string{"endpoint", "status"}) // status: код ответа или "transport_error"

	APIDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Время ответа удаленного API",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// 2. Корзина
	CartSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront",
		Subsystem: "cart",
		Name:      "items_count",
		Help:      "Текущее количество товаров в корзине",
	})

	CartRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cart",
		Name:      "capacity_rejected_total",
		Help:      "Сколько раз товар не добавлен из-за лимита корзины",
	})

	// 3. Сверка корзины с API
	ReconcileRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "reconcile",
		Name:      "runs_total",
		Help:      "Проверки доступности товаров в корзине",
	}, []string{"result"}) // skipped / ok / pruned / error / discarded

	PrunedItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "reconcile",
		Name:      "pruned_items_total",
		Help:      "Сколько недоступных товаров удалено из корзины",
	})

	// 4. Оформление заказа
	OrderSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "checkout",
		Name:      "submissions_total",
		Help:      "Попытки оформления заказа по результату",
	}, []string{"result"})

	// 5. Кеш товаров
	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "items_count",
		Help:      "Текущее количество товаров в кеше",
	})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Обращения к кешу товаров",
	}, []string{"result"}) //hit-нашли, miss-нет

	// 6. Kafka
	KafkaMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "kafka",
		Name:      "messages_total",
		Help:      "Уведомления, отправленные и прочитанные через Kafka",
	}, []string{"direction", "status"})

	// 7. Локальный HTTP API
	RequestMetrics = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  "storefront",
		Subsystem:  "http",
		Name:       "request",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"status"})
)

func ObserveRequest(t time.Duration, status int) {
	RequestMetrics.WithLabelValues(strconv.Itoa(status)).Observe(t.Seconds())
}

func ObserveAPI(endpoint string, status string, t time.Duration) {
	APIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	APIDuration.WithLabelValues(endpoint).Observe(t.Seconds())
}
