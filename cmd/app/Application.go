package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"giraffe-store/internal/api"
	"giraffe-store/internal/app"
	"giraffe-store/internal/cache"
	"giraffe-store/internal/cart"
	"giraffe-store/internal/catalog"
	"giraffe-store/internal/config"
	"giraffe-store/internal/db/conn"
	"giraffe-store/internal/db/repository"
	"giraffe-store/internal/handler"
	"giraffe-store/internal/history"
	"giraffe-store/internal/kafka"
	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/notify"
	"giraffe-store/internal/reconcile"
	"giraffe-store/internal/service"
	"giraffe-store/internal/storage"
	"giraffe-store/internal/trace"
)

type Application struct {
	cfg *config.Config
	log *slog.Logger

	kv         storage.KV
	srv        *app.Server
	cart       *cart.Store
	catalog    *catalog.Service
	cache      *cache.ProductCache
	reconciler *reconcile.Reconciler
	consumer   *kafka.NotificationConsumer
	producer   *kafka.NotificationProducer
}

func NewApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Application, error) {
	// 1. Хранилище корзины и истории заказов
	kv, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 2. Уведомления: лента в памяти и, если включено, Kafka
	feed := notify.NewFeed(notify.FeedLimit)
	var notifier notify.Notifier = feed
	var (
		producer *kafka.NotificationProducer
		consumer *kafka.NotificationConsumer
	)
	if cfg.KafkaConfig.Enabled {
		if err = kafka.EnsureTopicExists(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic); err != nil {
			return nil, fmt.Errorf("создание Kafka topic: %w", err)
		}
		producer, err = kafka.NewNotificationProducer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic)
		if err != nil {
			return nil, fmt.Errorf("создание Kafka Producer: %w", err)
		}
		consumer, err = kafka.NewNotificationConsumer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic, kafka.FeedProcessor(feed))
		if err != nil {
			return nil, fmt.Errorf("создание Kafka Consumer: %w", err)
		}
		notifier = notify.Multi{feed, producer}
	}

	// 3. Сборка слоев
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	productCache := cache.NewProductCache(cfg.Catalog.ProductTTL, cfg.Catalog.CleanupInterval)
	catalogService := catalog.NewService(client, productCache, log)
	cartStore := cart.NewStore(cart.NewKVPersister(kv), log)
	orderHistory := history.NewLog(kv, log)

	reconciler := reconcile.New(cartStore, client, notifier,
		reconcile.WithInterval(cfg.Cart.CheckInterval),
		reconcile.WithLogger(log))

	checkoutService := service.NewCheckoutService(client, orderHistory, cartStore, reconciler, notifier,
		service.CheckoutOptions{
			WhatsAppNumber: cfg.Checkout.WhatsAppNumber,
			SiteOrigin:     cfg.Checkout.SiteOrigin,
		}, log)
	orderService := service.NewOrderService(client, orderHistory, log)

	router := handler.NewRouter(handler.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartStore, catalogService, reconciler),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Orders:   handler.NewOrderHandler(orderService, feed),
	}, trace.ServiceName)

	return &Application{
		cfg:        cfg,
		log:        log,
		kv:         kv,
		srv:        app.NewServer(router, cfg.HTTP.AllowedOrigins),
		cart:       cartStore,
		catalog:    catalogService,
		cache:      productCache,
		reconciler: reconciler,
		consumer:   consumer,
		producer:   producer,
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case "memory", "":
		return storage.NewMemory(), nil
	case "redis":
		kv, err := storage.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			return nil, fmt.Errorf("подключение к Redis: %w", err)
		}
		return kv, nil
	case "postgres":
		dbConn, err := conn.Connection(ctx, &cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("подключение к БД: %w", err)
		}
		repo := repository.NewKVRepository(dbConn)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("неизвестный STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}

func (a *Application) Run(ctx context.Context) error {
	// 1. Восстановление корзины
	if err := a.cart.Restore(ctx); err != nil {
		a.log.Error("не удалось восстановить корзину", sl.Err(err))
	}

	// 2. Первичная загрузка каталога, ошибки видны в состоянии каталога
	if err := a.catalog.FetchFilterOptions(ctx); err != nil {
		a.log.Warn("фильтры не загружены при старте", sl.Err(err))
	}
	if err := a.catalog.Refresh(ctx); err != nil {
		a.log.Warn("товары не загружены при старте", sl.Err(err))
	}

	// 3. Фоновые задачи живут до отмены ctx
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.reconciler.Run(gctx) })
	g.Go(func() error {
		if err := a.cache.GC(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if a.consumer != nil {
		g.Go(func() error {
			a.log.Info("Запуск Kafka consumer")
			if err := a.consumer.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				a.log.Error("Kafka consumer остановился с ошибкой", sl.Err(err))
			}
			return nil
		})
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info("Запуск HTTP сервера", slog.String("addr", a.cfg.HTTP.Addr))
		if err := a.srv.Run(a.cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 4. Ожидание сигнала завершения или падения сервера
	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("Получен сигнал завершения (Graceful Shutdown)...")
	case runErr = <-serverErr:
		a.log.Error("Критическая ошибка сервера", sl.Err(runErr))
	}

	// даем 5 секунд на завершение текущих запросов
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.Shutdown(shutdownCtx)

	if runErr != nil {
		return runErr
	}
	return g.Wait()
}

func (a *Application) Shutdown(ctx context.Context) {
	if err := a.srv.Stop(ctx); err != nil {
		a.log.Error("Ошибка остановки HTTP сервера", sl.Err(err))
	}
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			a.log.Error("Ошибка остановки Kafka Consumer", sl.Err(err))
		}
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.log.Error("Ошибка остановки Kafka Producer", sl.Err(err))
		}
	}
	if err := a.kv.Close(); err != nil {
		a.log.Error("Ошибка закрытия хранилища", sl.Err(err))
	}
}
