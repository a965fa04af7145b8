package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"giraffe-store/internal/config"
	"giraffe-store/internal/logger/sl"
	"giraffe-store/internal/trace"
)

// version подставляется при сборке через -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// 1. Главный контекст, отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Конфигурация и логгер
	cfg := config.LoadConfig()
	logger := sl.New(cfg.LogLevel)
	slog.SetDefault(logger)

	tp, err := trace.InitTracer(ctx, version)
	if err != nil {
		log.Fatalf("Failed to init tracer: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	application, err := NewApplication(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Ошибка при инициализации приложения: %v", err)
	}
	if err = application.Run(ctx); err != nil {
		log.Fatalf("Ошибка при работе приложения: %v", err)
	}
	log.Println("Сервис успешно остановлен")
}
