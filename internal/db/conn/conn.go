package conn

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"giraffe-store/internal/config"

	_ "github.com/lib/pq"
)

func Connection(ctx context.Context, conf *config.DBConfig) (*sql.DB, error) {
	dns := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		conf.Host,
		conf.Port,
		conf.User,
		conf.Password,
		conf.DBName,
		conf.SSLMode)
	db, err := sql.Open("postgres", dns)
	if err != nil {
		return nil, fmt.Errorf("не удалось установить соединение: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("не удалось достучаться до БД: %w", err)
	}

	return db, nil
}
