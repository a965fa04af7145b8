package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel    slog.Level
	HTTP        HTTPConfig
	API         APIConfig
	Storage     StorageConfig
	DB          DBConfig
	Redis       RedisConfig
	KafkaConfig KafkaConfig
	Cart        CartConfig
	Catalog     CatalogConfig
	Checkout    CheckoutConfig
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

// APIConfig - удаленный API магазина (товары, заказы).
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig выбирает, где хранить корзину и историю заказов:
// memory, redis или postgres.
type StorageConfig struct {
	Driver string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	Group   string
}

type CartConfig struct {
	CheckInterval time.Duration
}

type CatalogConfig struct {
	ProductTTL      time.Duration
	CleanupInterval time.Duration
}

type CheckoutConfig struct {
	WhatsAppNumber string
	SiteOrigin     string
}

func LoadConfig() *Config {
	// .env необязателен, переменные окружения имеют приоритет
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используем переменные окружения")
	}

	return &Config{
		LogLevel: getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		HTTP: HTTPConfig{
			Addr:           getEnv("HTTP_ADDR", ":8080"),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:5000/api"),
			Timeout: getEnvDuration("API_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "memory"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "pass"),
			DBName:   getEnv("DB_NAME", "storefront_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "giraffekids:"),
		},
		KafkaConfig: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC", "storefront-notifications"),
			Group:   getEnv("KAFKA_GROUP", "storefront"),
		},
		Cart: CartConfig{
			CheckInterval: getEnvDuration("CART_CHECK_INTERVAL", 30*time.Second),
		},
		Catalog: CatalogConfig{
			ProductTTL:      getEnvDuration("PRODUCT_CACHE_TTL", time.Minute),
			CleanupInterval: getEnvDuration("PRODUCT_CACHE_CLEANUP", 30*time.Second),
		},
		Checkout: CheckoutConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "77023289343"),
			SiteOrigin:     getEnv("SITE_ORIGIN", "http://localhost:5173"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv(key))); err != nil {
		return defaultValue
	}
	return level
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
