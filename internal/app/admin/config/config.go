package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config содержит все настройки админ-бэкенда мебельного магазина.
// Включает конфигурацию для HTTP сервера, PostgreSQL, Redis, Kafka,
// MongoDB (журнал действий), JWT, Telegram и загрузки файлов.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Telegram TelegramConfig
	Upload   UploadConfig
	CORS     CORSConfig
	Cleanup  CleanupConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Host      string
	Port      string
	PublicURL string // базовый URL для ссылок на загруженные файлы
}

// DatabaseConfig - настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig - настройки Redis для кеширования списков таксономии
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// KafkaConfig - настройки Kafka для событий об изменении товаров
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// MongoConfig - настройки MongoDB для журнала действий администраторов
type MongoConfig struct {
	URI      string
	Database string
	Enabled  bool
}

// JWTConfig - настройки подписи и проверки JWT токенов
type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

// AuthConfig - пароль супер-администратора для регистрации и удаления админов
type AuthConfig struct {
	SuperAdminPassword string
}

// TelegramConfig - настройки Telegram Bot API для анонсов товаров
type TelegramConfig struct {
	BotToken string
	// BaseURL переопределяется в тестах, по умолчанию https://api.telegram.org
	BaseURL string
}

// UploadConfig - настройки хранения загружаемых картинок
type UploadConfig struct {
	Dir         string
	MaxFileSize int64
	MaxFiles    int
}

// CORSConfig - разрешённые origin'ы фронтенда и админки
type CORSConfig struct {
	AllowOrigins []string
}

// CleanupConfig - расписание сборщика осиротевших файлов
type CleanupConfig struct {
	Schedule string
	MinAge   time.Duration
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	jwtExpires, err := strconv.Atoi(getEnv("JWT_EXPIRES", "86400"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES value: %w", err)
	}

	maxFileSize, err := strconv.ParseInt(getEnv("UPLOAD_MAX_FILE_SIZE", "10485760"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_FILE_SIZE value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host:      getEnv("SERVER_HOST", "0.0.0.0"),
			Port:      getEnv("SERVER_PORT", "8080"),
			PublicURL: getEnv("SERVER_URL", "http://localhost:8080/api"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_DB_HOST", "localhost"),
			Port:     getEnv("POSTGRES_DB_PORT", "5432"),
			User:     getEnv("POSTGRES_DB_USERNAME", "postgres"),
			Password: getEnv("POSTGRES_DB_PASSWORD", "postgres"),
			DBName:   getEnv("POSTGRES_DB_NAME", "mebelstore"),
			SSLMode:  getEnv("POSTGRES_DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "product_events"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB_NAME", "mebelstore"),
			Enabled:  getEnv("MONGO_AUDIT_ENABLED", "true") == "true",
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_KEY", "change-this-secret-in-production"),
			ExpiresIn: time.Duration(jwtExpires) * time.Second,
		},
		Auth: AuthConfig{
			SuperAdminPassword: getEnv("SUPER_ADMIN_PASSWORD", ""),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			BaseURL:  getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		},
		Upload: UploadConfig{
			Dir:         getEnv("UPLOAD_DIR", "uploads/images"),
			MaxFileSize: maxFileSize,
			MaxFiles:    10,
		},
		CORS: CORSConfig{
			AllowOrigins: strings.Split(
				getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"),
				",",
			),
		},
		Cleanup: CleanupConfig{
			Schedule: getEnv("CLEANUP_SCHEDULE", "@hourly"),
			MinAge:   time.Hour,
		},
	}, nil
}

// DSN возвращает строку подключения к PostgreSQL в формате libpq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Address возвращает адрес сервера в формате host:port
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address возвращает адрес Redis в формате host:port
func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
