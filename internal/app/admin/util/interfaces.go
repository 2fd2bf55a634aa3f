package util

import (
	"context"
	"mime/multipart"
	"time"

	"mebelstore/internal/app/admin/entity"
)

// TaxonomyCache интерфейс кеша списков таксономии
// Используется для dependency injection и упрощения тестирования
type TaxonomyCache interface {
	SetCatalogs(ctx context.Context, catalogs []entity.Catalog, ttl time.Duration) error
	GetCatalogs(ctx context.Context) ([]entity.Catalog, error)
	SetCategories(ctx context.Context, categories []entity.Category, ttl time.Duration) error
	GetCategories(ctx context.Context) ([]entity.Category, error)
	SetManufacturers(ctx context.Context, manufacturers []entity.Manufacturer, ttl time.Duration) error
	GetManufacturers(ctx context.Context) ([]entity.Manufacturer, error)
	InvalidateTaxonomy(ctx context.Context) error
	Close() error
}

// MessagePublisher интерфейс для отправки событий в очередь (Kafka)
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

// NotificationSender интерфейс клиента Telegram Bot API
type NotificationSender interface {
	SendMessage(ctx context.Context, chatID int64, text string, button *InlineButton) error
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, button *InlineButton) error
	SendMediaGroup(ctx context.Context, chatID int64, photoURLs []string, caption string) error
}

// ImageStore интерфейс файлового хранилища загруженных картинок
type ImageStore interface {
	Save(header *multipart.FileHeader) (string, error)
	Remove(name string) error
	List() (map[string]time.Time, error)
}

// TokenManager интерфейс выпуска и проверки JWT токенов
type TokenManager interface {
	GenerateToken(adminID uint, login string) (string, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
	GetTokenDuration() time.Duration
}
