package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mebelstore/internal/app/admin/entity"

	"github.com/redis/go-redis/v9"
)

const (
	catalogsCacheKey      = "taxonomy:catalogs"
	categoriesCacheKey    = "taxonomy:categories"
	manufacturersCacheKey = "taxonomy:manufacturers"
)

// RedisClient кеширует полные списки таксономии. Админка читает их
// намного чаще, чем меняет.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) SetCatalogs(ctx context.Context, catalogs []entity.Catalog, ttl time.Duration) error {
	return r.set(ctx, catalogsCacheKey, catalogs, ttl)
}

// GetCatalogs возвращает nil без ошибки при промахе кеша
func (r *RedisClient) GetCatalogs(ctx context.Context) ([]entity.Catalog, error) {
	var catalogs []entity.Catalog
	ok, err := r.get(ctx, catalogsCacheKey, &catalogs)
	if err != nil || !ok {
		return nil, err
	}
	return catalogs, nil
}

func (r *RedisClient) SetCategories(ctx context.Context, categories []entity.Category, ttl time.Duration) error {
	return r.set(ctx, categoriesCacheKey, categories, ttl)
}

func (r *RedisClient) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	ok, err := r.get(ctx, categoriesCacheKey, &categories)
	if err != nil || !ok {
		return nil, err
	}
	return categories, nil
}

func (r *RedisClient) SetManufacturers(ctx context.Context, manufacturers []entity.Manufacturer, ttl time.Duration) error {
	return r.set(ctx, manufacturersCacheKey, manufacturers, ttl)
}

func (r *RedisClient) GetManufacturers(ctx context.Context) ([]entity.Manufacturer, error) {
	var manufacturers []entity.Manufacturer
	ok, err := r.get(ctx, manufacturersCacheKey, &manufacturers)
	if err != nil || !ok {
		return nil, err
	}
	return manufacturers, nil
}

// InvalidateTaxonomy сбрасывает все кешированные списки. Вызывается
// после любой мутации каталогов, категорий или производителей.
func (r *RedisClient) InvalidateTaxonomy(ctx context.Context) error {
	if err := r.client.Del(ctx, catalogsCacheKey, categoriesCacheKey, manufacturersCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate taxonomy cache: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

func (r *RedisClient) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}
