package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository"
	"mebelstore/internal/app/admin/util"
	"mebelstore/pkg/logger"
	"mebelstore/pkg/metrics"
)

const taxonomyCacheTTL = time.Hour

// TaxonomyService обрабатывает CRUD каталогов, категорий и производителей.
// Полные списки кешируются в Redis и сбрасываются при любой мутации.
type TaxonomyService struct {
	catalogRepo      repository.CatalogRepository
	categoryRepo     repository.CategoryRepository
	manufacturerRepo repository.ManufacturerRepository
	cache            util.TaxonomyCache
}

// NewTaxonomyService создает новый сервис таксономии
func NewTaxonomyService(
	catalogRepo repository.CatalogRepository,
	categoryRepo repository.CategoryRepository,
	manufacturerRepo repository.ManufacturerRepository,
	cache util.TaxonomyCache,
) *TaxonomyService {
	return &TaxonomyService{
		catalogRepo:      catalogRepo,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
		cache:            cache,
	}
}

// === CATALOGS ===

func (s *TaxonomyService) CreateCatalog(ctx context.Context, req *entity.CreateCatalogRequest) (*entity.Catalog, error) {
	catalog := &entity.Catalog{Name: req.Name}
	if err := s.catalogRepo.Create(ctx, catalog); err != nil {
		return nil, s.translateTaxonomyError(err, "failed to create catalog")
	}
	s.invalidateCache(ctx)
	return catalog, nil
}

func (s *TaxonomyService) GetCatalog(ctx context.Context, id uint) (*entity.Catalog, error) {
	catalog, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translateTaxonomyError(err, "failed to get catalog")
	}
	return catalog, nil
}

// ListCatalogs возвращает каталоги. Полный список (all=true) идет через кеш.
func (s *TaxonomyService) ListCatalogs(ctx context.Context, q entity.PageQuery) ([]entity.Catalog, int64, error) {
	if q.All {
		cached, err := s.cache.GetCatalogs(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("catalog cache read failed")
		}
		if len(cached) > 0 {
			metrics.RecordCacheHit("admin", "taxonomy:catalogs")
			return cached, int64(len(cached)), nil
		}
		metrics.RecordCacheMiss("admin", "taxonomy:catalogs")
	}

	catalogs, total, err := s.catalogRepo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list catalogs: %w", err)
	}

	if q.All {
		if err := s.cache.SetCatalogs(ctx, catalogs, taxonomyCacheTTL); err != nil {
			logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return catalogs, total, nil
}

func (s *TaxonomyService) UpdateCatalog(ctx context.Context, id uint, req *entity.UpdateCatalogRequest) (*entity.Catalog, error) {
	catalog := &entity.Catalog{ID: id, Name: req.Name}
	if err := s.catalogRepo.Update(ctx, catalog); err != nil {
		return nil, s.translateTaxonomyError(err, "failed to update catalog")
	}
	s.invalidateCache(ctx)
	return s.catalogRepo.GetByID(ctx, id)
}

func (s *TaxonomyService) DeleteCatalog(ctx context.Context, id uint) error {
	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		return s.translateTaxonomyError(err, "failed to delete catalog")
	}
	s.invalidateCache(ctx)
	return nil
}

// === CATEGORIES ===

func (s *TaxonomyService) CreateCategory(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error) {
	category := &entity.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category, req.CatalogID); err != nil {
		return nil, s.translateTaxonomyError(err, "failed to create category")
	}
	s.invalidateCache(ctx)
	return category, nil
}

func (s *TaxonomyService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translateTaxonomyError(err, "failed to get category")
	}
	return category, nil
}

func (s *TaxonomyService) ListCategories(ctx context.Context, q entity.PageQuery) ([]entity.Category, int64, error) {
	if q.All {
		cached, err := s.cache.GetCategories(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("category cache read failed")
		}
		if len(cached) > 0 {
			metrics.RecordCacheHit("admin", "taxonomy:categories")
			return cached, int64(len(cached)), nil
		}
		metrics.RecordCacheMiss("admin", "taxonomy:categories")
	}

	categories, total, err := s.categoryRepo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	if q.All {
		if err := s.cache.SetCategories(ctx, categories, taxonomyCacheTTL); err != nil {
			logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, total, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id uint, req *entity.UpdateCategoryRequest) (*entity.Category, error) {
	category := &entity.Category{ID: id, Name: req.Name}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, s.translateTaxonomyError(err, "failed to update category")
	}
	s.invalidateCache(ctx)
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return s.translateTaxonomyError(err, "failed to delete category")
	}
	s.invalidateCache(ctx)
	return nil
}

// === MANUFACTURERS ===

func (s *TaxonomyService) CreateManufacturer(ctx context.Context, req *entity.CreateManufacturerRequest) (*entity.Manufacturer, error) {
	manufacturer := &entity.Manufacturer{Name: req.Name}
	if err := s.manufacturerRepo.Create(ctx, manufacturer); err != nil {
		return nil, s.translateTaxonomyError(err, "failed to create manufacturer")
	}
	s.invalidateCache(ctx)
	return manufacturer, nil
}

func (s *TaxonomyService) GetManufacturer(ctx context.Context, id uint) (*entity.Manufacturer, error) {
	manufacturer, err := s.manufacturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translateTaxonomyError(err, "failed to get manufacturer")
	}
	return manufacturer, nil
}

func (s *TaxonomyService) ListManufacturers(ctx context.Context, q entity.PageQuery) ([]entity.Manufacturer, int64, error) {
	if q.All {
		cached, err := s.cache.GetManufacturers(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("manufacturer cache read failed")
		}
		if len(cached) > 0 {
			metrics.RecordCacheHit("admin", "taxonomy:manufacturers")
			return cached, int64(len(cached)), nil
		}
		metrics.RecordCacheMiss("admin", "taxonomy:manufacturers")
	}

	manufacturers, total, err := s.manufacturerRepo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list manufacturers: %w", err)
	}

	if q.All {
		if err := s.cache.SetManufacturers(ctx, manufacturers, taxonomyCacheTTL); err != nil {
			logger.Warn().Err(err).Msg("manufacturer cache write failed")
		}
	}
	return manufacturers, total, nil
}

func (s *TaxonomyService) UpdateManufacturer(ctx context.Context, id uint, req *entity.UpdateManufacturerRequest) (*entity.Manufacturer, error) {
	manufacturer := &entity.Manufacturer{ID: id, Name: req.Name}
	if err := s.manufacturerRepo.Update(ctx, manufacturer); err != nil {
		return nil, s.translateTaxonomyError(err, "failed to update manufacturer")
	}
	s.invalidateCache(ctx)
	return s.manufacturerRepo.GetByID(ctx, id)
}

func (s *TaxonomyService) DeleteManufacturer(ctx context.Context, id uint) error {
	if err := s.manufacturerRepo.Delete(ctx, id); err != nil {
		return s.translateTaxonomyError(err, "failed to delete manufacturer")
	}
	s.invalidateCache(ctx)
	return nil
}

// invalidateCache сбрасывает кеш таксономии. Данные уже в БД,
// проблемы с кешем не критичны.
func (s *TaxonomyService) invalidateCache(ctx context.Context) {
	if err := s.cache.InvalidateTaxonomy(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate taxonomy cache")
	}
}

func (s *TaxonomyService) translateTaxonomyError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrCatalogNotFound):
		return ErrCatalogNotFound
	case errors.Is(err, repository.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrManufacturerNotFound):
		return ErrManufacturerNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrTaxonomyExists
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
