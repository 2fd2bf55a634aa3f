package repository

import (
	"context"

	"mebelstore/internal/app/admin/entity"

	"gorm.io/gorm"
)

// paginate применяет limit/offset, если запрошен не полный список
func paginate(db *gorm.DB, q entity.PageQuery) *gorm.DB {
	if q.All {
		return db
	}
	offset := (q.Page - 1) * q.Limit
	return db.Offset(offset).Limit(q.Limit)
}

// === CATALOGS ===

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository создает новый репозиторий каталогов
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Create(ctx context.Context, catalog *entity.Catalog) error {
	return translateError(r.db.WithContext(ctx).Create(catalog).Error, ErrCatalogNotFound)
}

func (r *catalogRepository) GetByID(ctx context.Context, id uint) (*entity.Catalog, error) {
	var catalog entity.Catalog
	err := r.db.WithContext(ctx).First(&catalog, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, ErrCatalogNotFound)
	}
	return &catalog, nil
}

// List возвращает каталоги вместе с их категориями
func (r *catalogRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Catalog, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Catalog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var catalogs []entity.Catalog
	err := paginate(r.db.WithContext(ctx).Preload("Categories"), q).
		Order("created_at DESC").
		Find(&catalogs).Error
	if err != nil {
		return nil, 0, err
	}
	return catalogs, total, nil
}

func (r *catalogRepository) Update(ctx context.Context, catalog *entity.Catalog) error {
	result := r.db.WithContext(ctx).Model(&entity.Catalog{}).
		Where("id = ?", catalog.ID).
		Update("name", catalog.Name)
	if result.Error != nil {
		return translateError(result.Error, ErrCatalogNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrCatalogNotFound
	}
	return nil
}

func (r *catalogRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Catalog{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCatalogNotFound
	}
	return nil
}

// === CATEGORIES ===

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository создает новый репозиторий категорий
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create создает категорию и привязывает её к существующему каталогу
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category, catalogID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var catalog entity.Catalog
		if err := tx.First(&catalog, "id = ?", catalogID).Error; err != nil {
			return translateError(err, ErrCatalogNotFound)
		}
		if err := tx.Create(category).Error; err != nil {
			return translateError(err, ErrCategoryNotFound)
		}
		return tx.Model(&catalog).Association("Categories").Append(category)
	})
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).Preload("Catalogs").First(&category, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, ErrCategoryNotFound)
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []entity.Category
	err := paginate(r.db.WithContext(ctx), q).
		Order("created_at DESC").
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).Model(&entity.Category{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)
	if result.Error != nil {
		return translateError(result.Error, ErrCategoryNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// === MANUFACTURERS ===

type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository создает новый репозиторий производителей
func NewManufacturerRepository(db *gorm.DB) ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(ctx context.Context, manufacturer *entity.Manufacturer) error {
	return translateError(r.db.WithContext(ctx).Create(manufacturer).Error, ErrManufacturerNotFound)
}

func (r *manufacturerRepository) GetByID(ctx context.Context, id uint) (*entity.Manufacturer, error) {
	var manufacturer entity.Manufacturer
	err := r.db.WithContext(ctx).First(&manufacturer, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, ErrManufacturerNotFound)
	}
	return &manufacturer, nil
}

func (r *manufacturerRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Manufacturer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Manufacturer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var manufacturers []entity.Manufacturer
	err := paginate(r.db.WithContext(ctx), q).
		Order("created_at DESC").
		Find(&manufacturers).Error
	if err != nil {
		return nil, 0, err
	}
	return manufacturers, total, nil
}

func (r *manufacturerRepository) Update(ctx context.Context, manufacturer *entity.Manufacturer) error {
	result := r.db.WithContext(ctx).Model(&entity.Manufacturer{}).
		Where("id = ?", manufacturer.ID).
		Update("name", manufacturer.Name)
	if result.Error != nil {
		return translateError(result.Error, ErrManufacturerNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrManufacturerNotFound
	}
	return nil
}

func (r *manufacturerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Manufacturer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrManufacturerNotFound
	}
	return nil
}
