package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/pkg/logger"
	"mebelstore/pkg/metrics"

	"gorm.io/gorm"
)

// Колонки, по которым разрешена сортировка листинга товаров
var productSortColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"price":      true,
	"created_at": true,
	"updated_at": true,
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository создает новый репозиторий товаров
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// resolveCatalog возвращает каталог по id или создает новый по имени.
// Единый хелпер для всех трёх видов таксономии вместо дублирования ветки
// на каждом месте вызова.
func resolveCatalog(tx *gorm.DB, ref entity.TaxonomyRef) (*entity.Catalog, error) {
	var catalog entity.Catalog
	if ref.ByID() {
		if err := tx.First(&catalog, "id = ?", ref.ID).Error; err != nil {
			return nil, translateError(err, ErrCatalogNotFound)
		}
		return &catalog, nil
	}
	catalog.Name = ref.Name
	if err := tx.Create(&catalog).Error; err != nil {
		return nil, translateError(err, ErrCatalogNotFound)
	}
	return &catalog, nil
}

func resolveCategory(tx *gorm.DB, ref entity.TaxonomyRef) (*entity.Category, error) {
	var category entity.Category
	if ref.ByID() {
		if err := tx.First(&category, "id = ?", ref.ID).Error; err != nil {
			return nil, translateError(err, ErrCategoryNotFound)
		}
		return &category, nil
	}
	category.Name = ref.Name
	if err := tx.Create(&category).Error; err != nil {
		return nil, translateError(err, ErrCategoryNotFound)
	}
	return &category, nil
}

func resolveManufacturer(tx *gorm.DB, ref entity.TaxonomyRef) (*entity.Manufacturer, error) {
	var manufacturer entity.Manufacturer
	if ref.ByID() {
		if err := tx.First(&manufacturer, "id = ?", ref.ID).Error; err != nil {
			return nil, translateError(err, ErrManufacturerNotFound)
		}
		return &manufacturer, nil
	}
	manufacturer.Name = ref.Name
	if err := tx.Create(&manufacturer).Error; err != nil {
		return nil, translateError(err, ErrManufacturerNotFound)
	}
	return &manufacturer, nil
}

// CreateFull создает товар и все зависимые строки в одной транзакции.
// Любая ошибка откатывает всё, включая созданные на этой попытке
// записи таксономии.
func (r *productRepository) CreateFull(ctx context.Context, product *entity.Product, catalog, category, manufacturer entity.TaxonomyRef) error {
	timer := metrics.NewDbTimer("admin", metrics.DbOpInsert, "products")
	defer timer.ObserveDuration()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productCatalog, err := resolveCatalog(tx, catalog)
		if err != nil {
			return err
		}

		productCategory, err := resolveCategory(tx, category)
		if err != nil {
			return err
		}

		productManufacturer, err := resolveManufacturer(tx, manufacturer)
		if err != nil {
			return err
		}

		// Создаем товар вместе с габаритами и картинками (gorm создает
		// has one / has many записи из заполненных полей)
		if err := tx.Create(product).Error; err != nil {
			return translateError(err, ErrProductNotFound)
		}

		// Связи таксономии: каталог→категория, категория→товар,
		// производитель→товар
		if err := tx.Model(productCatalog).Association("Categories").Append(productCategory); err != nil {
			return err
		}
		if err := tx.Model(product).Association("Categories").Append(productCategory); err != nil {
			return err
		}
		if err := tx.Model(product).Association("Manufacturers").Append(productManufacturer); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		metrics.RecordDbError("admin", metrics.DbOpInsert)
	}
	return err
}

// UpdateFull частично обновляет товар. Связи категории и производителя
// заменяются целиком, перечисленные картинки удаляются до добавления
// новых. Возвращает имена файлов удалённых картинок - сами файлы
// стираются с диска только после коммита.
func (r *productRepository) UpdateFull(ctx context.Context, id uint, req *entity.UpdateProductRequest, newImages []entity.Image) (*entity.Product, []string, error) {
	timer := metrics.NewDbTimer("admin", metrics.DbOpUpdate, "products")
	defer timer.ObserveDuration()

	var (
		removedFiles []string
		product      entity.Product
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return translateError(err, ErrProductNotFound)
		}

		updates := map[string]interface{}{}
		if req.Name != "" {
			updates["name"] = req.Name
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if len(updates) > 0 {
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return translateError(err, ErrProductNotFound)
			}
		}

		// Габариты обновляются по месту, при отсутствии - создаются
		if req.Dimensions != nil {
			var dims entity.Dimension
			err := tx.First(&dims, "product_id = ?", id).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				dims = entity.Dimension{
					Length:    req.Dimensions.Length,
					Width:     req.Dimensions.Width,
					Height:    req.Dimensions.Height,
					Weight:    req.Dimensions.Weight,
					Depth:     req.Dimensions.Depth,
					ProductID: id,
				}
				if err := tx.Create(&dims).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				if err := tx.Model(&dims).Updates(map[string]interface{}{
					"length": req.Dimensions.Length,
					"width":  req.Dimensions.Width,
					"height": req.Dimensions.Height,
					"weight": req.Dimensions.Weight,
					"depth":  req.Dimensions.Depth,
				}).Error; err != nil {
					return err
				}
			}
		}

		// Замена связей: сначала удаляем существующие, затем создаем
		// новые из переданного id или имени
		if !req.Category.IsZero() {
			if err := tx.Model(&product).Association("Categories").Clear(); err != nil {
				return err
			}
			category, err := resolveCategory(tx, req.Category)
			if err != nil {
				return err
			}
			if err := tx.Model(&product).Association("Categories").Append(category); err != nil {
				return err
			}
		}
		if !req.Manufacturer.IsZero() {
			if err := tx.Model(&product).Association("Manufacturers").Clear(); err != nil {
				return err
			}
			manufacturer, err := resolveManufacturer(tx, req.Manufacturer)
			if err != nil {
				return err
			}
			if err := tx.Model(&product).Association("Manufacturers").Append(manufacturer); err != nil {
				return err
			}
		}

		// Удаление перечисленных картинок до добавления новых.
		// Клиент может прислать как имя файла, так и полный URL.
		for _, raw := range req.ImagesToDelete {
			filename := filenameFromURL(raw)
			var images []entity.Image
			if err := tx.Where("product_id = ? AND url LIKE ?", id, "%/"+escapeLike(filename)).Find(&images).Error; err != nil {
				return err
			}
			for _, image := range images {
				if err := tx.Delete(&entity.Image{}, "id = ?", image.ID).Error; err != nil {
					return err
				}
				removedFiles = append(removedFiles, filenameFromURL(image.URL))
			}
		}

		for i := range newImages {
			newImages[i].ProductID = id
		}
		if len(newImages) > 0 {
			if err := tx.Create(&newImages).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		metrics.RecordDbError("admin", metrics.DbOpUpdate)
		return nil, nil, err
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		// Изменения уже закоммичены; ошибка перечитывания не должна
		// превращать успешное обновление в ошибку для вызывающего
		logger.Warn().Err(err).Uint("product_id", id).Msg("failed to reload product after update")
		return &product, removedFiles, nil
	}
	return updated, removedFiles, nil
}

// DeleteFull удаляет товар и зависимые строки в одной транзакции.
// Файлы картинок не трогаются до коммита - их имена возвращаются
// вызывающему, а подстраховкой служит сборщик осиротевших файлов.
func (r *productRepository) DeleteFull(ctx context.Context, id uint) ([]string, error) {
	timer := metrics.NewDbTimer("admin", metrics.DbOpDelete, "products")
	defer timer.ObserveDuration()

	var filenames []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product entity.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return translateError(err, ErrProductNotFound)
		}

		var images []entity.Image
		if err := tx.Where("product_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		for _, image := range images {
			filenames = append(filenames, filenameFromURL(image.URL))
		}

		if err := tx.Where("product_id = ?", id).Delete(&entity.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&entity.Dimension{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&entity.Color{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&product).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&product).Association("Manufacturers").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&entity.Product{}, "id = ?", id).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		metrics.RecordDbError("admin", metrics.DbOpDelete)
		return nil, err
	}
	return filenames, nil
}

// GetByID получает товар со всеми связями
func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	timer := metrics.NewDbTimer("admin", metrics.DbOpSelect, "products")
	defer timer.ObserveDuration()

	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Dimension").
		Preload("Images").
		Preload("Colors").
		Preload("Categories").
		Preload("Categories.Catalogs").
		Preload("Manufacturers").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, ErrProductNotFound)
	}
	return &product, nil
}

// List возвращает страницу товаров и общее количество по типизированному
// фильтру. Фильтр по каталогу идёт через категории товара.
func (r *productRepository) List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error) {
	timer := metrics.NewDbTimer("admin", metrics.DbOpSelect, "products")
	defer timer.ObserveDuration()

	base := r.db.WithContext(ctx).Model(&entity.Product{})

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		base = base.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}
	if f.MinPrice != nil {
		base = base.Where("products.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		base = base.Where("products.price <= ?", *f.MaxPrice)
	}
	if f.CategoryID != 0 {
		base = base.
			Joins("JOIN product_mtm_category pmc ON pmc.product_id = products.id").
			Where("pmc.category_id = ?", f.CategoryID)
	}
	if f.CatalogID != 0 {
		base = base.
			Joins("JOIN product_mtm_category pmcc ON pmcc.product_id = products.id").
			Joins("JOIN catalog_mtm_category cmc ON cmc.category_id = pmcc.category_id").
			Where("cmc.catalog_id = ?", f.CatalogID)
	}
	if f.ManufacturerID != 0 {
		base = base.
			Joins("JOIN product_mtm_manufacturer pmm ON pmm.product_id = products.id").
			Where("pmm.manufacturer_id = ?", f.ManufacturerID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("products.id").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	sortBy := f.SortBy
	if !productSortColumns[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := "DESC"
	if f.SortOrder == "ASC" || f.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := base.Session(&gorm.Session{}).
		Distinct("products.*").
		Preload("Dimension").
		Preload("Images").
		Preload("Colors").
		Preload("Categories").
		Preload("Categories.Catalogs").
		Preload("Manufacturers").
		Order(fmt.Sprintf("products.%s %s", sortBy, sortOrder))

	if !f.All {
		offset := (f.Page - 1) * f.Limit
		query = query.Offset(offset).Limit(f.Limit)
	}

	var products []entity.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// AddImages добавляет картинки к существующему товару
func (r *productRepository) AddImages(ctx context.Context, productID uint, images []entity.Image) error {
	var product entity.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		return translateError(err, ErrProductNotFound)
	}
	for i := range images {
		images[i].ProductID = productID
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

// escapeLike экранирует спецсимволы LIKE, чтобы имя файла вроде "%"
// не совпало со всеми картинками товара
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// ImageFilenames возвращает имена файлов всех картинок товаров.
// Используется сборщиком осиротевших файлов.
func (r *productRepository) ImageFilenames(ctx context.Context) ([]string, error) {
	var urls []string
	if err := r.db.WithContext(ctx).Model(&entity.Image{}).Pluck("url", &urls).Error; err != nil {
		return nil, err
	}
	filenames := make([]string, 0, len(urls))
	for _, url := range urls {
		filenames = append(filenames, filenameFromURL(url))
	}
	return filenames, nil
}
