package repository

import (
	"context"
	"errors"

	"mebelstore/internal/app/admin/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrCatalogNotFound      = errors.New("catalog not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrStoreNotFound        = errors.New("store not found")
	ErrAddressNotFound      = errors.New("address not found")
	ErrPhoneNotFound        = errors.New("phone not found")
	ErrEmailNotFound        = errors.New("email not found")
	ErrImageNotFound        = errors.New("image not found")
	ErrGroupNotFound        = errors.New("telegram group not found")
	ErrDuplicate            = errors.New("entity already exists")
)

// ProductRepository инкапсулирует транзакционные операции над товаром
// и его связями (габариты, картинки, цвета, таксономия)
type ProductRepository interface {
	// CreateFull создает товар вместе с габаритами, картинками и связями
	// таксономии в одной транзакции. Ссылки таксономии разрешаются по id
	// или создаются по имени.
	CreateFull(ctx context.Context, product *entity.Product, catalog, category, manufacturer entity.TaxonomyRef) error
	// UpdateFull частично обновляет товар, заменяет связи категории и
	// производителя, удаляет перечисленные картинки и добавляет новые.
	// Возвращает имена файлов удалённых картинок для пост-коммитной очистки.
	UpdateFull(ctx context.Context, id uint, req *entity.UpdateProductRequest, newImages []entity.Image) (*entity.Product, []string, error)
	// DeleteFull удаляет товар и все зависимые строки в одной транзакции.
	// Возвращает имена файлов картинок для пост-коммитной очистки.
	DeleteFull(ctx context.Context, id uint) ([]string, error)
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error)
	AddImages(ctx context.Context, productID uint, images []entity.Image) error
	ImageFilenames(ctx context.Context) ([]string, error)
}

type CatalogRepository interface {
	Create(ctx context.Context, catalog *entity.Catalog) error
	GetByID(ctx context.Context, id uint) (*entity.Catalog, error)
	List(ctx context.Context, q entity.PageQuery) ([]entity.Catalog, int64, error)
	Update(ctx context.Context, catalog *entity.Catalog) error
	Delete(ctx context.Context, id uint) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category, catalogID uint) error
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	List(ctx context.Context, q entity.PageQuery) ([]entity.Category, int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uint) error
}

type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer *entity.Manufacturer) error
	GetByID(ctx context.Context, id uint) (*entity.Manufacturer, error)
	List(ctx context.Context, q entity.PageQuery) ([]entity.Manufacturer, int64, error)
	Update(ctx context.Context, manufacturer *entity.Manufacturer) error
	Delete(ctx context.Context, id uint) error
}

type StoreRepository interface {
	CreateStore(ctx context.Context, store *entity.Store) error
	GetStore(ctx context.Context) (*entity.Store, error)
	UpdateStore(ctx context.Context, store *entity.Store) error
	StoreExists(ctx context.Context) (bool, error)

	CreateAddress(ctx context.Context, address *entity.StoreAddress) error
	GetAddress(ctx context.Context, id uint) (*entity.StoreAddress, error)
	ListAddresses(ctx context.Context) ([]entity.StoreAddress, error)
	UpdateAddress(ctx context.Context, address *entity.StoreAddress) error
	DeleteAddress(ctx context.Context, id uint) error

	CreatePhone(ctx context.Context, phone *entity.StorePhone) error
	GetPhone(ctx context.Context, id uint) (*entity.StorePhone, error)
	FindPhoneByNumber(ctx context.Context, number string, excludeID uint) (*entity.StorePhone, error)
	MainPhoneExists(ctx context.Context) (bool, error)
	ListPhones(ctx context.Context) ([]entity.StorePhone, error)
	UpdatePhone(ctx context.Context, phone *entity.StorePhone) error
	DeletePhone(ctx context.Context, id uint) error

	CreateEmail(ctx context.Context, email *entity.StoreEmail) error
	GetEmail(ctx context.Context, id uint) (*entity.StoreEmail, error)
	MainEmailExists(ctx context.Context) (bool, error)
	ListEmails(ctx context.Context) ([]entity.StoreEmail, error)
	UpdateEmail(ctx context.Context, email *entity.StoreEmail) error
	DeleteEmail(ctx context.Context, id uint) error

	CreateImages(ctx context.Context, images []entity.StoreImage) error
	// DeleteImage удаляет картинку и возвращает имя её файла
	// для пост-коммитной очистки диска
	DeleteImage(ctx context.Context, id uint) (string, error)
	ImageFilenames(ctx context.Context) ([]string, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id uint) (*entity.Admin, error)
	GetByLogin(ctx context.Context, login string) (*entity.Admin, error)
	List(ctx context.Context, q entity.PageQuery) ([]entity.Admin, int64, error)
	Delete(ctx context.Context, id uint) error
}

type GroupRepository interface {
	Create(ctx context.Context, group *entity.TelegramGroup) error
	GetFirst(ctx context.Context) (*entity.TelegramGroup, error)
	List(ctx context.Context) ([]entity.TelegramGroup, error)
	Delete(ctx context.Context, id uint) error
}

// AuditRepository хранит журнал действий администраторов
type AuditRepository interface {
	Record(ctx context.Context, record *entity.AuditRecord) error
	ListByAdmin(ctx context.Context, adminID uint, limit int64) ([]entity.AuditRecord, error)
}

// translateError приводит ошибки драйвера к ошибкам репозитория.
// Код 23505 - нарушение уникального индекса в PostgreSQL.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// filenameFromURL извлекает имя файла из публичного URL картинки
func filenameFromURL(url string) string {
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			return url[i+1:]
		}
	}
	return url
}
