package mocks

import (
	"context"
	"mime/multipart"
	"time"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/util"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository мок для ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) CreateFull(ctx context.Context, product *entity.Product, catalog, category, manufacturer entity.TaxonomyRef) error {
	args := m.Called(ctx, product, catalog, category, manufacturer)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateFull(ctx context.Context, id uint, req *entity.UpdateProductRequest, newImages []entity.Image) (*entity.Product, []string, error) {
	args := m.Called(ctx, id, req, newImages)
	var product *entity.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*entity.Product)
	}
	var removed []string
	if args.Get(1) != nil {
		removed = args.Get(1).([]string)
	}
	return product, removed, args.Error(2)
}

func (m *MockProductRepository) DeleteFull(ctx context.Context, id uint) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) AddImages(ctx context.Context, productID uint, images []entity.Image) error {
	args := m.Called(ctx, productID, images)
	return args.Error(0)
}

func (m *MockProductRepository) ImageFilenames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockCatalogRepository мок для CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Create(ctx context.Context, catalog *entity.Catalog) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id uint) (*entity.Catalog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Catalog, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Catalog), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogRepository) Update(ctx context.Context, catalog *entity.Catalog) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository мок для CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category, catalogID uint) error {
	args := m.Called(ctx, category, catalogID)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Category, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockManufacturerRepository мок для ManufacturerRepository
type MockManufacturerRepository struct {
	mock.Mock
}

func (m *MockManufacturerRepository) Create(ctx context.Context, manufacturer *entity.Manufacturer) error {
	args := m.Called(ctx, manufacturer)
	return args.Error(0)
}

func (m *MockManufacturerRepository) GetByID(ctx context.Context, id uint) (*entity.Manufacturer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Manufacturer, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Manufacturer), args.Get(1).(int64), args.Error(2)
}

func (m *MockManufacturerRepository) Update(ctx context.Context, manufacturer *entity.Manufacturer) error {
	args := m.Called(ctx, manufacturer)
	return args.Error(0)
}

func (m *MockManufacturerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStoreRepository мок для StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) GetStore(ctx context.Context) (*entity.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) StoreExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) CreateAddress(ctx context.Context, address *entity.StoreAddress) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockStoreRepository) GetAddress(ctx context.Context, id uint) (*entity.StoreAddress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StoreAddress), args.Error(1)
}

func (m *MockStoreRepository) ListAddresses(ctx context.Context) ([]entity.StoreAddress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StoreAddress), args.Error(1)
}

func (m *MockStoreRepository) UpdateAddress(ctx context.Context, address *entity.StoreAddress) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockStoreRepository) DeleteAddress(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) CreatePhone(ctx context.Context, phone *entity.StorePhone) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockStoreRepository) GetPhone(ctx context.Context, id uint) (*entity.StorePhone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StorePhone), args.Error(1)
}

func (m *MockStoreRepository) FindPhoneByNumber(ctx context.Context, number string, excludeID uint) (*entity.StorePhone, error) {
	args := m.Called(ctx, number, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StorePhone), args.Error(1)
}

func (m *MockStoreRepository) MainPhoneExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) ListPhones(ctx context.Context) ([]entity.StorePhone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StorePhone), args.Error(1)
}

func (m *MockStoreRepository) UpdatePhone(ctx context.Context, phone *entity.StorePhone) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockStoreRepository) DeletePhone(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) CreateEmail(ctx context.Context, email *entity.StoreEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockStoreRepository) GetEmail(ctx context.Context, id uint) (*entity.StoreEmail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StoreEmail), args.Error(1)
}

func (m *MockStoreRepository) MainEmailExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) ListEmails(ctx context.Context) ([]entity.StoreEmail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StoreEmail), args.Error(1)
}

func (m *MockStoreRepository) UpdateEmail(ctx context.Context, email *entity.StoreEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockStoreRepository) DeleteEmail(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) CreateImages(ctx context.Context, images []entity.StoreImage) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

func (m *MockStoreRepository) DeleteImage(ctx context.Context, id uint) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockStoreRepository) ImageFilenames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockAdminRepository мок для AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id uint) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByLogin(ctx context.Context, login string) (*entity.Admin, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Admin, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Admin), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGroupRepository мок для GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *entity.TelegramGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetFirst(ctx context.Context) (*entity.TelegramGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TelegramGroup), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context) ([]entity.TelegramGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TelegramGroup), args.Error(1)
}

func (m *MockGroupRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuditRepository мок для AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Record(ctx context.Context, record *entity.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByAdmin(ctx context.Context, adminID uint, limit int64) ([]entity.AuditRecord, error) {
	args := m.Called(ctx, adminID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditRecord), args.Error(1)
}

// MockTaxonomyCache мок для util.TaxonomyCache
type MockTaxonomyCache struct {
	mock.Mock
}

func (m *MockTaxonomyCache) SetCatalogs(ctx context.Context, catalogs []entity.Catalog, ttl time.Duration) error {
	args := m.Called(ctx, catalogs, ttl)
	return args.Error(0)
}

func (m *MockTaxonomyCache) GetCatalogs(ctx context.Context) ([]entity.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Catalog), args.Error(1)
}

func (m *MockTaxonomyCache) SetCategories(ctx context.Context, categories []entity.Category, ttl time.Duration) error {
	args := m.Called(ctx, categories, ttl)
	return args.Error(0)
}

func (m *MockTaxonomyCache) GetCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockTaxonomyCache) SetManufacturers(ctx context.Context, manufacturers []entity.Manufacturer, ttl time.Duration) error {
	args := m.Called(ctx, manufacturers, ttl)
	return args.Error(0)
}

func (m *MockTaxonomyCache) GetManufacturers(ctx context.Context) ([]entity.Manufacturer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Manufacturer), args.Error(1)
}

func (m *MockTaxonomyCache) InvalidateTaxonomy(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaxonomyCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockMessagePublisher мок для util.MessagePublisher (Kafka)
type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockNotificationSender мок для util.NotificationSender (Telegram)
type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) SendMessage(ctx context.Context, chatID int64, text string, button *util.InlineButton) error {
	args := m.Called(ctx, chatID, text, button)
	return args.Error(0)
}

func (m *MockNotificationSender) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, button *util.InlineButton) error {
	args := m.Called(ctx, chatID, photoURL, caption, button)
	return args.Error(0)
}

func (m *MockNotificationSender) SendMediaGroup(ctx context.Context, chatID int64, photoURLs []string, caption string) error {
	args := m.Called(ctx, chatID, photoURLs, caption)
	return args.Error(0)
}

// MockImageStore мок для util.ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(header *multipart.FileHeader) (string, error) {
	args := m.Called(header)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Remove(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockImageStore) List() (map[string]time.Time, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]time.Time), args.Error(1)
}

// MockTokenManager мок для util.TokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateToken(adminID uint, login string) (string, error) {
	args := m.Called(adminID, login)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*util.JWTClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*util.JWTClaims), args.Error(1)
}

func (m *MockTokenManager) GetTokenDuration() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
