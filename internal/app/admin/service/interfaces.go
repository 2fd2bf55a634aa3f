package service

import (
	"context"

	"mebelstore/internal/app/admin/entity"
)

type ProductServiceInterface interface {
	Create(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error)
	Update(ctx context.Context, id uint, req *entity.UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*entity.Product, error)
	List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error)
	AttachImages(ctx context.Context, productID uint, uploads []entity.UploadedImage) (*entity.Product, error)
}

type TaxonomyServiceInterface interface {
	CreateCatalog(ctx context.Context, req *entity.CreateCatalogRequest) (*entity.Catalog, error)
	GetCatalog(ctx context.Context, id uint) (*entity.Catalog, error)
	ListCatalogs(ctx context.Context, q entity.PageQuery) ([]entity.Catalog, int64, error)
	UpdateCatalog(ctx context.Context, id uint, req *entity.UpdateCatalogRequest) (*entity.Catalog, error)
	DeleteCatalog(ctx context.Context, id uint) error

	CreateCategory(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error)
	GetCategory(ctx context.Context, id uint) (*entity.Category, error)
	ListCategories(ctx context.Context, q entity.PageQuery) ([]entity.Category, int64, error)
	UpdateCategory(ctx context.Context, id uint, req *entity.UpdateCategoryRequest) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	CreateManufacturer(ctx context.Context, req *entity.CreateManufacturerRequest) (*entity.Manufacturer, error)
	GetManufacturer(ctx context.Context, id uint) (*entity.Manufacturer, error)
	ListManufacturers(ctx context.Context, q entity.PageQuery) ([]entity.Manufacturer, int64, error)
	UpdateManufacturer(ctx context.Context, id uint, req *entity.UpdateManufacturerRequest) (*entity.Manufacturer, error)
	DeleteManufacturer(ctx context.Context, id uint) error
}

type StoreServiceInterface interface {
	CreateStore(ctx context.Context, req *entity.CreateStoreRequest) (*entity.Store, error)
	GetStore(ctx context.Context) (*entity.Store, error)
	UpdateStore(ctx context.Context, req *entity.UpdateStoreRequest) (*entity.Store, error)

	CreateAddress(ctx context.Context, req *entity.CreateAddressRequest) (*entity.StoreAddress, error)
	ListAddresses(ctx context.Context) ([]entity.StoreAddress, error)
	UpdateAddress(ctx context.Context, id uint, req *entity.UpdateAddressRequest) (*entity.StoreAddress, error)
	DeleteAddress(ctx context.Context, id uint) error

	CreatePhone(ctx context.Context, req *entity.CreatePhoneRequest) (*entity.StorePhone, error)
	GetPhone(ctx context.Context, id uint) (*entity.StorePhone, error)
	ListPhones(ctx context.Context) ([]entity.StorePhone, error)
	UpdatePhone(ctx context.Context, id uint, req *entity.UpdatePhoneRequest) (*entity.StorePhone, error)
	DeletePhone(ctx context.Context, id uint) error

	CreateEmail(ctx context.Context, req *entity.CreateEmailRequest) (*entity.StoreEmail, error)
	GetEmail(ctx context.Context, id uint) (*entity.StoreEmail, error)
	ListEmails(ctx context.Context) ([]entity.StoreEmail, error)
	UpdateEmail(ctx context.Context, id uint, req *entity.UpdateEmailRequest) (*entity.StoreEmail, error)
	DeleteEmail(ctx context.Context, id uint) error

	AddImages(ctx context.Context, uploads []entity.UploadedImage) ([]entity.StoreImage, error)
	DeleteImage(ctx context.Context, id uint) (string, error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.Admin, error)
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error)
	ListAdmins(ctx context.Context, q entity.PageQuery) ([]entity.Admin, int64, error)
	DeleteAdmin(ctx context.Context, id uint, superAdminPassword string) error
}

type GroupServiceInterface interface {
	Create(ctx context.Context, req *entity.CreateGroupRequest) (*entity.TelegramGroup, error)
	List(ctx context.Context) ([]entity.TelegramGroup, error)
	Delete(ctx context.Context, id uint) error
}
