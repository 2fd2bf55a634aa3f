package entity

import "github.com/shopspring/decimal"

// TaxonomyRef указывает на каталог/категорию/производителя либо по id
// существующей записи, либо по имени для создания новой. Заполняется
// ровно одно из полей.
type TaxonomyRef struct {
	ID   uint   `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// IsZero сообщает, что ссылка не задана вовсе
func (r TaxonomyRef) IsZero() bool {
	return r.ID == 0 && r.Name == ""
}

// ByID сообщает, что ссылка указывает на существующую запись
func (r TaxonomyRef) ByID() bool {
	return r.ID != 0
}

// DimensionPayload - габариты товара из формы
type DimensionPayload struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Depth  float64 `json:"depth"`
}

// NamePayload - вложенный JSON вида {"name": "..."} для inline-создания
type NamePayload struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UploadedImage - сохранённый на диск файл, готовый к записи в БД
type UploadedImage struct {
	Filename string
	Size     int64
}

// CreateProductRequest - разобранная multipart форма создания товара
type CreateProductRequest struct {
	Name         string
	Price        decimal.Decimal
	HasPrice     bool
	Description  string
	Dimensions   *DimensionPayload
	Catalog      TaxonomyRef
	Category     TaxonomyRef
	Manufacturer TaxonomyRef
	Images       []UploadedImage
	Notify       bool
}

// UpdateProductRequest - разобранная multipart форма обновления товара.
// Нулевые поля не изменяют существующие значения.
type UpdateProductRequest struct {
	Name           string
	Price          *decimal.Decimal
	Description    *string
	Dimensions     *DimensionPayload
	Category       TaxonomyRef
	Manufacturer   TaxonomyRef
	Images         []UploadedImage
	ImagesToDelete []string
	Notify         bool
}

// ProductFilter - типизированные параметры листинга товаров
type ProductFilter struct {
	Page           int
	Limit          int
	All            bool
	CatalogID      uint
	CategoryID     uint
	ManufacturerID uint
	Search         string
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	SortBy         string
	SortOrder      string
}

// PageQuery - параметры пагинации простых списков
type PageQuery struct {
	Page  int
	Limit int
	All   bool
}

// CreateCatalogRequest - запрос на создание каталога
type CreateCatalogRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateCatalogRequest - запрос на переименование каталога
type UpdateCatalogRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateCategoryRequest - запрос на создание категории в каталоге
type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	CatalogID uint   `json:"catalog_id" validate:"required"`
}

// UpdateCategoryRequest - запрос на переименование категории
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateManufacturerRequest - запрос на создание производителя
type CreateManufacturerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// UpdateManufacturerRequest - запрос на переименование производителя
type UpdateManufacturerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// CreateStoreRequest - данные магазина (логотип приходит отдельным файлом)
type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	Logo        *UploadedImage
}

// UpdateStoreRequest - частичное обновление данных магазина
type UpdateStoreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        *UploadedImage
}

// CreateAddressRequest - запрос на добавление адреса
type CreateAddressRequest struct {
	Address string `json:"address" validate:"required,min=5,max=500"`
	Hours   string `json:"hours" validate:"max=100"`
}

// UpdateAddressRequest - частичное обновление адреса
type UpdateAddressRequest struct {
	Address string `json:"address" validate:"omitempty,min=5,max=500"`
	Hours   string `json:"hours" validate:"max=100"`
}

// CreatePhoneRequest - запрос на добавление телефона
type CreatePhoneRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Name   string `json:"name"`
	IsMain bool   `json:"isMain"`
}

// UpdatePhoneRequest - частичное обновление телефона
type UpdatePhoneRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// CreateEmailRequest - запрос на добавление email
type CreateEmailRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name"`
	IsMain bool   `json:"isMain"`
}

// UpdateEmailRequest - частичное обновление email
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name"`
}

// RegisterRequest - регистрация администратора, требует пароль супер-админа
type RegisterRequest struct {
	Surname            string `json:"surname" validate:"required,min=1,max=20"`
	Name               string `json:"name" validate:"required,min=1,max=20"`
	Login              string `json:"login" validate:"required,min=1,max=255"`
	Password           string `json:"password" validate:"required,min=1"`
	SuperAdminPassword string `json:"super_admin_password"`
}

// LoginRequest - вход администратора
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - выданный токен и срок его жизни в секундах
type LoginResponse struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires"`
}

// DeleteAdminRequest - удаление администратора, требует пароль супер-админа
type DeleteAdminRequest struct {
	SuperAdminPassword string `json:"super_admin_password"`
}

// CreateGroupRequest - запрос на добавление чата для уведомлений
type CreateGroupRequest struct {
	ChatID int64  `json:"chat_id" validate:"required"`
	Title  string `json:"title" validate:"required,min=1"`
}

// ListResponse - стандартный конверт листинга
type ListResponse struct {
	Data       interface{} `json:"data"`
	Count      int64       `json:"count"`
	Page       int         `json:"page,omitempty"`
	TotalPages int         `json:"totalPages,omitempty"`
}

// DataResponse - одиночная сущность
type DataResponse struct {
	Data interface{} `json:"data"`
}

// MessageResponse - ответ мутаций и ошибок
type MessageResponse struct {
	Message string `json:"message"`
}
