package service

import "errors"

var (
	ErrValidation           = errors.New("validation error")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductExists        = errors.New("product with this name already exists")
	ErrCatalogNotFound      = errors.New("catalog not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	ErrTaxonomyExists       = errors.New("entity with this name already exists")
	ErrStoreNotFound        = errors.New("store not found")
	ErrStoreExists          = errors.New("store already exists")
	ErrAddressNotFound      = errors.New("address not found")
	ErrPhoneNotFound        = errors.New("phone not found")
	ErrPhoneExists          = errors.New("phone already exists")
	ErrInvalidPhone         = errors.New("invalid phone format")
	ErrMainPhoneExists      = errors.New("main phone already exists")
	ErrEmailNotFound        = errors.New("email not found")
	ErrEmailExists          = errors.New("email already exists")
	ErrMainEmailExists      = errors.New("main email already exists")
	ErrImageNotFound        = errors.New("image not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrAdminExists          = errors.New("admin with this login already exists")
	ErrInvalidCredentials   = errors.New("invalid login or password")
	ErrForbidden            = errors.New("access forbidden")
	ErrGroupNotFound        = errors.New("telegram group not found")
)
