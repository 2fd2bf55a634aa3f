package repository

import (
	"context"
	"errors"

	"mebelstore/internal/app/admin/entity"

	"gorm.io/gorm"
)

// storeID - фиксированный id единственной записи магазина
const storeID = 1

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository создает новый репозиторий данных магазина
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

// === STORE ===

func (r *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	store.ID = storeID
	return translateError(r.db.WithContext(ctx).Create(store).Error, ErrStoreNotFound)
}

func (r *storeRepository) GetStore(ctx context.Context) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", storeID).Error
	if err != nil {
		return nil, translateError(err, ErrStoreNotFound)
	}
	return &store, nil
}

func (r *storeRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	updates := map[string]interface{}{}
	if store.Name != "" {
		updates["name"] = store.Name
	}
	if store.Description != "" {
		updates["description"] = store.Description
	}
	if store.LogoURL != "" {
		updates["url_logo"] = store.LogoURL
	}
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entity.Store{}).
		Where("id = ?", storeID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStoreNotFound
	}
	return nil
}

func (r *storeRepository) StoreExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Store{}).
		Where("id = ?", storeID).
		Count(&count).Error
	return count > 0, err
}

// === ADDRESSES ===

func (r *storeRepository) CreateAddress(ctx context.Context, address *entity.StoreAddress) error {
	return translateError(r.db.WithContext(ctx).Create(address).Error, ErrAddressNotFound)
}

func (r *storeRepository) GetAddress(ctx context.Context, id uint) (*entity.StoreAddress, error) {
	var address entity.StoreAddress
	err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, ErrAddressNotFound)
	}
	return &address, nil
}

func (r *storeRepository) ListAddresses(ctx context.Context) ([]entity.StoreAddress, error) {
	var addresses []entity.StoreAddress
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&addresses).Error
	return addresses, err
}

func (r *storeRepository) UpdateAddress(ctx context.Context, address *entity.StoreAddress) error {
	updates := map[string]interface{}{}
	if address.Address != "" {
		updates["address"] = address.Address
	}
	if address.Hours != "" {
		updates["hours"] = address.Hours
	}
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entity.StoreAddress{}).
		Where("id = ?", address.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func (r *storeRepository) DeleteAddress(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.StoreAddress{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

// === PHONES ===

func (r *storeRepository) CreatePhone(ctx context.Context, phone *entity.StorePhone) error {
	return translateError(r.db.WithContext(ctx).Create(phone).Error, ErrPhoneNotFound)
}

func (r *storeRepository) GetPhone(ctx context.Context, id uint) (*entity.StorePhone, error) {
	var phone entity.StorePhone
	err := r.db.WithContext(ctx).First(&phone, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, ErrPhoneNotFound)
	}
	return &phone, nil
}

// FindPhoneByNumber ищет телефон по нормализованному номеру, исключая
// запись excludeID (для проверки уникальности при обновлении).
// Возвращает nil без ошибки, если номер не занят.
func (r *storeRepository) FindPhoneByNumber(ctx context.Context, number string, excludeID uint) (*entity.StorePhone, error) {
	var phone entity.StorePhone
	query := r.db.WithContext(ctx).Where("phone = ?", number)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &phone, nil
}

func (r *storeRepository) MainPhoneExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.StorePhone{}).
		Where("is_main = ?", true).
		Count(&count).Error
	return count > 0, err
}

func (r *storeRepository) ListPhones(ctx context.Context) ([]entity.StorePhone, error) {
	var phones []entity.StorePhone
	err := r.db.WithContext(ctx).Order("is_main DESC, created_at ASC").Find(&phones).Error
	return phones, err
}

func (r *storeRepository) UpdatePhone(ctx context.Context, phone *entity.StorePhone) error {
	updates := map[string]interface{}{}
	if phone.Phone != "" {
		updates["phone"] = phone.Phone
	}
	if phone.Name != "" {
		updates["name"] = phone.Name
	}
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entity.StorePhone{}).
		Where("id = ?", phone.ID).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error, ErrPhoneNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrPhoneNotFound
	}
	return nil
}

func (r *storeRepository) DeletePhone(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.StorePhone{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhoneNotFound
	}
	return nil
}

// === EMAILS ===

func (r *storeRepository) CreateEmail(ctx context.Context, email *entity.StoreEmail) error {
	return translateError(r.db.WithContext(ctx).Create(email).Error, ErrEmailNotFound)
}

func (r *storeRepository) GetEmail(ctx context.Context, id uint) (*entity.StoreEmail, error) {
	var email entity.StoreEmail
	err := r.db.WithContext(ctx).First(&email, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, ErrEmailNotFound)
	}
	return &email, nil
}

func (r *storeRepository) MainEmailExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.StoreEmail{}).
		Where("is_main = ?", true).
		Count(&count).Error
	return count > 0, err
}

func (r *storeRepository) ListEmails(ctx context.Context) ([]entity.StoreEmail, error) {
	var emails []entity.StoreEmail
	err := r.db.WithContext(ctx).Order("is_main DESC, created_at ASC").Find(&emails).Error
	return emails, err
}

func (r *storeRepository) UpdateEmail(ctx context.Context, email *entity.StoreEmail) error {
	updates := map[string]interface{}{}
	if email.Email != "" {
		updates["email"] = email.Email
	}
	if email.Name != "" {
		updates["name"] = email.Name
	}
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entity.StoreEmail{}).
		Where("id = ?", email.ID).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error, ErrEmailNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrEmailNotFound
	}
	return nil
}

func (r *storeRepository) DeleteEmail(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.StoreEmail{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmailNotFound
	}
	return nil
}

// === IMAGES ===

func (r *storeRepository) CreateImages(ctx context.Context, images []entity.StoreImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

// DeleteImage удаляет картинку магазина и возвращает имя её файла
func (r *storeRepository) DeleteImage(ctx context.Context, id uint) (string, error) {
	var image entity.StoreImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		return "", translateError(err, ErrImageNotFound)
	}

	if err := r.db.WithContext(ctx).Delete(&entity.StoreImage{}, "id = ?", id).Error; err != nil {
		return "", err
	}
	return filenameFromURL(image.URL), nil
}

// ImageFilenames возвращает имена файлов всех картинок магазина,
// включая логотип. Используется сборщиком осиротевших файлов.
func (r *storeRepository) ImageFilenames(ctx context.Context) ([]string, error) {
	var urls []string
	if err := r.db.WithContext(ctx).Model(&entity.StoreImage{}).Pluck("url", &urls).Error; err != nil {
		return nil, err
	}

	var logos []string
	if err := r.db.WithContext(ctx).Model(&entity.Store{}).
		Where("url_logo <> ''").
		Pluck("url_logo", &logos).Error; err != nil {
		return nil, err
	}

	names := make([]string, 0, len(urls)+len(logos))
	for _, u := range append(urls, logos...) {
		names = append(names, filenameFromURL(u))
	}
	return names, nil
}
