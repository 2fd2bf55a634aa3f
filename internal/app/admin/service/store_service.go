package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository"
)

// phoneRegexp - допустимый формат номера после нормализации
var phoneRegexp = regexp.MustCompile(`^(\+7|7|8)?[\d\- ]{10,15}$`)

// StoreService обрабатывает данные магазина: карточку, адреса,
// телефоны, email-ы и картинки
type StoreService struct {
	storeRepo repository.StoreRepository
	publicURL string
}

// NewStoreService создает новый сервис данных магазина
func NewStoreService(storeRepo repository.StoreRepository, publicURL string) *StoreService {
	return &StoreService{storeRepo: storeRepo, publicURL: publicURL}
}

// === STORE INFO ===

// CreateStore создает единственную запись магазина.
// Повторное создание возвращает конфликт.
func (s *StoreService) CreateStore(ctx context.Context, req *entity.CreateStoreRequest) (*entity.Store, error) {
	exists, err := s.storeRepo.StoreExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check store: %w", err)
	}
	if exists {
		return nil, ErrStoreExists
	}

	store := &entity.Store{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Logo != nil {
		store.LogoURL = s.storeImageURL(req.Logo.Filename)
	}

	if err := s.storeRepo.CreateStore(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrStoreExists
		}
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

func (s *StoreService) GetStore(ctx context.Context) (*entity.Store, error) {
	store, err := s.storeRepo.GetStore(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return store, nil
}

// UpdateStore частично обновляет карточку магазина
func (s *StoreService) UpdateStore(ctx context.Context, req *entity.UpdateStoreRequest) (*entity.Store, error) {
	store := &entity.Store{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Logo != nil {
		store.LogoURL = s.storeImageURL(req.Logo.Filename)
	}

	if err := s.storeRepo.UpdateStore(ctx, store); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to update store: %w", err)
	}
	return s.GetStore(ctx)
}

// === ADDRESSES ===

func (s *StoreService) CreateAddress(ctx context.Context, req *entity.CreateAddressRequest) (*entity.StoreAddress, error) {
	address := &entity.StoreAddress{
		Address: req.Address,
		Hours:   req.Hours,
	}
	if err := s.storeRepo.CreateAddress(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return address, nil
}

func (s *StoreService) ListAddresses(ctx context.Context) ([]entity.StoreAddress, error) {
	addresses, err := s.storeRepo.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

func (s *StoreService) UpdateAddress(ctx context.Context, id uint, req *entity.UpdateAddressRequest) (*entity.StoreAddress, error) {
	address := &entity.StoreAddress{
		ID:      id,
		Address: req.Address,
		Hours:   req.Hours,
	}
	if err := s.storeRepo.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	return s.storeRepo.GetAddress(ctx, id)
}

func (s *StoreService) DeleteAddress(ctx context.Context, id uint) error {
	if err := s.storeRepo.DeleteAddress(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return ErrAddressNotFound
		}
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

// === PHONES ===

// CreatePhone добавляет телефон. Номер нормализуется, проверяется
// по формату, на дубликат и на единственность основного номера.
func (s *StoreService) CreatePhone(ctx context.Context, req *entity.CreatePhoneRequest) (*entity.StorePhone, error) {
	normalized, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	existing, err := s.storeRepo.FindPhoneByNumber(ctx, normalized, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if existing != nil {
		return nil, ErrPhoneExists
	}

	if req.IsMain {
		hasMain, err := s.storeRepo.MainPhoneExists(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check main phone: %w", err)
		}
		if hasMain {
			return nil, ErrMainPhoneExists
		}
	}

	phone := &entity.StorePhone{
		Phone:  normalized,
		Name:   req.Name,
		IsMain: req.IsMain,
	}
	if err := s.storeRepo.CreatePhone(ctx, phone); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("failed to create phone: %w", err)
	}
	return phone, nil
}

func (s *StoreService) ListPhones(ctx context.Context) ([]entity.StorePhone, error) {
	phones, err := s.storeRepo.ListPhones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	return phones, nil
}

func (s *StoreService) UpdatePhone(ctx context.Context, id uint, req *entity.UpdatePhoneRequest) (*entity.StorePhone, error) {
	phone := &entity.StorePhone{ID: id, Name: req.Name}

	if req.Phone != "" {
		normalized, err := normalizePhone(req.Phone)
		if err != nil {
			return nil, err
		}
		existing, err := s.storeRepo.FindPhoneByNumber(ctx, normalized, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check phone: %w", err)
		}
		if existing != nil {
			return nil, ErrPhoneExists
		}
		phone.Phone = normalized
	}

	if err := s.storeRepo.UpdatePhone(ctx, phone); err != nil {
		switch {
		case errors.Is(err, repository.ErrPhoneNotFound):
			return nil, ErrPhoneNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}
	return s.storeRepo.GetPhone(ctx, id)
}

func (s *StoreService) GetPhone(ctx context.Context, id uint) (*entity.StorePhone, error) {
	phone, err := s.storeRepo.GetPhone(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhoneNotFound) {
			return nil, ErrPhoneNotFound
		}
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}
	return phone, nil
}

func (s *StoreService) DeletePhone(ctx context.Context, id uint) error {
	if err := s.storeRepo.DeletePhone(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPhoneNotFound) {
			return ErrPhoneNotFound
		}
		return fmt.Errorf("failed to delete phone: %w", err)
	}
	return nil
}

// === EMAILS ===

func (s *StoreService) CreateEmail(ctx context.Context, req *entity.CreateEmailRequest) (*entity.StoreEmail, error) {
	if req.IsMain {
		hasMain, err := s.storeRepo.MainEmailExists(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check main email: %w", err)
		}
		if hasMain {
			return nil, ErrMainEmailExists
		}
	}

	email := &entity.StoreEmail{
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Name:   req.Name,
		IsMain: req.IsMain,
	}
	if err := s.storeRepo.CreateEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create email: %w", err)
	}
	return email, nil
}

func (s *StoreService) ListEmails(ctx context.Context) ([]entity.StoreEmail, error) {
	emails, err := s.storeRepo.ListEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	return emails, nil
}

func (s *StoreService) UpdateEmail(ctx context.Context, id uint, req *entity.UpdateEmailRequest) (*entity.StoreEmail, error) {
	email := &entity.StoreEmail{
		ID:    id,
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Name:  req.Name,
	}
	if err := s.storeRepo.UpdateEmail(ctx, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailNotFound):
			return nil, ErrEmailNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to update email: %w", err)
	}
	return s.storeRepo.GetEmail(ctx, id)
}

func (s *StoreService) GetEmail(ctx context.Context, id uint) (*entity.StoreEmail, error) {
	email, err := s.storeRepo.GetEmail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmailNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to get email: %w", err)
	}
	return email, nil
}

func (s *StoreService) DeleteEmail(ctx context.Context, id uint) error {
	if err := s.storeRepo.DeleteEmail(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmailNotFound) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("failed to delete email: %w", err)
	}
	return nil
}

// === IMAGES ===

// AddImages регистрирует сохранённые на диск картинки магазина
func (s *StoreService) AddImages(ctx context.Context, uploads []entity.UploadedImage) ([]entity.StoreImage, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", ErrValidation)
	}

	images := make([]entity.StoreImage, 0, len(uploads))
	for _, u := range uploads {
		images = append(images, entity.StoreImage{
			URL:  s.storeImageURL(u.Filename),
			Size: u.Size,
		})
	}

	if err := s.storeRepo.CreateImages(ctx, images); err != nil {
		return nil, fmt.Errorf("failed to save store images: %w", err)
	}
	return images, nil
}

// DeleteImage удаляет строку картинки и возвращает имя файла -
// сам файл стирает вызывающий после успешного удаления из БД
func (s *StoreService) DeleteImage(ctx context.Context, id uint) (string, error) {
	filename, err := s.storeRepo.DeleteImage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return "", ErrImageNotFound
		}
		return "", fmt.Errorf("failed to delete image: %w", err)
	}
	return filename, nil
}

func (s *StoreService) storeImageURL(filename string) string {
	return fmt.Sprintf("%s/store/image/%s", s.publicURL, filename)
}

// normalizePhone убирает пробелы, скобки и дефисы и проверяет формат.
// Номер должен содержать от 10 до 15 цифр.
func normalizePhone(raw string) (string, error) {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '(', ')', '-':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if !phoneRegexp.MatchString(normalized) {
		return "", ErrInvalidPhone
	}

	digits := 0
	for _, r := range normalized {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 || digits > 15 {
		return "", ErrInvalidPhone
	}

	return normalized, nil
}
