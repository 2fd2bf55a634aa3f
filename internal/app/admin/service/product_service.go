package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository"
	"mebelstore/internal/app/admin/util"
	"mebelstore/pkg/logger"
	"mebelstore/pkg/metrics"
)

// ProductService обрабатывает бизнес-логику товаров.
// Координирует репозиторий, файловое хранилище, Telegram и Kafka.
type ProductService struct {
	productRepo repository.ProductRepository
	groupRepo   repository.GroupRepository
	images      util.ImageStore
	sender      util.NotificationSender
	publisher   util.MessagePublisher
	publicURL   string
}

// NewProductService создает новый сервис товаров с внедрением зависимостей.
// publisher может быть nil, если Kafka не сконфигурирована.
func NewProductService(
	productRepo repository.ProductRepository,
	groupRepo repository.GroupRepository,
	images util.ImageStore,
	sender util.NotificationSender,
	publisher util.MessagePublisher,
	publicURL string,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		groupRepo:   groupRepo,
		images:      images,
		sender:      sender,
		publisher:   publisher,
		publicURL:   publicURL,
	}
}

// Create создает товар со всеми связями в одной транзакции.
// После коммита отправляет анонс в Telegram и событие в Kafka;
// сбои побочных эффектов только логируются.
func (s *ProductService) Create(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error) {
	if err := validateCreateProduct(req); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Description: req.Description,
		Dimension: &entity.Dimension{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
			Weight: req.Dimensions.Weight,
			Depth:  req.Dimensions.Depth,
		},
		Images: s.toImageRows(req.Images),
	}

	err := s.productRepo.CreateFull(ctx, product, req.Catalog, req.Category, req.Manufacturer)
	if err != nil {
		return nil, s.translateProductError(err, "failed to create product")
	}

	metrics.ProductsCreated.Inc()

	created, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		// Товар уже закоммичен: вернуть ошибку нельзя, иначе вызывающий
		// примет успешное создание за сбой и удалит файлы картинок,
		// на которые ссылаются закоммиченные строки
		logger.Error().Err(err).Uint("product_id", product.ID).Msg("failed to reload product after create")
		created = product
	}

	s.publishEvent(ctx, "PRODUCT_CREATED", created)
	if req.Notify {
		s.announce(ctx, created)
	}

	return created, nil
}

// Update частично обновляет товар. Файлы удалённых картинок
// стираются с диска только после коммита транзакции.
func (s *ProductService) Update(ctx context.Context, id uint, req *entity.UpdateProductRequest) (*entity.Product, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	product, removedFiles, err := s.productRepo.UpdateFull(ctx, id, req, s.toImageRows(req.Images))
	if err != nil {
		return nil, s.translateProductError(err, "failed to update product")
	}

	s.removeFiles(removedFiles)
	s.publishEvent(ctx, "PRODUCT_UPDATED", product)
	if req.Notify {
		s.announce(ctx, product)
	}

	return product, nil
}

// Delete удаляет товар и все зависимые строки, затем стирает файлы картинок
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return s.translateProductError(err, "failed to get product")
	}

	filenames, err := s.productRepo.DeleteFull(ctx, id)
	if err != nil {
		return s.translateProductError(err, "failed to delete product")
	}

	metrics.ProductsDeleted.Inc()

	s.removeFiles(filenames)
	s.publishEvent(ctx, "PRODUCT_DELETED", product)
	return nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translateProductError(err, "failed to get product")
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error) {
	products, total, err := s.productRepo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// AttachImages добавляет уже сохранённые на диск картинки к товару
func (s *ProductService) AttachImages(ctx context.Context, productID uint, uploads []entity.UploadedImage) (*entity.Product, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", ErrValidation)
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, s.translateProductError(err, "failed to get product")
	}

	if err := s.productRepo.AddImages(ctx, productID, s.toImageRows(uploads)); err != nil {
		return nil, fmt.Errorf("failed to add images: %w", err)
	}

	return s.Get(ctx, productID)
}

// === SIDE EFFECTS ===

// announce отправляет анонс товара в первый зарегистрированный чат.
// Отсутствие чата - не ошибка, анонс просто пропускается.
func (s *ProductService) announce(ctx context.Context, product *entity.Product) {
	group, err := s.groupRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			metrics.RecordNotification("skipped")
			return
		}
		logger.Error().Err(err).Msg("failed to resolve telegram group")
		metrics.RecordNotification("failed")
		return
	}

	caption := s.composeCaption(product)
	button := &util.InlineButton{
		Text: "Посмотреть товар",
		URL:  fmt.Sprintf("%s/product/%d", s.publicURL, product.ID),
	}

	var sendErr error
	switch len(product.Images) {
	case 0:
		sendErr = s.sender.SendMessage(ctx, group.ChatID, caption, button)
	case 1:
		sendErr = s.sender.SendPhoto(ctx, group.ChatID, product.Images[0].URL, caption, button)
	default:
		urls := make([]string, 0, len(product.Images))
		for _, img := range product.Images {
			urls = append(urls, img.URL)
		}
		sendErr = s.sender.SendMediaGroup(ctx, group.ChatID, urls, caption)
		if sendErr == nil {
			// альбом не умеет нести кнопки, ссылка уходит отдельным сообщением
			sendErr = s.sender.SendMessage(ctx, group.ChatID, product.Name, button)
		}
	}

	if sendErr != nil {
		logger.Error().Err(sendErr).Uint("product_id", product.ID).Msg("failed to send telegram notification")
		metrics.RecordNotification("failed")
		return
	}
	metrics.RecordNotification("sent")
}

// composeCaption собирает текст анонса с хэштегами категорий и производителей
func (s *ProductService) composeCaption(product *entity.Product) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>%s</b>\n", product.Name))
	b.WriteString(fmt.Sprintf("Цена: %s ₽\n", product.Price.StringFixed(2)))
	if product.Description != "" {
		b.WriteString(product.Description)
		b.WriteString("\n")
	}

	tags := make([]string, 0, len(product.Categories)+len(product.Manufacturers))
	for _, c := range product.Categories {
		tags = append(tags, hashtag(c.Name))
	}
	for _, m := range product.Manufacturers {
		tags = append(tags, hashtag(m.Name))
	}
	if len(tags) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(tags, " "))
	}

	return b.String()
}

// publishEvent отправляет событие о товаре в Kafka.
// Key - id товара, сохраняет порядок событий в партиции.
func (s *ProductService) publishEvent(ctx context.Context, eventType string, product *entity.Product) {
	if s.publisher == nil {
		return
	}

	event := entity.ProductEvent{
		EventType: eventType,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal product event")
		return
	}

	if err := s.publisher.PublishMessage(ctx, fmt.Sprintf("%d", product.ID), data); err != nil {
		logger.Error().Err(err).Uint("product_id", product.ID).Msg("failed to publish product event")
	}
}

// removeFiles стирает файлы с диска после коммита. Сбои не критичны:
// осиротевшие файлы подберет планировщик очистки.
func (s *ProductService) removeFiles(filenames []string) {
	for _, name := range filenames {
		if err := s.images.Remove(name); err != nil {
			logger.Warn().Err(err).Str("file", name).Msg("failed to remove image file")
		}
	}
}

// === HELPERS ===

func (s *ProductService) toImageRows(uploads []entity.UploadedImage) []entity.Image {
	images := make([]entity.Image, 0, len(uploads))
	for _, u := range uploads {
		images = append(images, entity.Image{
			URL:  fmt.Sprintf("%s/product/image/%s", s.publicURL, u.Filename),
			Size: u.Size,
		})
	}
	return images
}

func (s *ProductService) translateProductError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, repository.ErrCatalogNotFound):
		return ErrCatalogNotFound
	case errors.Is(err, repository.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrManufacturerNotFound):
		return ErrManufacturerNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrProductExists
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

func validateCreateProduct(req *entity.CreateProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !req.HasPrice {
		return fmt.Errorf("%w: price is required", ErrValidation)
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if req.Dimensions == nil {
		return fmt.Errorf("%w: dimensions are required", ErrValidation)
	}
	if req.Catalog.IsZero() {
		return fmt.Errorf("%w: catalog is required", ErrValidation)
	}
	if req.Category.IsZero() {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if req.Manufacturer.IsZero() {
		return fmt.Errorf("%w: manufacturer is required", ErrValidation)
	}
	return nil
}

// hashtag превращает имя в хэштег, убирая пробелы
func hashtag(name string) string {
	return "#" + strings.Join(strings.Fields(name), "")
}
