package processor

import (
	"context"
	"time"

	"mebelstore/internal/app/admin/repository"
	"mebelstore/internal/app/admin/util"
	"mebelstore/pkg/logger"
	"mebelstore/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// CleanupScheduler периодически удаляет осиротевшие файлы из каталога
// загрузок: файлы старше minAge, на которые не ссылается ни одна строка
// картинок товара или магазина. Страхует отложенное удаление файлов.
type CleanupScheduler struct {
	cron        *cron.Cron
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	images      util.ImageStore
	minAge      time.Duration
}

func NewCleanupScheduler(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	images util.ImageStore,
	minAge time.Duration,
) *CleanupScheduler {
	return &CleanupScheduler{
		cron:        cron.New(),
		productRepo: productRepo,
		storeRepo:   storeRepo,
		images:      images,
		minAge:      minAge,
	}
}

// Start регистрирует задачу по расписанию и запускает планировщик
func (s *CleanupScheduler) Start(ctx context.Context, schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.Sweep(ctx); err != nil {
			logger.Error().Err(err).Msg("orphan file sweep failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("schedule", schedule).Msg("cleanup scheduler started")
	return nil
}

func (s *CleanupScheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	logger.Info().Msg("cleanup scheduler stopped")
}

// Sweep выполняет один проход очистки
func (s *CleanupScheduler) Sweep(ctx context.Context) error {
	files, err := s.images.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	referenced, err := s.referencedFilenames(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-s.minAge)
	removed := 0
	for name, modTime := range files {
		if modTime.After(cutoff) {
			// свежие файлы не трогаем: транзакция могла еще не закоммититься
			continue
		}
		if _, ok := referenced[name]; ok {
			continue
		}
		if err := s.images.Remove(name); err != nil {
			logger.Warn().Err(err).Str("file", name).Msg("failed to remove orphan file")
			continue
		}
		removed++
		metrics.OrphanFilesRemoved.Inc()
	}

	if removed > 0 {
		logger.Info().Int("removed", removed).Msg("orphan files removed")
	}
	return nil
}

// referencedFilenames собирает имена файлов, на которые ссылается БД
func (s *CleanupScheduler) referencedFilenames(ctx context.Context) (map[string]struct{}, error) {
	productFiles, err := s.productRepo.ImageFilenames(ctx)
	if err != nil {
		return nil, err
	}
	storeFiles, err := s.storeRepo.ImageFilenames(ctx)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]struct{}, len(productFiles)+len(storeFiles))
	for _, name := range productFiles {
		referenced[name] = struct{}{}
	}
	for _, name := range storeFiles {
		referenced[name] = struct{}{}
	}
	return referenced, nil
}
