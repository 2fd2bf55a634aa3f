package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"mebelstore/internal/app/admin/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSweepFixture() (*CleanupScheduler, *mocks.MockProductRepository, *mocks.MockStoreRepository, *mocks.MockImageStore) {
	productRepo := new(mocks.MockProductRepository)
	storeRepo := new(mocks.MockStoreRepository)
	images := new(mocks.MockImageStore)
	scheduler := NewCleanupScheduler(productRepo, storeRepo, images, time.Hour)
	return scheduler, productRepo, storeRepo, images
}

func TestSweep_RemovesOrphans(t *testing.T) {
	// Arrange
	scheduler, productRepo, storeRepo, images := newSweepFixture()

	old := time.Now().Add(-2 * time.Hour)
	images.On("List").Return(map[string]time.Time{
		"referenced.jpg": old,
		"orphan.jpg":     old,
	}, nil)
	productRepo.On("ImageFilenames", mock.Anything).Return([]string{"referenced.jpg"}, nil)
	storeRepo.On("ImageFilenames", mock.Anything).Return([]string{}, nil)
	images.On("Remove", "orphan.jpg").Return(nil)

	// Act
	err := scheduler.Sweep(context.Background())

	// Assert - удаляется только осиротевший файл
	assert.NoError(t, err)
	images.AssertCalled(t, "Remove", "orphan.jpg")
	images.AssertNotCalled(t, "Remove", "referenced.jpg")
}

func TestSweep_KeepsFreshFiles(t *testing.T) {
	// Arrange - файл без ссылок, но моложе minAge
	scheduler, productRepo, storeRepo, images := newSweepFixture()

	images.On("List").Return(map[string]time.Time{
		"fresh.jpg": time.Now().Add(-time.Minute),
	}, nil)
	productRepo.On("ImageFilenames", mock.Anything).Return([]string{}, nil)
	storeRepo.On("ImageFilenames", mock.Anything).Return([]string{}, nil)

	// Act
	err := scheduler.Sweep(context.Background())

	// Assert - транзакция могла еще не закоммититься, файл не трогаем
	assert.NoError(t, err)
	images.AssertNotCalled(t, "Remove", mock.Anything)
}

func TestSweep_EmptyDirIsNoop(t *testing.T) {
	// Arrange
	scheduler, productRepo, _, images := newSweepFixture()

	images.On("List").Return(map[string]time.Time{}, nil)

	// Act
	err := scheduler.Sweep(context.Background())

	// Assert - при пустом каталоге БД не опрашивается
	assert.NoError(t, err)
	productRepo.AssertNotCalled(t, "ImageFilenames", mock.Anything)
}

func TestSweep_RepositoryErrorAbortsSweep(t *testing.T) {
	// Arrange
	scheduler, productRepo, _, images := newSweepFixture()

	images.On("List").Return(map[string]time.Time{
		"orphan.jpg": time.Now().Add(-2 * time.Hour),
	}, nil)
	productRepo.On("ImageFilenames", mock.Anything).Return(nil, errors.New("db down"))

	// Act
	err := scheduler.Sweep(context.Background())

	// Assert - без полного списка ссылок удалять ничего нельзя
	assert.Error(t, err)
	images.AssertNotCalled(t, "Remove", mock.Anything)
}

func TestSweep_RemoveFailureContinues(t *testing.T) {
	// Arrange - сбой удаления одного файла не прерывает проход
	scheduler, productRepo, storeRepo, images := newSweepFixture()

	old := time.Now().Add(-2 * time.Hour)
	images.On("List").Return(map[string]time.Time{
		"orphan1.jpg": old,
		"orphan2.jpg": old,
	}, nil)
	productRepo.On("ImageFilenames", mock.Anything).Return([]string{}, nil)
	storeRepo.On("ImageFilenames", mock.Anything).Return([]string{}, nil)
	images.On("Remove", "orphan1.jpg").Return(errors.New("permission denied"))
	images.On("Remove", "orphan2.jpg").Return(nil)

	// Act
	err := scheduler.Sweep(context.Background())

	// Assert
	assert.NoError(t, err)
	images.AssertCalled(t, "Remove", "orphan1.jpg")
	images.AssertCalled(t, "Remove", "orphan2.jpg")
}
