package util

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrFileTooLarge         = errors.New("file is too large")
)

// allowedImageTypes - типы файлов, которые принимаем как картинки.
// Сопоставляет MIME-тип с расширением сохраняемого файла.
var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/bmp":     ".bmp",
	"image/tiff":    ".tiff",
	"image/x-icon":  ".ico",
}

// FileStore сохраняет загруженные картинки на диск и выдает
// уникальные имена файлов
type FileStore struct {
	baseDir     string
	maxFileSize int64
}

// NewFileStore создает хранилище файлов, каталог создается при отсутствии
func NewFileStore(baseDir string, maxFileSize int64) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &FileStore{baseDir: baseDir, maxFileSize: maxFileSize}, nil
}

// Save проверяет тип и размер файла и записывает его под уникальным
// именем вида <метка-времени>_<случайный-суффикс>.<расширение>.
// Возвращает имя сохранённого файла.
func (s *FileStore) Save(header *multipart.FileHeader) (string, error) {
	if s.maxFileSize > 0 && header.Size > s.maxFileSize {
		return "", ErrFileTooLarge
	}

	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	mappedExt, ok := allowedImageTypes[contentType]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	// расширение берем из исходного имени, если оно из списка разрешенных
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extAllowed(ext) {
		ext = mappedExt
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := generateFilename(ext)
	dst, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}

// Remove удаляет файл по имени. Отсутствующий файл не считается ошибкой.
func (s *FileStore) Remove(name string) error {
	// защита от обхода каталога
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid filename: %s", name)
	}
	err := os.Remove(filepath.Join(s.baseDir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// List возвращает имена всех файлов каталога и время их изменения
func (s *FileStore) List() (map[string]time.Time, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	files := make(map[string]time.Time, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files[entry.Name()] = info.ModTime()
	}
	return files, nil
}

func extAllowed(ext string) bool {
	for _, allowed := range allowedImageTypes {
		if ext == allowed {
			return true
		}
	}
	return ext == ".jpeg" || ext == ".tif"
}

func generateFilename(ext string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), suffix, ext)
}
