package handler

import (
	"errors"
	"fmt"
	"mime/multipart"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/util"
	"mebelstore/pkg/logger"
	"mebelstore/pkg/metrics"
)

// uploader - общая для хендлеров логика сохранения файлов формы
type uploader struct {
	images   util.ImageStore
	maxFiles int
}

// saveUploads сохраняет файлы формы на диск и возвращает их описания.
// При ошибке уже сохранённые файлы убираются.
func (u *uploader) saveUploads(files []*multipart.FileHeader, kind string) ([]entity.UploadedImage, error) {
	if len(files) > u.maxFiles {
		return nil, fmt.Errorf("too many files: at most %d allowed", u.maxFiles)
	}

	uploads := make([]entity.UploadedImage, 0, len(files))
	for _, file := range files {
		name, err := u.images.Save(file)
		if err != nil {
			u.discardUploads(uploads)
			if errors.Is(err, util.ErrUnsupportedImageType) || errors.Is(err, util.ErrFileTooLarge) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to save file %s", file.Filename)
		}
		metrics.ImagesUploaded.WithLabelValues(kind).Inc()
		uploads = append(uploads, entity.UploadedImage{Filename: name, Size: file.Size})
	}
	return uploads, nil
}

// discardUploads убирает сохранённые файлы после неудачной операции
func (u *uploader) discardUploads(uploads []entity.UploadedImage) {
	for _, up := range uploads {
		if err := u.images.Remove(up.Filename); err != nil {
			logger.Warn().Err(err).Str("file", up.Filename).Msg("failed to discard upload")
		}
	}
}
