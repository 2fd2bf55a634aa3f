package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// ImageHandler отдает файлы картинок из каталога загрузок
type ImageHandler struct {
	baseDir string
}

func NewImageHandler(baseDir string) *ImageHandler {
	return &ImageHandler{baseDir: baseDir}
}

// Get возвращает файл по имени из пути запроса
func (h *ImageHandler) Get(c *gin.Context) {
	name := c.Param("filename")
	// защита от обхода каталога
	if name == "" || name != filepath.Base(name) {
		respondMessage(c, http.StatusBadRequest, "invalid filename")
		return
	}

	path := filepath.Join(h.baseDir, name)
	if _, err := os.Stat(path); err != nil {
		respondMessage(c, http.StatusNotFound, "image not found")
		return
	}

	c.File(path)
}
