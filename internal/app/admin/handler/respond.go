package handler

import (
	"context"
	"errors"
	"net/http"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validate - общий валидатор DTO для всех хендлеров
var validate = validator.New()

// respondMessage отправляет конверт {message}
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, entity.MessageResponse{Message: message})
}

// respondData отправляет конверт {data}
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, entity.DataResponse{Data: data})
}

// respondList отправляет конверт листинга {data,count,page,totalPages}
func respondList(c *gin.Context, data interface{}, count int64, page, limit int) {
	resp := entity.ListResponse{Data: data, Count: count}
	if limit > 0 {
		resp.Page = page
		resp.TotalPages = int((count + int64(limit) - 1) / int64(limit))
	}
	c.JSON(http.StatusOK, resp)
}

// respondServiceError переводит ошибку сервиса в HTTP статус.
// Внутренние ошибки наружу не выдаются.
func respondServiceError(c *gin.Context, err error) {
	status := statusForError(err)
	switch status {
	case http.StatusInternalServerError:
		respondMessage(c, status, "internal server error")
	case http.StatusServiceUnavailable:
		respondMessage(c, status, "service temporarily unavailable")
	default:
		respondMessage(c, status, err.Error())
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidPhone):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCatalogNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrManufacturerNotFound),
		errors.Is(err, service.ErrStoreNotFound),
		errors.Is(err, service.ErrAddressNotFound),
		errors.Is(err, service.ErrPhoneNotFound),
		errors.Is(err, service.ErrEmailNotFound),
		errors.Is(err, service.ErrImageNotFound),
		errors.Is(err, service.ErrAdminNotFound),
		errors.Is(err, service.ErrGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrProductExists),
		errors.Is(err, service.ErrTaxonomyExists),
		errors.Is(err, service.ErrStoreExists),
		errors.Is(err, service.ErrPhoneExists),
		errors.Is(err, service.ErrMainPhoneExists),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrMainEmailExists),
		errors.Is(err, service.ErrAdminExists):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
