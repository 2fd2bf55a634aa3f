package handler

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/service"
	"mebelstore/internal/app/admin/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	uploader
	productService service.ProductServiceInterface
}

func NewProductHandler(productService service.ProductServiceInterface, images util.ImageStore, maxFiles int) *ProductHandler {
	return &ProductHandler{
		uploader:       uploader{images: images, maxFiles: maxFiles},
		productService: productService,
	}
}

// Create обрабатывает multipart форму создания товара
func (h *ProductHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := &entity.CreateProductRequest{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
		Notify:      formBool(form, "telegram_notification"),
	}

	if raw := formValue(form, "price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "invalid price")
			return
		}
		req.Price = price
		req.HasPrice = true
	}

	if raw := formValue(form, "dimensions"); raw != "" {
		var dims entity.DimensionPayload
		if err := json.Unmarshal([]byte(raw), &dims); err != nil {
			respondMessage(c, http.StatusBadRequest, "invalid dimensions")
			return
		}
		req.Dimensions = &dims
	}

	var parseErr error
	req.Catalog, parseErr = parseTaxonomyRef(form, "catalog_id", "catalog")
	if parseErr == nil {
		req.Category, parseErr = parseTaxonomyRef(form, "category_id", "category")
	}
	if parseErr == nil {
		req.Manufacturer, parseErr = parseTaxonomyRef(form, "manufacturer_id", "manufacturer")
	}
	if parseErr != nil {
		respondMessage(c, http.StatusBadRequest, parseErr.Error())
		return
	}

	uploads, err := h.saveUploads(form.File["images"], "product")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Images = uploads

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.discardUploads(uploads)
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, product)
}

// Update обрабатывает multipart форму частичного обновления товара
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := &entity.UpdateProductRequest{
		Name:   formValue(form, "name"),
		Notify: formBool(form, "telegram_notification"),
	}

	if raw := formValue(form, "price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "invalid price")
			return
		}
		req.Price = &price
	}

	if raw, exists := formValueExists(form, "description"); exists {
		req.Description = &raw
	}

	if raw := formValue(form, "dimensions"); raw != "" {
		var dims entity.DimensionPayload
		if err := json.Unmarshal([]byte(raw), &dims); err != nil {
			respondMessage(c, http.StatusBadRequest, "invalid dimensions")
			return
		}
		req.Dimensions = &dims
	}

	req.Category, err = parseTaxonomyRef(form, "category_id", "category")
	if err == nil {
		req.Manufacturer, err = parseTaxonomyRef(form, "manufacturer_id", "manufacturer")
	}
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	if raw := formValue(form, "images_to_delete"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.ImagesToDelete); err != nil {
			respondMessage(c, http.StatusBadRequest, "invalid images_to_delete")
			return
		}
	}

	uploads, err := h.saveUploads(form.File["images"], "product")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Images = uploads

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.discardUploads(uploads)
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	limit := filter.Limit
	if filter.All {
		limit = 0
	}
	respondList(c, products, total, filter.Page, limit)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "product deleted")
}

// AttachImages добавляет картинки к существующему товару.
// id товара приходит полем product_id формы.
func (h *ProductHandler) AttachImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	rawID := formValue(form, "product_id")
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil || id == 0 {
		respondMessage(c, http.StatusBadRequest, "invalid product_id")
		return
	}

	uploads, err := h.saveUploads(form.File["images"], "product")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.AttachImages(c.Request.Context(), uint(id), uploads)
	if err != nil {
		h.discardUploads(uploads)
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, product)
}

// parseTaxonomyRef читает ссылку на таксономию: либо <name>_id с id
// существующей записи, либо <name> с JSON {"name": "..."}.
func parseTaxonomyRef(form *multipart.Form, idField, jsonField string) (entity.TaxonomyRef, error) {
	if raw := formValue(form, idField); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return entity.TaxonomyRef{}, fmt.Errorf("invalid %s", idField)
		}
		return entity.TaxonomyRef{ID: uint(id)}, nil
	}

	if raw := formValue(form, jsonField); raw != "" {
		var payload entity.NamePayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload.Name == "" {
			return entity.TaxonomyRef{}, fmt.Errorf("invalid %s", jsonField)
		}
		return entity.TaxonomyRef{Name: payload.Name}, nil
	}

	return entity.TaxonomyRef{}, nil
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func formValueExists(form *multipart.Form, key string) (string, bool) {
	values := form.Value[key]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func formBool(form *multipart.Form, key string) bool {
	v := formValue(form, key)
	return v == "true" || v == "1"
}
