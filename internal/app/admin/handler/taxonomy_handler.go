package handler

import (
	"net/http"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/service"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	taxonomyService service.TaxonomyServiceInterface
}

func NewTaxonomyHandler(taxonomyService service.TaxonomyServiceInterface) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// === CATALOGS ===

func (h *TaxonomyHandler) CreateCatalog(c *gin.Context) {
	var req entity.CreateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	catalog, err := h.taxonomyService.CreateCatalog(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, catalog)
}

func (h *TaxonomyHandler) GetCatalog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	catalog, err := h.taxonomyService.GetCatalog(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, catalog)
}

func (h *TaxonomyHandler) ListCatalogs(c *gin.Context) {
	q, err := parsePageQuery(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	catalogs, total, err := h.taxonomyService.ListCatalogs(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, catalogs, total, q.Page, listLimit(q))
}

func (h *TaxonomyHandler) UpdateCatalog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req entity.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	catalog, err := h.taxonomyService.UpdateCatalog(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, catalog)
}

func (h *TaxonomyHandler) DeleteCatalog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.taxonomyService.DeleteCatalog(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "catalog deleted")
}

// === CATEGORIES ===

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req entity.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.taxonomyService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, category)
}

func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	category, err := h.taxonomyService.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, category)
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	q, err := parsePageQuery(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	categories, total, err := h.taxonomyService.ListCategories(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, categories, total, q.Page, listLimit(q))
}

func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req entity.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.taxonomyService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, category)
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.taxonomyService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "category deleted")
}

// === MANUFACTURERS ===

func (h *TaxonomyHandler) CreateManufacturer(c *gin.Context) {
	var req entity.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	manufacturer, err := h.taxonomyService.CreateManufacturer(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, manufacturer)
}

func (h *TaxonomyHandler) GetManufacturer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	manufacturer, err := h.taxonomyService.GetManufacturer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, manufacturer)
}

func (h *TaxonomyHandler) ListManufacturers(c *gin.Context) {
	q, err := parsePageQuery(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	manufacturers, total, err := h.taxonomyService.ListManufacturers(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, manufacturers, total, q.Page, listLimit(q))
}

func (h *TaxonomyHandler) UpdateManufacturer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req entity.UpdateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	manufacturer, err := h.taxonomyService.UpdateManufacturer(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, manufacturer)
}

func (h *TaxonomyHandler) DeleteManufacturer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.taxonomyService.DeleteManufacturer(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "manufacturer deleted")
}

// listLimit возвращает limit для конверта листинга, 0 при all=true
func listLimit(q entity.PageQuery) int {
	if q.All {
		return 0
	}
	return q.Limit
}
