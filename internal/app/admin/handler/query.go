package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"mebelstore/internal/app/admin/entity"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// paramID читает числовой :id из пути, при ошибке сам пишет ответ 400
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondMessage(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// parsePageQuery читает параметры пагинации page/limit/all
func parsePageQuery(c *gin.Context) (entity.PageQuery, error) {
	q := entity.PageQuery{Page: defaultPage, Limit: defaultLimit}

	if c.Query("all") == "true" {
		q.All = true
		return q, nil
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, fmt.Errorf("invalid page")
		}
		q.Page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return q, fmt.Errorf("invalid limit")
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		q.Limit = limit
	}

	return q, nil
}

// parseProductFilter читает параметры листинга товаров
func parseProductFilter(c *gin.Context) (entity.ProductFilter, error) {
	q, err := parsePageQuery(c)
	if err != nil {
		return entity.ProductFilter{}, err
	}

	f := entity.ProductFilter{
		Page:      q.Page,
		Limit:     q.Limit,
		All:       q.All,
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if f.CatalogID, err = queryID(c, "catalog_id"); err != nil {
		return f, err
	}
	if f.CategoryID, err = queryID(c, "category_id"); err != nil {
		return f, err
	}
	if f.ManufacturerID, err = queryID(c, "manufacturer_id"); err != nil {
		return f, err
	}

	if raw := c.Query("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return f, fmt.Errorf("invalid min_price")
		}
		f.MinPrice = &price
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return f, fmt.Errorf("invalid max_price")
		}
		f.MaxPrice = &price
	}

	return f, nil
}

func queryID(c *gin.Context, key string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}
