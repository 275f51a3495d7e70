package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
	"vitrine.GO/config"
	catalogService "vitrine.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// pageResponse is the listing payload. Page echoes the requested page so
// infinite-scroll clients can advance without extra state.
type pageResponse struct {
	Products interface{} `json:"products"`
	HasMore  bool        `json:"hasMore"`
	Page     int         `json:"page"`
}

func RegisterCatalogRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// GET /api/products?page=N[&categories=..&sizes=..&sort=..]
	apiGroup.GET("/products", func(c echo.Context) error {
		page := 1
		if p := c.QueryParam("page"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "page must be a positive integer"})
			}
			page = n
		}

		categories := splitParam(c.QueryParam("categories"))
		sortType := catalogService.ParseSortType(c.QueryParam("sort"))
		sizes, err := parseSizes(c.QueryParam("sizes"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		// Plain page requests are served from Redis when available.
		cacheable := len(categories) == 0 && len(sizes) == 0 && sortType == catalogService.SortNone
		if cacheable {
			if cached, ok := redisGetPage(page); ok {
				return c.JSONBlob(http.StatusOK, cached)
			}
		}

		result := deps.Catalog.GetPage(page)
		products := catalogService.Query(result.Products, categories, sizes, sortType)
		resp := pageResponse{Products: products, HasMore: result.HasMore, Page: page}

		if cacheable {
			redisSetPage(page, resp)
		}
		return c.JSON(http.StatusOK, resp)
	})

	// GET /api/products/:id
	apiGroup.GET("/products/:id", func(c echo.Context) error {
		product, ok := deps.Catalog.GetProductByID(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"product":      product,
			"sizes":        catalogService.AvailableSizes(product),
			"images":       catalogService.ProductImages(product),
			"installments": catalogService.Installments(product),
			"priceText":    catalogService.FormatPrice(product.Price),
		})
	})

	// GET /api/sizes — ordered union of available sizes over the catalog
	apiGroup.GET("/sizes", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"sizes": deps.Catalog.AllSizes()})
	})

	// POST /api/products/reset-cache (auth required via /api middleware)
	apiGroup.POST("/products/reset-cache", func(c echo.Context) error {
		start := time.Now()
		deps.Catalog.ResetCache()
		dropped := redisDropPages()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, echo.Map{"reset": true, "redis_keys_dropped": dropped})
	})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseSizes(raw string) ([]catalogService.Size, error) {
	var sizes []catalogService.Size
	for _, s := range splitParam(raw) {
		size := catalogService.Size(s)
		if !catalogService.IsValidSize(size) {
			return nil, fmt.Errorf("invalid size: %q", s)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// --- Redis page cache (disabled when Redis is not configured) ---

func redisPageKey(page int) string {
	return fmt.Sprintf("vitrine:page:%d", page)
}

func redisGetPage(page int) ([]byte, bool) {
	if config.RedisClient == nil {
		return nil, false
	}
	data, err := config.RedisClient.Get(config.RedisCtx(), redisPageKey(page)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func redisSetPage(page int, resp pageResponse) {
	if config.RedisClient == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	ttl := time.Duration(config.RedisPageTTL()) * time.Second
	_ = config.RedisClient.Set(config.RedisCtx(), redisPageKey(page), data, ttl).Err()
}

func redisDropPages() int {
	if config.RedisClient == nil {
		return 0
	}
	keys, err := config.RedisClient.Keys(config.RedisCtx(), "vitrine:page:*").Result()
	if err != nil || len(keys) == 0 {
		return 0
	}
	n, _ := config.RedisClient.Del(config.RedisCtx(), keys...).Result()
	return int(n)
}
