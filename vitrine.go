package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vitrine.GO/api"
	_ "vitrine.GO/api/cart"
	_ "vitrine.GO/api/catalog"
	_ "vitrine.GO/api/content"
	_ "vitrine.GO/api/graphql"
	"vitrine.GO/config"
	"vitrine.GO/core/auth"
	"vitrine.GO/cron/jobs"
	_ "vitrine.GO/html"
	cartService "vitrine.GO/service/cart"
	catalogService "vitrine.GO/service/catalog"
	contentService "vitrine.GO/service/content"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	catalog := catalogService.NewService(config.AppConfig.PageSize)
	if err := catalog.LoadFile(config.AppConfig.CatalogPath); err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d products (%d records dropped)", catalog.Len(), catalog.Dropped())

	content := contentService.NewService()
	if err := content.LoadFiles(config.AppConfig.BannerPath, config.AppConfig.MenuPath); err != nil {
		log.Fatalf("failed to load content: %v", err)
	}

	carts := cartService.NewSessionStore()
	jobs.Wire(catalog, config.AppConfig.CatalogPath, carts)

	deps := &api.Deps{Catalog: catalog, Carts: carts, Content: content}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			log.Printf("Request duration: %d ms", duration)
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())

	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
