// Standalone GraphQL server — run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
	_ "vitrine.GO/api/graphql"
	"vitrine.GO/config"
	cartService "vitrine.GO/service/cart"
	catalogService "vitrine.GO/service/catalog"
	contentService "vitrine.GO/service/content"
)

func main() {
	_ = godotenv.Load()
	config.LoadAppConfig()

	catalog := catalogService.NewService(config.AppConfig.PageSize)
	if err := catalog.LoadFile(config.AppConfig.CatalogPath); err != nil {
		log.Fatal("catalog:", err)
	}
	content := contentService.NewService()
	if err := content.LoadFiles(config.AppConfig.BannerPath, config.AppConfig.MenuPath); err != nil {
		log.Fatal("content:", err)
	}

	deps := &api.Deps{
		Catalog: catalog,
		Carts:   cartService.NewSessionStore(),
		Content: content,
	}

	e := echo.New()
	api.ApplyRoutes(e, deps)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("Vitrine GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
