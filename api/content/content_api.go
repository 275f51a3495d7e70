package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
)

func init() {
	api.RegisterModule(RegisterContentRoutes)
}

func RegisterContentRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// GET /api/banner — the active promotional banner, passed through as-is
	apiGroup.GET("/banner", func(c echo.Context) error {
		banner, ok := deps.Content.Banner()
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no banner configured"})
		}
		return c.JSON(http.StatusOK, banner)
	})

	// GET /api/menu — the full navigation taxonomy
	apiGroup.GET("/menu", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"menu": deps.Content.Menu()})
	})

	// GET /api/categories — filter labels derived from the taxonomy
	apiGroup.GET("/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"categories": deps.Content.CategoryOptions()})
	})
}
