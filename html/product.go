package html

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
	parts "vitrine.GO/html/parts"
	catalogService "vitrine.GO/service/catalog"
)

func init() {
	api.RegisterRoute(RegisterProductRoutes)
}

// RegisterProductRoutes serves the server-rendered product page at /produto/:id.
func RegisterProductRoutes(e *echo.Echo, deps *api.Deps) {
	ensureRenderer(e)
	e.GET("/produto/:id", func(c echo.Context) error {
		product, ok := deps.Catalog.GetProductByID(c.Param("id"))
		if !ok {
			return c.String(http.StatusNotFound, "Produto não encontrado")
		}

		data := map[string]interface{}{
			"Title":       product.Name + " - Vitrine",
			"Product":     product,
			"PriceText":   catalogService.FormatPrice(product.Price),
			"Sizes":       catalogService.AvailableSizes(product),
			"Images":      catalogService.ProductImages(product),
			"CriticalCSS": template.CSS(parts.GetCriticalCSSCached()),
		}
		if list := product.ListPrice(); list > product.Price {
			data["ListPriceText"] = catalogService.FormatPrice(list)
			data["DiscountPercent"] = int(catalogService.DiscountPercent(product.Price, list))
		}
		if inst := catalogService.Installments(product); inst != nil {
			data["InstallmentText"] = fmt.Sprintf("ou %dx de R$ %s", inst.Number, catalogService.FormatPrice(inst.Value))
		}
		return c.Render(http.StatusOK, "product.html", data)
	})
}
