package html

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
	parts "vitrine.GO/html/parts"
	entity "vitrine.GO/model/entity/catalog"
	catalogService "vitrine.GO/service/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewRenderer parses the embedded storefront templates.
func NewRenderer() *Template {
	return &Template{
		Templates: template.Must(template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")),
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

func ensureRenderer(e *echo.Echo) {
	if e.Renderer == nil {
		e.Renderer = NewRenderer()
	}
}

func init() {
	api.RegisterRoute(RegisterListingRoutes)
}

// productCard is the listing view of a product.
type productCard struct {
	ID            string
	Name          string
	PriceText     string
	ListPriceText string
	HasDiscount   bool
	ImageURL      string
}

func cardFor(p *entity.Product) productCard {
	card := productCard{
		ID:        p.ID,
		Name:      p.Name,
		PriceText: catalogService.FormatPrice(p.Price),
	}
	if list := p.ListPrice(); list > p.Price {
		card.ListPriceText = catalogService.FormatPrice(list)
		card.HasDiscount = true
	}
	if images := catalogService.ProductImages(p); len(images) > 0 {
		card.ImageURL = images[0].ImageURL
	}
	return card
}

// RegisterListingRoutes serves the server-rendered storefront listing at /.
func RegisterListingRoutes(e *echo.Echo, deps *api.Deps) {
	ensureRenderer(e)
	e.GET("/", func(c echo.Context) error {
		page := 1
		if p := c.QueryParam("pagina"); p != "" {
			if n, err := strconv.Atoi(p); err == nil && n > 0 {
				page = n
			}
		}

		result := deps.Catalog.GetPage(page)
		cards := make([]productCard, 0, len(result.Products))
		for _, p := range result.Products {
			cards = append(cards, cardFor(p))
		}

		data := map[string]interface{}{
			"Title":       "Vitrine",
			"Products":    cards,
			"Page":        page,
			"HasMore":     result.HasMore,
			"CriticalCSS": template.CSS(parts.GetCriticalCSSCached()),
		}
		if deps.Content != nil {
			if banner, ok := deps.Content.Banner(); ok {
				data["Banner"] = banner
			}
		}
		return c.Render(http.StatusOK, "listing.html", data)
	})
}
