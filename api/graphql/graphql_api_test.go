package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
	entity "vitrine.GO/model/entity/catalog"
	"vitrine.GO/graphql/registry"
	catalogService "vitrine.GO/service/catalog"
	contentService "vitrine.GO/service/content"
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	svc := catalogService.NewService(30)
	svc.Load([]entity.RawProduct{
		{
			ProductID:   "dress",
			ProductName: "Vestido Midi",
			Categories:  []string{"/Roupas/Vestidos/"},
			Items: []entity.RawItem{
				{
					ItemID: "dress-1",
					Name:   "Vestido Midi M",
					Images: []entity.RawImage{{ImageURL: "https://img/dress.jpg"}},
					Sellers: []entity.RawSeller{
						{CommercialOffer: entity.RawOffer{
							Price:     150,
							ListPrice: 200,
							Installments: []entity.RawInstallment{
								{Value: 50, InterestRate: 0, NumberOfInstallments: 3},
							},
						}},
					},
				},
			},
		},
	})

	e := echo.New()
	RegisterGraphQLRoutes(e, &api.Deps{Catalog: svc, Content: contentService.NewService()})
	return e
}

func execQuery(t *testing.T, e *echo.Echo, query string) map[string]interface{} {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("graphql status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data   map[string]interface{}
		Errors []struct{ Message string }
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) > 0 {
		t.Fatalf("graphql errors: %v", resp.Errors)
	}
	return resp.Data
}

func TestGraphQL_Products(t *testing.T) {
	e := testServer(t)
	data := execQuery(t, e, `query { products { products { id name price priceText sizes } hasMore currentPage } }`)

	page := data["products"].(map[string]interface{})
	if page["hasMore"] != false {
		t.Error("hasMore = true, want false")
	}
	if page["currentPage"] != float64(1) {
		t.Errorf("currentPage = %v, want 1", page["currentPage"])
	}
	products := page["products"].([]interface{})
	if len(products) != 1 {
		t.Fatalf("products len = %d, want 1", len(products))
	}
	product := products[0].(map[string]interface{})
	if product["id"] != "dress" {
		t.Errorf("id = %v, want dress", product["id"])
	}
	if product["priceText"] != "150,00" {
		t.Errorf("priceText = %v, want 150,00", product["priceText"])
	}
	sizes := product["sizes"].([]interface{})
	if len(sizes) != 1 || sizes[0] != "M" {
		t.Errorf("sizes = %v, want [M]", sizes)
	}
}

func TestGraphQL_ProductByID(t *testing.T) {
	e := testServer(t)
	data := execQuery(t, e, `query { product(id: "dress") { id listPrice installments { number value } } }`)

	product := data["product"].(map[string]interface{})
	if product["id"] != "dress" {
		t.Errorf("id = %v, want dress", product["id"])
	}
	if product["listPrice"] != float64(200) {
		t.Errorf("listPrice = %v, want 200", product["listPrice"])
	}
	installments := product["installments"].(map[string]interface{})
	if installments["number"] != float64(3) {
		t.Errorf("installments.number = %v, want 3", installments["number"])
	}
}

func TestGraphQL_ProductByID_Missing(t *testing.T) {
	e := testServer(t)
	data := execQuery(t, e, `query { product(id: "ghost") { id } }`)
	if data["product"] != nil {
		t.Errorf("product = %v, want null", data["product"])
	}
}

func TestGraphQL_Sizes(t *testing.T) {
	e := testServer(t)
	data := execQuery(t, e, `query { sizes }`)
	sizes := data["sizes"].([]interface{})
	if len(sizes) != 1 || sizes[0] != "M" {
		t.Errorf("sizes = %v, want [M]", sizes)
	}
}

func TestGraphQL_ExtensionRegistry(t *testing.T) {
	registry.Register("ping", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]string{"pong": "ok"}, nil
	})
	defer registry.Unregister("ping")

	e := testServer(t)
	data := execQuery(t, e, `query { _extension(name: "ping", args: "{}") }`)
	s, ok := data["_extension"].(string)
	if !ok {
		t.Fatalf("_extension = %T, want string", data["_extension"])
	}
	if s != `{"pong":"ok"}` {
		t.Errorf("_extension = %q, want %q", s, `{"pong":"ok"}`)
	}
}
