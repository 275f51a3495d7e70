package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
	entity "vitrine.GO/model/entity/catalog"
	catalogService "vitrine.GO/service/catalog"
)

func testRecord(id string, price, listPrice float64, variantName string) entity.RawProduct {
	return entity.RawProduct{
		ProductID:   id,
		ProductName: "Produto " + id,
		Categories:  []string{"/Roupas/Vestidos/"},
		Items: []entity.RawItem{
			{
				ItemID: id + "-1",
				Name:   variantName,
				Images: []entity.RawImage{{ImageURL: "https://img/" + id + ".jpg"}},
				Sellers: []entity.RawSeller{
					{CommercialOffer: entity.RawOffer{Price: price, ListPrice: listPrice}},
				},
			},
		},
	}
}

func testServer(t *testing.T, records []entity.RawProduct) *echo.Echo {
	t.Helper()
	svc := catalogService.NewService(30)
	svc.Load(records)

	e := echo.New()
	g := e.Group("/api")
	RegisterCatalogRoutes(g, &api.Deps{Catalog: svc})
	return e
}

func manyRecords(n int) []entity.RawProduct {
	records := make([]entity.RawProduct, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, testRecord(fmt.Sprintf("p%03d", i), 100+float64(i), 0, "Vestido M"))
	}
	return records
}

func getJSON(t *testing.T, e *echo.Echo, url string, wantStatus int) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("GET %s status = %d, want %d (body %s)", url, rec.Code, wantStatus, rec.Body.String())
	}
	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestProductsAPI_FirstPage(t *testing.T) {
	e := testServer(t, manyRecords(35))
	resp := getJSON(t, e, "/api/products?page=1", http.StatusOK)

	products := resp["products"].([]interface{})
	if len(products) != 30 {
		t.Errorf("page 1 len = %d, want 30", len(products))
	}
	if resp["hasMore"] != true {
		t.Error("hasMore = false, want true")
	}
	if resp["page"] != float64(1) {
		t.Errorf("page = %v, want 1", resp["page"])
	}
}

func TestProductsAPI_LastPage(t *testing.T) {
	e := testServer(t, manyRecords(35))
	resp := getJSON(t, e, "/api/products?page=2", http.StatusOK)
	products := resp["products"].([]interface{})
	if len(products) != 5 {
		t.Errorf("page 2 len = %d, want 5", len(products))
	}
	if resp["hasMore"] != false {
		t.Error("hasMore = true, want false")
	}
}

func TestProductsAPI_InvalidPage(t *testing.T) {
	e := testServer(t, manyRecords(3))
	getJSON(t, e, "/api/products?page=abc", http.StatusBadRequest)
	getJSON(t, e, "/api/products?page=0", http.StatusBadRequest)
}

func TestProductsAPI_SortAndFilter(t *testing.T) {
	records := []entity.RawProduct{
		testRecord("cheap", 10, 0, "Vestido P"),
		testRecord("pricey", 90, 0, "Vestido P"),
		testRecord("other", 50, 0, "Vestido GG"),
	}
	e := testServer(t, records)
	resp := getJSON(t, e, "/api/products?page=1&sizes=P&sort=highest-price", http.StatusOK)
	products := resp["products"].([]interface{})
	if len(products) != 2 {
		t.Fatalf("filtered len = %d, want 2", len(products))
	}
	first := products[0].(map[string]interface{})
	if first["id"] != "pricey" {
		t.Errorf("first product = %v, want pricey", first["id"])
	}
}

func TestProductsAPI_InvalidSize(t *testing.T) {
	e := testServer(t, manyRecords(3))
	resp := getJSON(t, e, "/api/products?page=1&sizes=XL", http.StatusBadRequest)
	if resp["error"] == nil {
		t.Error("want error message for invalid size")
	}
}

func TestProductByIDAPI(t *testing.T) {
	e := testServer(t, manyRecords(3))
	resp := getJSON(t, e, "/api/products/p001", http.StatusOK)
	product := resp["product"].(map[string]interface{})
	if product["id"] != "p001" {
		t.Errorf("id = %v, want p001", product["id"])
	}
	if resp["priceText"] != "101,00" {
		t.Errorf("priceText = %v, want 101,00", resp["priceText"])
	}
}

func TestProductByIDAPI_NotFound(t *testing.T) {
	e := testServer(t, manyRecords(3))
	resp := getJSON(t, e, "/api/products/ghost", http.StatusNotFound)
	if resp["error"] != "product not found" {
		t.Errorf("error = %v, want product not found", resp["error"])
	}
}

func TestSizesAPI(t *testing.T) {
	records := []entity.RawProduct{
		testRecord("a", 10, 0, "Vestido 40"),
		testRecord("b", 10, 0, "Vestido P"),
		testRecord("c", 10, 0, "Blusa P"),
	}
	e := testServer(t, records)
	resp := getJSON(t, e, "/api/sizes", http.StatusOK)
	sizes := resp["sizes"].([]interface{})
	if len(sizes) != 2 || sizes[0] != "P" || sizes[1] != "40" {
		t.Errorf("sizes = %v, want [P 40]", sizes)
	}
}

func TestResetCacheAPI(t *testing.T) {
	e := testServer(t, manyRecords(3))
	req := httptest.NewRequest(http.MethodPost, "/api/products/reset-cache", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset-cache status = %d, want 200", rec.Code)
	}
}
