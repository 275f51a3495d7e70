package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
	entity "vitrine.GO/model/entity/catalog"
	cartService "vitrine.GO/service/cart"
	catalogService "vitrine.GO/service/catalog"
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	svc := catalogService.NewService(30)
	svc.Load([]entity.RawProduct{
		{
			ProductID:   "dress",
			ProductName: "Vestido Longo",
			Items: []entity.RawItem{
				{
					ItemID: "dress-1",
					Name:   "Vestido Longo M",
					Sellers: []entity.RawSeller{
						{CommercialOffer: entity.RawOffer{Price: 129.9}},
					},
				},
			},
		},
	})

	e := echo.New()
	g := e.Group("/api")
	RegisterCartRoutes(g, &api.Deps{Catalog: svc, Carts: cartService.NewSessionStore()})
	return e
}

func do(t *testing.T, e *echo.Echo, method, url, session, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("%s %s decode: %v", method, url, err)
		}
	}
	return rec.Code, resp
}

func startSession(t *testing.T, e *echo.Echo) string {
	t.Helper()
	code, resp := do(t, e, http.MethodPost, "/api/cart", "", "")
	if code != http.StatusCreated {
		t.Fatalf("POST /api/cart status = %d, want 201", code)
	}
	id, _ := resp["sessionId"].(string)
	if id == "" {
		t.Fatal("POST /api/cart returned no sessionId")
	}
	return id
}

func TestCartAPI_NoSession(t *testing.T) {
	e := testServer(t)
	for _, tc := range []struct{ method, url string }{
		{http.MethodGet, "/api/cart"},
		{http.MethodDelete, "/api/cart"},
		{http.MethodPost, "/api/cart/items"},
		{http.MethodPut, "/api/cart/items"},
		{http.MethodDelete, "/api/cart/items"},
	} {
		code, resp := do(t, e, tc.method, tc.url, "", "")
		if code != http.StatusConflict {
			t.Errorf("%s %s without session status = %d, want 409", tc.method, tc.url, code)
		}
		if resp["error"] == nil {
			t.Errorf("%s %s want error message", tc.method, tc.url)
		}
	}
}

func TestCartAPI_UnknownSession(t *testing.T) {
	e := testServer(t)
	code, _ := do(t, e, http.MethodGet, "/api/cart", "deadbeef", "")
	if code != http.StatusConflict {
		t.Errorf("unknown session status = %d, want 409", code)
	}
}

func TestCartAPI_AddIncrementsSameLine(t *testing.T) {
	e := testServer(t)
	session := startSession(t, e)

	body := `{"productId":"dress","size":"M"}`
	do(t, e, http.MethodPost, "/api/cart/items", session, body)
	code, resp := do(t, e, http.MethodPost, "/api/cart/items", session, body)
	if code != http.StatusOK {
		t.Fatalf("add status = %d, want 200", code)
	}

	items := resp["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("items len = %d, want 1", len(items))
	}
	line := items[0].(map[string]interface{})
	if line["quantity"] != float64(2) {
		t.Errorf("quantity = %v, want 2", line["quantity"])
	}
	if resp["itemsCount"] != float64(2) {
		t.Errorf("itemsCount = %v, want 2", resp["itemsCount"])
	}
	if resp["total"] != 259.8 {
		t.Errorf("total = %v, want 259.8", resp["total"])
	}
	if resp["totalText"] != "259,80" {
		t.Errorf("totalText = %v, want 259,80", resp["totalText"])
	}
}

func TestCartAPI_AddUnknownProduct(t *testing.T) {
	e := testServer(t)
	session := startSession(t, e)

	code, _ := do(t, e, http.MethodPost, "/api/cart/items", session, `{"productId":"ghost","size":"M"}`)
	if code != http.StatusNotFound {
		t.Errorf("unknown product status = %d, want 404", code)
	}
}

func TestCartAPI_UpdateToZeroRemoves(t *testing.T) {
	e := testServer(t)
	session := startSession(t, e)

	do(t, e, http.MethodPost, "/api/cart/items", session, `{"productId":"dress","size":"M"}`)
	code, resp := do(t, e, http.MethodPut, "/api/cart/items", session, `{"productId":"dress","size":"M","quantity":0}`)
	if code != http.StatusOK {
		t.Fatalf("update status = %d, want 200", code)
	}
	if items := resp["items"].([]interface{}); len(items) != 0 {
		t.Errorf("items len = %d, want 0 after quantity 0", len(items))
	}
}

func TestCartAPI_RemoveLine(t *testing.T) {
	e := testServer(t)
	session := startSession(t, e)

	do(t, e, http.MethodPost, "/api/cart/items", session, `{"productId":"dress","size":"M"}`)
	code, resp := do(t, e, http.MethodDelete, "/api/cart/items", session, `{"productId":"dress","size":"M"}`)
	if code != http.StatusOK {
		t.Fatalf("remove status = %d, want 200", code)
	}
	if resp["itemsCount"] != float64(0) {
		t.Errorf("itemsCount = %v, want 0", resp["itemsCount"])
	}
}

func TestCartAPI_EndSession(t *testing.T) {
	e := testServer(t)
	session := startSession(t, e)

	code, _ := do(t, e, http.MethodDelete, "/api/cart", session, "")
	if code != http.StatusNoContent {
		t.Fatalf("end session status = %d, want 204", code)
	}
	code, _ = do(t, e, http.MethodGet, "/api/cart", session, "")
	if code != http.StatusConflict {
		t.Errorf("get after end status = %d, want 409", code)
	}
}
