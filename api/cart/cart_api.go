package cart

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"vitrine.GO/api"
	cartService "vitrine.GO/service/cart"
	catalogService "vitrine.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// SessionHeader carries the cart session id on every cart request.
const SessionHeader = "X-Cart-Session"

type lineItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func RegisterCartRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/cart")

	// POST /api/cart — start a cart session
	g.POST("", func(c echo.Context) error {
		id := deps.Carts.NewSession()
		return c.JSON(http.StatusCreated, echo.Map{"sessionId": id})
	})

	// GET /api/cart — current items and derived totals
	g.GET("", func(c echo.Context) error {
		cart, ok := sessionCart(c, deps)
		if !ok {
			return nil
		}
		return c.JSON(http.StatusOK, cartView(cart))
	})

	// DELETE /api/cart — end the session, dropping the cart
	g.DELETE("", func(c echo.Context) error {
		id := c.Request().Header.Get(SessionHeader)
		if id == "" {
			return noSession(c)
		}
		deps.Carts.End(id)
		return c.NoContent(http.StatusNoContent)
	})

	// POST /api/cart/items {productId, size} — add one unit
	g.POST("/items", func(c echo.Context) error {
		cart, ok := sessionCart(c, deps)
		if !ok {
			return nil
		}
		var body lineItemRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		product, found := deps.Catalog.GetProductByID(body.ProductID)
		if !found {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		cart.AddItem(product, body.Size)
		return c.JSON(http.StatusOK, cartView(cart))
	})

	// PUT /api/cart/items {productId, size, quantity} — set quantity
	// (quantity < 1 removes the line)
	g.PUT("/items", func(c echo.Context) error {
		cart, ok := sessionCart(c, deps)
		if !ok {
			return nil
		}
		var body lineItemRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cart.UpdateQuantity(body.ProductID, body.Size, body.Quantity)
		return c.JSON(http.StatusOK, cartView(cart))
	})

	// DELETE /api/cart/items {productId, size} — remove a line
	g.DELETE("/items", func(c echo.Context) error {
		cart, ok := sessionCart(c, deps)
		if !ok {
			return nil
		}
		var body lineItemRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cart.RemoveItem(body.ProductID, body.Size)
		return c.JSON(http.StatusOK, cartView(cart))
	})
}

// sessionCart resolves the session cart or writes the error response and
// returns false.
func sessionCart(c echo.Context, deps *api.Deps) (*cartService.Cart, bool) {
	id := c.Request().Header.Get(SessionHeader)
	if id == "" {
		_ = noSession(c)
		return nil, false
	}
	cart, err := deps.Carts.Get(id)
	if err != nil {
		if errors.Is(err, cartService.ErrNoSession) {
			_ = noSession(c)
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return nil, false
	}
	return cart, true
}

// Using the cart without an initialized session is a client configuration
// error, surfaced as 409 rather than 404 to distinguish it from missing
// resources.
func noSession(c echo.Context) error {
	return c.JSON(http.StatusConflict, echo.Map{
		"error": "cart session not initialized: create one with POST /api/cart and send " + SessionHeader,
	})
}

func cartView(cart *cartService.Cart) echo.Map {
	total := cart.Total()
	return echo.Map{
		"items":      cart.Items(),
		"total":      total,
		"totalText":  catalogService.FormatPrice(total),
		"itemsCount": cart.ItemsCount(),
	}
}
