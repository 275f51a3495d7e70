package cart

import (
	"sync"

	entity "vitrine.GO/model/entity/catalog"
)

// LineItem is one (product, size) entry in a cart with its quantity.
type LineItem struct {
	Product  *entity.Product `json:"product"`
	Size     string          `json:"size"`
	Quantity int             `json:"quantity"`
}

// Cart holds the line items of one session. Mutations keep insertion
// order: an existing line is updated in place, new lines append at the
// end. Totals are derived on every read, never cached.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of an existing (product, size) line or
// appends a new line with quantity 1.
func (c *Cart) AddItem(product *entity.Product, size string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == product.ID && c.items[i].Size == size {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{Product: product, Size: size, Quantity: 1})
}

// RemoveItem deletes the matching line. Absent lines are a silent no-op.
func (c *Cart) RemoveItem(productID, size string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID, size)
}

func (c *Cart) removeLocked(productID, size string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID && c.items[i].Size == size {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the matching line. A quantity below
// 1 removes the line instead of storing a non-positive quantity. Updating
// an absent line is a silent no-op.
func (c *Cart) UpdateQuantity(productID, size string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity < 1 {
		c.removeLocked(productID, size)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID && c.items[i].Size == size {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of line price × quantity, recomputed on every call.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemsCount is the sum of quantities, recomputed on every call.
func (c *Cart) ItemsCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}
