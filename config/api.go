package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Catalog reads, content and cart are public; only admin paths stay behind auth
	return []string{
		"/api/products",
		"/api/products/:id",
		"/api/sizes",
		"/api/banner",
		"/api/menu",
		"/api/categories",
		"/api/cart",
		"/api/cart/items",
		"/graphql",
	}
}
