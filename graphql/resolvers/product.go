package resolvers

import (
	"context"

	gqlmodels "vitrine.GO/graphql/models"
)

// Products resolves the paginated catalog listing.
func (r *Resolver) Products(ctx context.Context, currentPage *int32) (*gqlmodels.ProductPage, error) {
	page := defaultCurrentPage(currentPage)
	result := r.catalog.GetPage(page)

	products := make([]*gqlmodels.Product, 0, len(result.Products))
	for _, p := range result.Products {
		m, err := productToModel(p)
		if err != nil {
			return nil, err
		}
		products = append(products, m)
	}

	return &gqlmodels.ProductPage{
		Products:    products,
		HasMore:     result.HasMore,
		CurrentPage: int32(page),
	}, nil
}

// Product resolves a single product; unknown ids resolve to null.
func (r *Resolver) Product(ctx context.Context, id string) (*gqlmodels.Product, error) {
	p, ok := r.catalog.GetProductByID(id)
	if !ok {
		return nil, nil
	}
	return productToModel(p)
}

// Sizes resolves the ordered size union over the catalog.
func (r *Resolver) Sizes(ctx context.Context) []string {
	sizes := r.catalog.AllSizes()
	out := make([]string, len(sizes))
	for i, s := range sizes {
		out[i] = string(s)
	}
	return out
}
