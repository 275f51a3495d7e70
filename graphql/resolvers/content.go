package resolvers

import (
	"context"

	gqlmodels "vitrine.GO/graphql/models"
)

// Categories resolves the filter labels from the menu taxonomy.
func (r *Resolver) Categories(ctx context.Context) []string {
	return r.content.CategoryOptions()
}

// Banner resolves the active promotional banner; null when unconfigured.
func (r *Resolver) Banner(ctx context.Context) (*gqlmodels.Banner, error) {
	banner, ok := r.content.Banner()
	if !ok {
		return nil, nil
	}
	return bannerToModel(banner)
}
