package resolvers

import (
	"vitrine.GO/service/catalog"
	"vitrine.GO/service/content"
)

// Resolver carries the service handles query resolvers work against.
// Methods live in product.go and content.go.
type Resolver struct {
	catalog *catalog.Service
	content *content.Service
}

func NewResolver(catalogSvc *catalog.Service, contentSvc *content.Service) *Resolver {
	return &Resolver{catalog: catalogSvc, content: contentSvc}
}
