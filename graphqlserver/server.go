package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"vitrine.GO/graphql"
	gqlmodels "vitrine.GO/graphql/models"
	"vitrine.GO/graphql/registry"
	"vitrine.GO/graphql/resolvers"
	"vitrine.GO/service/catalog"
	"vitrine.GO/service/content"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	Catalog *catalog.Service
	Content *content.Service
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{catalog: r.Catalog, content: r.Content}
}

// QueryResolver implements Query fields. Delegates to resolvers package.
type QueryResolver struct {
	catalog *catalog.Service
	content *content.Service
}

// ProductsArgs matches the products query arguments (default in schema: currentPage=1).
type ProductsArgs struct {
	CurrentPage int32
}

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) (*gqlmodels.ProductPage, error) {
	res := resolvers.NewResolver(r.catalog, r.content)
	return res.Products(ctx, &args.CurrentPage)
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID string
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error) {
	res := resolvers.NewResolver(r.catalog, r.content)
	return res.Product(ctx, args.ID)
}

func (r *QueryResolver) Sizes(ctx context.Context) []string {
	res := resolvers.NewResolver(r.catalog, r.content)
	return res.Sizes(ctx)
}

func (r *QueryResolver) Categories(ctx context.Context) []string {
	res := resolvers.NewResolver(r.catalog, r.content)
	return res.Categories(ctx)
}

func (r *QueryResolver) Banner(ctx context.Context) (*gqlmodels.Banner, error) {
	res := resolvers.NewResolver(r.catalog, r.content)
	return res.Banner(ctx)
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(catalogSvc *catalog.Service, contentSvc *content.Service) (*gql.Schema, error) {
	root := &RootResolver{Catalog: catalogSvc, Content: contentSvc}
	return gql.ParseSchema(graphql.Schema(), root, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
