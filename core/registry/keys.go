package registry

// Core keys for GlobalRegistry.
const (
	// Extension registries (cmd, cron, api, graphql) — stored in GlobalRegistry
	KeyRegistryCmd     = "registry:cmd"
	KeyRegistryCron    = "registry:cron"
	KeyRegistryAPI     = "registry:api"
	KeyRegistryGraphQL = "registry:graphql"
	KeyRegistryRoutes  = "registry:routes"
)
