// Package custom shows every extension point: GraphQL resolver, CLI
// command, cron job and HTTP route. Registered only when the package is
// imported (see cli.go).
package custom

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"vitrine.GO/api"
	"vitrine.GO/cmd"
	"vitrine.GO/cron"
	gqlregistry "vitrine.GO/graphql/registry"
)

func init() {
	// GraphQL extension: query { _extension(name: "ping") }
	gqlregistry.Register("ping", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]string{"pong": "ok"}, nil
	})

	// CLI command: vitrine custom:hello
	cmd.Register(&cobra.Command{
		Use:   "custom:hello",
		Short: "Custom command example",
		Run: func(c *cobra.Command, args []string) {
			fmt.Println("Hello from the vitrine CLI")
		},
	})

	// Cron job, runnable one-off with cron:start --job customheartbeat
	cron.Register("customheartbeat", "@every 1m", func(args ...string) {
		fmt.Println("Custom cron: heartbeat", args)
	})

	// HTTP route on the root server (outside /api, no auth)
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}
