//go:build cli
// +build cli

// CLI entrypoint. Build with -tags cli to get the cobra CLI instead of the
// HTTP server (vitrine.go).
package main

import (
	_ "vitrine.GO/custom"

	"vitrine.GO/cmd"
	"vitrine.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
