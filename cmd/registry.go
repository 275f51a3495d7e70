package cmd

import (
	"github.com/spf13/cobra"

	"vitrine.GO/core/registry"
)

func registeredCommands() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Register queues a command for the root CLI. Call from init() in custom
// packages; panics after Apply has run.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(registeredCommands(), c))
}

// Apply attaches every queued command to the root command and locks the
// registry.
func Apply() {
	for _, c := range registeredCommands() {
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
