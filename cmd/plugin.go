package cmd

import (
	"fmt"
	"strings"

	"precache-manager/core/host"
	"precache-manager/feature/precache"

	"github.com/spf13/cobra"
)

var pluginVersion int

// pluginCmd runs the entity API negotiation and reports its outcome.
var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Negotiate the entity API and list implemented hooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		var table host.FunctionTable
		version := pluginVersion
		ok := precache.Plugin(a.precache).GetEntityAPI2(&table, &version)

		fmt.Println("\n=== Entity API ===")
		fmt.Printf("Requested: %d\n", pluginVersion)
		fmt.Printf("Plugin: %d\n", host.InterfaceVersion)
		if !ok {
			fmt.Println("Status: version mismatch")
			if pluginVersion > version {
				fmt.Println("The plugin is out of date.")
			} else {
				fmt.Println("The engine is out of date.")
			}
			return fmt.Errorf("interface version mismatch: requested %d, plugin %d", pluginVersion, version)
		}

		fmt.Println("Status: ok")
		fmt.Printf("Hooks: %s\n", strings.Join(table.Implemented(), ", "))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pluginCmd)
	pluginCmd.Flags().IntVar(&pluginVersion, "version", host.InterfaceVersion, "Interface version requested by the engine")
}
