package cmd

import (
	"errors"
	"fmt"

	"precache-manager/core/host"
	"precache-manager/feature/precache"

	"github.com/spf13/cobra"
)

var (
	activateEdicts  int
	activateClients int
)

// activateCmd runs one level activation through the plugin's function table.
var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Run a level activation against the recording engine",
	Long: `Negotiates the entity API with the plugin exactly as the engine does, then
invokes the ServerActivate hook and prints every precache registration it made.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		var table host.FunctionTable
		version := host.InterfaceVersion
		if !precache.Plugin(a.precache).GetEntityAPI2(&table, &version) {
			return fmt.Errorf("entity API negotiation failed: plugin version %d", version)
		}

		serverActivate, ok := table.ServerActivate.Get()
		if !ok {
			return errors.New("plugin does not implement ServerActivate")
		}

		result := serverActivate(host.EntityList{Count: activateEdicts, ClientMax: activateClients})
		report := a.precache.Last()

		fmt.Println("\n=== Activation ===")
		fmt.Printf("ID: %s\n", report.ID)
		fmt.Printf("Manifest: %s\n", report.Manifest)
		fmt.Printf("Result: %s\n", result)
		fmt.Printf("Accepted: %d\n", report.Stats.Accepted)
		fmt.Printf("Rejected: %d\n", report.Stats.Rejected())
		fmt.Printf("Skipped: %d\n", report.Stats.Skipped)
		fmt.Printf("Truncated: %t\n", report.Stats.Truncated)
		fmt.Printf("Duration: %s\n", report.Duration)

		calls := a.engine.Calls()
		if len(calls) > 0 {
			fmt.Println("\n=== Engine Calls ===")
			for i, c := range calls {
				fmt.Printf("%4d  %-8s %s\n", i+1, c.Kind, c.Path)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(activateCmd)
	activateCmd.Flags().IntVar(&activateEdicts, "edicts", 0, "Entity count passed to ServerActivate")
	activateCmd.Flags().IntVar(&activateClients, "max-clients", 32, "Client limit passed to ServerActivate")
}
