package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recorded activations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded activations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if a.history == nil {
			return errors.New("history is disabled, set DATABASE_ENABLED=true")
		}

		activations, err := a.history.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		fmt.Println("\n=== Activation History ===")
		for _, act := range activations {
			fmt.Printf("%s  %s  accepted=%d rejected=%d skipped=%d truncated=%t duration=%s\n",
				act.ID,
				act.StartedAt.Format(time.RFC3339),
				act.Accepted, act.Rejected, act.Skipped, act.Truncated,
				time.Duration(act.DurationMs)*time.Millisecond,
			)
		}
		fmt.Printf("Total: %d\n", len(activations))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of activations")
}
