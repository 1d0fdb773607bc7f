package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd parses the manifest without precaching anything.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the precache manifest",
	Long:  `Parses the manifest the next activation would read and reports accepted, skipped and rejected entries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		report, err := a.precache.Check(cmd.Context())
		if err != nil {
			return fmt.Errorf("manifest check failed: %w", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Println("\n=== Manifest Check ===")
		fmt.Printf("Manifest: %s\n", report.Manifest)
		fmt.Printf("Accepted: %d\n", report.Stats.Accepted)
		fmt.Printf("Skipped: %d\n", report.Stats.Skipped)
		fmt.Printf("Rejected: %d\n", report.Stats.Rejected())
		fmt.Printf("Truncated: %t\n", report.Stats.Truncated)
		for _, r := range report.Stats.Rejections {
			fmt.Printf("  line %d: %s (%s)\n", r.Line, r.Path, r.Reason)
		}

		a.logger.Info("Manifest check completed",
			zap.Int("accepted", report.Stats.Accepted),
			zap.Int("rejected", report.Stats.Rejected()),
			zap.Duration("execution_time", report.Duration),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("json", false, "Output the full report as JSON")
}
