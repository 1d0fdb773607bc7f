package cmd

import (
	"errors"
	"fmt"

	"precache-manager/feature/fastdl"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunFlag bool
	fixFlag    bool
)

// fastdlCmd groups the FastDL publisher commands.
var fastdlCmd = &cobra.Command{
	Use:   "fastdl",
	Short: "Publish precached content to the FastDL bucket",
}

var fastdlPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show uploads needed to bring the bucket in line with the manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := fastdlService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		plan, err := svc.PlanCurrent(cmd.Context())
		if err != nil {
			return fmt.Errorf("fastdl plan failed: %w", err)
		}
		printPlan(plan)
		return nil
	},
}

var fastdlSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upload missing and stale entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := fastdlService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		result, err := svc.Sync(cmd.Context(), dryRunFlag)
		if err != nil {
			return fmt.Errorf("fastdl sync failed: %w", err)
		}
		printPlan(result.Plan)
		if result.DryRun {
			fmt.Println("\nDry run: nothing uploaded. Run without --dry-run to upload.")
			return nil
		}

		a.logger.Info("FastDL sync completed",
			zap.Int("uploaded", result.Uploaded),
			zap.Int("failed", len(result.Errors)),
		)
		if len(result.Errors) > 0 {
			return fmt.Errorf("%d uploads failed", len(result.Errors))
		}
		return nil
	},
}

var fastdlBucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Check and create the FastDL bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := fastdlService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		exists, err := svc.CheckBucket(cmd.Context())
		if err != nil {
			return err
		}
		if exists {
			a.logger.Info("Bucket is present.", zap.String("bucket", svc.Bucket()))
			return nil
		}

		a.logger.Warn("Bucket is missing", zap.String("bucket", svc.Bucket()))
		if !fixFlag {
			a.logger.Info("Run with --fix to create the bucket.")
			return nil
		}
		return svc.FixBucket(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(fastdlCmd)
	fastdlCmd.AddCommand(fastdlPlanCmd, fastdlSyncCmd, fastdlBucketCmd)

	fastdlSyncCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Plan only, do not upload")
	fastdlBucketCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket if it is missing")
}

func fastdlService() (*application, *fastdl.Service, error) {
	a, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	svc, err := a.publisher()
	if err != nil {
		return nil, nil, err
	}
	if svc == nil {
		return nil, nil, errors.New("fastdl is disabled, set STORAGE_ENABLED=true")
	}
	return a, svc, nil
}

func printPlan(plan *fastdl.Plan) {
	for _, action := range plan.Actions {
		if action.Type == fastdl.ActionOK {
			continue
		}
		fmt.Printf("%-14s %s", action.Type, action.Key)
		if action.Reason != "" {
			fmt.Printf("  (%s)", action.Reason)
		}
		fmt.Println()
	}

	fmt.Println("\n=== FastDL Plan ===")
	fmt.Printf("Bucket: %s\n", plan.Bucket)
	fmt.Printf("Total Items: %d\n", plan.Summary.TotalItems)
	fmt.Printf("Uploads: %d\n", plan.Summary.Uploads)
	fmt.Printf("Updates: %d\n", plan.Summary.Updates)
	fmt.Printf("Up To Date: %d\n", plan.Summary.UpToDate)
	fmt.Printf("Missing Local: %d\n", plan.Summary.MissingLocal)
	fmt.Printf("Bytes: %d\n", plan.Summary.Bytes)
}
