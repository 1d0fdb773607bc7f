package cmd

import (
	"fmt"
	"os"

	"precache-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configDir string
	gameDir   string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "precache-manager",
	Short: "Level precache plugin and management service",
	Long: `Precache Manager registers the models, sounds and generic files listed in
addons/precache/precache.cfg with the engine on every level activation.
It also checks manifests, publishes content to a FastDL bucket and keeps an activation history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug config for ISO8601 timestamps on CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing config.yaml and .env")
	RootCmd.PersistentFlags().StringVar(&gameDir, "game-dir", "", "Game directory, overrides GAME_GAME_DIR")
}
