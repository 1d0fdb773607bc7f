// Package config provides configuration management for the precache manager.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file and an optional config.yaml.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (host, port, API key)
//   - Game: game directory, fallback content directory, manifest location
//   - Storage: FastDL S3/MinIO credentials, bucket and key prefix
//   - Log: logging level, format and output
//   - Database: activation history driver and connection details
//
// Defaults come from the `default` struct tags of each section. Environment
// variables use the SECTION_KEY form, e.g. GAME_GAME_DIR or LOG_LEVEL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Game.GameDir)
package config
