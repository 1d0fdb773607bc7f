// Package database handles the optional activation history database.
//
// It wraps GORM to open either a MySQL server (shared by several game servers) or a
// local SQLite file. The connection is optional: when it is disabled or fails, the
// plugin still precaches and only the history endpoints are unavailable.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Activation history disabled", zap.Error(err))
//	}
package database
