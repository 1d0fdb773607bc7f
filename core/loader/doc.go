// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names the feature, reports
// whether it is enabled and registers its routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager keeps the registered features in registration order. LoadAll loads
// the enabled ones and stops at the first error.
//
// Features such as 'precache' and 'fastdl' are developed and tested in isolation and
// only meet in the start command.
package loader
