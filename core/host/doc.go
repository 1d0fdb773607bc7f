// Package host defines the boundary between the precache plugin and the game engine.
//
// The engine loads plugins and asks each one for a table of entity-API callbacks.
// A plugin only fills in the hooks it cares about; every other slot stays absent.
//
// # Negotiation
//
// GetEntityAPI2 is the single handshake. The caller passes the table to fill and the
// interface version it was built against. On a version mismatch the plugin reports
// its own version back and the table is left untouched.
//
// # Engine Primitives
//
// The Engine interface exposes the three precache registrations the plugin needs:
// models, sounds and generic files. Recorder is an in-process Engine used when the
// plugin runs outside a real server (CLI, HTTP API, tests).
//
// # Usage
//
//	plugin := host.NewPlugin(host.FunctionTable{
//	    ServerActivate: host.Implement(onActivate),
//	})
//
//	var table host.FunctionTable
//	version := host.InterfaceVersion
//	if !plugin.GetEntityAPI2(&table, &version) {
//	    // version now holds the plugin's interface version
//	}
package host
