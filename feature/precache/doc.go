// Package precache implements the level-activation precache pipeline.
//
// On every activation the service builds a fresh precache table, parses the
// manifest into it (see package manifest) and registers each entry with the engine
// using the primitive matching its kind. Nothing survives between activations
// except the last report and, when a database is configured, the history.
//
// # Engine Integration
//
// Plugin exposes the service to the engine as a function table in which only
// ServerActivate is implemented. The hook returns host.ResultHandled so the engine
// continues with its own precache work.
//
// # HTTP Endpoints
//
//   - GET /precache : Last activation report.
//   - POST /precache/activate : Runs an activation against the recording engine.
//   - GET /precache/check : Parses the manifest without precaching.
//   - GET /precache/history : Recorded activations (supports ?limit=).
//   - GET /precache/history/:id : One recorded activation with its entries.
package precache
