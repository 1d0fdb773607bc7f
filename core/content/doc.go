// Package content resolves asset paths against the game content directories.
//
// A dedicated server keeps mod content in its game directory (e.g. /hlds/cstrike)
// and shared base content in a sibling directory (e.g. /hlds/valve). Assets listed
// in the precache manifest are looked up in that order.
//
// # Search Roots
//
//   - Primary: {GameDir}/{path}
//   - Fallback: {parent of GameDir}/{FallbackDir}/{path}
//
// An asset "exists" when the server process may read it. Files are never opened.
//
// # Path Limits
//
// The engine stores paths in fixed 255-byte buffers. Candidates that would not fit
// are reported with ErrPathTooLong rather than being shortened.
//
// # Usage
//
//	resolver := content.NewResolver(cfg.Game)
//	ok, err := resolver.Exists("models/player/vip/vip.mdl")
package content
