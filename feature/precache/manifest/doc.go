// Package manifest parses the precache manifest into a bounded precache table.
//
// # File Format
//
// The manifest (addons/precache/precache.cfg) lists one relative asset path per line:
//
//	// custom player model
//	models/player/vip/vip.mdl
//	sound/ambience/wind.wav
//	; sprites are generic downloads
//	sprites/laser.spr
//
// Lines starting with ';', '#' or '//' and blank lines are ignored. Entries are
// classified by the three characters after their last '.': "mdl" is a model,
// "wav" is a sound, anything else is generic. Entries without a '.' are skipped.
//
// # Table
//
// Accepted entries are stored in a Table in file order, up to Capacity entries.
// Every parse starts from an empty table.
//
// # Errors
//
// Missing assets and overlong lines are logged and left out of the table; parsing
// continues. A manifest that cannot be opened yields ErrManifestUnavailable and an
// empty table.
package manifest
