package host

// Engine is the subset of engine functions used for precaching.
// Registrations give no feedback; failures are the engine's concern.
type Engine interface {
	// PrecacheModel registers a model (.mdl, .spr, .bsp) with the engine.
	PrecacheModel(path string)
	// PrecacheSound registers a sound relative to the sound/ directory.
	PrecacheSound(path string)
	// PrecacheGeneric registers any other file for client download.
	PrecacheGeneric(path string)
}

// EntityList is the engine-owned entity context passed to ServerActivate.
type EntityList struct {
	// Count is the number of allocated edicts.
	Count int
	// ClientMax is the maximum number of players.
	ClientMax int
}
