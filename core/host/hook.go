package host

// Hook is an optional callback slot. The zero value is an absent hook.
type Hook[F any] struct {
	fn  F
	set bool
}

// Implement returns a populated hook.
func Implement[F any](fn F) Hook[F] {
	return Hook[F]{fn: fn, set: true}
}

// Get returns the callback and whether the slot is populated.
func (h Hook[F]) Get() (F, bool) {
	return h.fn, h.set
}

// Implemented reports whether the slot is populated.
func (h Hook[F]) Implemented() bool {
	return h.set
}
