package content

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// MaxPathLength is the engine's path buffer size in bytes, terminator included.
const MaxPathLength = 255

// ErrPathTooLong is returned when a resolved path does not fit the engine's buffers.
var ErrPathTooLong = zerr.New("path exceeds engine path length")

// Root identifies which search root an asset was found under.
type Root uint8

const (
	// RootNone means the asset exists under neither root.
	RootNone Root = iota
	// RootPrimary is the game directory.
	RootPrimary
	// RootFallback is the shared content directory.
	RootFallback
)

func (r Root) String() string {
	switch r {
	case RootPrimary:
		return "primary"
	case RootFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Location is the result of resolving a relative asset path.
type Location struct {
	// Root is the search root that matched.
	Root Root `json:"root"`
	// Path is the platform path of the matched candidate. Empty for RootNone.
	Path string `json:"path,omitempty"`
}

// Found reports whether the asset exists under one of the roots.
func (l Location) Found() bool {
	return l.Root != RootNone
}

// Resolver looks up relative asset paths in the primary and fallback roots.
type Resolver struct {
	primary  string
	fallback string
	manifest string
	readable func(string) bool
}

// NewResolver creates a resolver for the given content layout.
func NewResolver(cfg Config) *Resolver {
	gameDir := filepath.ToSlash(cfg.GameDir)
	if trimmed := strings.TrimRight(gameDir, "/"); trimmed != "" {
		gameDir = trimmed
	}

	// The fallback root replaces the last component of the game directory.
	// Without a separator the whole game directory is that component.
	parent := ""
	if i := strings.LastIndexAny(gameDir, `/\`); i >= 0 {
		parent = gameDir[:i+1]
	}

	return &Resolver{
		primary:  gameDir + "/",
		fallback: parent + cfg.FallbackDir + "/",
		manifest: cfg.Manifest,
		readable: readable,
	}
}

// Exists reports whether the asset is readable under either root.
func (r *Resolver) Exists(rel string) (bool, error) {
	loc, err := r.Locate(rel)
	if err != nil {
		return false, err
	}
	return loc.Found(), nil
}

// Locate checks the primary root, then the fallback root.
func (r *Resolver) Locate(rel string) (Location, error) {
	primary, fallback, err := r.candidates(rel)
	if err != nil {
		return Location{}, err
	}
	if r.readable(primary) {
		return Location{Root: RootPrimary, Path: primary}, nil
	}
	if r.readable(fallback) {
		return Location{Root: RootFallback, Path: fallback}, nil
	}
	return Location{Root: RootNone}, nil
}

// ManifestPath returns the platform path of the precache manifest.
func (r *Resolver) ManifestPath() (string, error) {
	return bounded(r.primary + r.manifest)
}

// GameDir returns the primary root without its trailing separator.
func (r *Resolver) GameDir() string {
	return filepath.FromSlash(strings.TrimSuffix(r.primary, "/"))
}

func (r *Resolver) candidates(rel string) (string, string, error) {
	primary, err := bounded(r.primary + rel)
	if err != nil {
		return "", "", err
	}
	fallback, err := bounded(r.fallback + rel)
	if err != nil {
		return "", "", err
	}
	return primary, fallback, nil
}

func bounded(path string) (string, error) {
	if len(path) >= MaxPathLength {
		return "", zerr.With(zerr.Wrap(ErrPathTooLong, "cannot resolve asset"), "path", path)
	}
	return filepath.FromSlash(path), nil
}
