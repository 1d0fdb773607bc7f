package manifest

import (
	"fmt"
	"strings"
)

// Kind selects the engine precache primitive used for an entry.
type Kind uint8

const (
	// KindGeneric entries are registered with PrecacheGeneric.
	KindGeneric Kind = iota
	// KindModel entries are registered with PrecacheModel.
	KindModel
	// KindSound entries are registered with PrecacheSound.
	KindSound
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindSound:
		return "sound"
	default:
		return "generic"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "model":
		*k = KindModel
	case "sound":
		*k = KindSound
	case "generic":
		*k = KindGeneric
	default:
		return fmt.Errorf("unknown precache kind %q", text)
	}
	return nil
}

// Entry is a single accepted manifest line.
type Entry struct {
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
}

// Classify returns the kind of a manifest path. ok is false when the path has no '.'.
// Only the three bytes after the last '.' are compared; shorter extensions are generic.
func Classify(path string) (kind Kind, ok bool) {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 {
		return KindGeneric, false
	}

	ext := path[dot+1:]
	if len(ext) < 3 {
		return KindGeneric, true
	}

	switch {
	case strings.EqualFold(ext[:3], "mdl"):
		return KindModel, true
	case strings.EqualFold(ext[:3], "wav"):
		return KindSound, true
	default:
		return KindGeneric, true
	}
}
