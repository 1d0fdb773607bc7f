package precache

import (
	"time"

	"precache-manager/feature/precache/manifest"
)

// Report describes one manifest parse and, for activations, its dispatch.
type Report struct {
	ID         string           `json:"id"`
	StartedAt  time.Time        `json:"started_at"`
	Duration   time.Duration    `json:"duration"`
	Manifest   string           `json:"manifest"`
	Entries    []manifest.Entry `json:"entries"`
	Stats      manifest.Stats   `json:"stats"`
	Dispatched bool             `json:"dispatched"`
}
