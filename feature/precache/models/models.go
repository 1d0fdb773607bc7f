package models

import "time"

// Activation is one recorded level activation.
type Activation struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	StartedAt  time.Time         `gorm:"index" json:"started_at"`
	Manifest   string            `gorm:"size:255" json:"manifest"`
	Accepted   int               `json:"accepted"`
	Rejected   int               `json:"rejected"`
	Skipped    int               `json:"skipped"`
	Truncated  bool              `json:"truncated"`
	DurationMs int64             `json:"duration_ms"`
	Entries    []ActivationEntry `gorm:"foreignKey:ActivationID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
}

// TableName overrides the table name used by Activation.
func (Activation) TableName() string {
	return "precache_activations"
}

// ActivationEntry is a precached entry of an activation, in dispatch order.
type ActivationEntry struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	ActivationID string `gorm:"size:36;index" json:"-"`
	Position     int    `json:"position"`
	Path         string `gorm:"size:255" json:"path"`
	Kind         string `gorm:"size:16" json:"kind"`
}

// TableName overrides the table name used by ActivationEntry.
func (ActivationEntry) TableName() string {
	return "precache_activation_entries"
}
