package precache

import (
	"context"
	"errors"
	"fmt"

	"precache-manager/feature/precache/models"

	"gorm.io/gorm"
)

// ErrActivationNotFound is returned when a recorded activation does not exist.
var ErrActivationNotFound = errors.New("activation not found")

// History stores activation reports.
type History struct {
	db *gorm.DB
}

// NewHistory creates a history repository on db.
func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// Migrate creates or updates the history tables.
func (h *History) Migrate() error {
	if err := h.db.AutoMigrate(&models.Activation{}, &models.ActivationEntry{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Save records a dispatched report and its entries in one transaction.
func (h *History) Save(ctx context.Context, r *Report) error {
	activation := models.Activation{
		ID:         r.ID,
		StartedAt:  r.StartedAt,
		Manifest:   r.Manifest,
		Accepted:   r.Stats.Accepted,
		Rejected:   r.Stats.Rejected(),
		Skipped:    r.Stats.Skipped,
		Truncated:  r.Stats.Truncated,
		DurationMs: r.Duration.Milliseconds(),
	}

	entries := make([]models.ActivationEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = models.ActivationEntry{
			ActivationID: r.ID,
			Position:     i + 1,
			Path:         e.Path,
			Kind:         e.Kind.String(),
		}
	}

	return h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&activation).Error; err != nil {
			return fmt.Errorf("failed to save activation: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(entries, 100).Error; err != nil {
			return fmt.Errorf("failed to save activation entries: %w", err)
		}
		return nil
	})
}

// List returns the most recent activations without their entries.
func (h *History) List(ctx context.Context, limit int) ([]models.Activation, error) {
	if limit <= 0 {
		limit = 20
	}
	var activations []models.Activation
	err := h.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&activations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activations: %w", err)
	}
	return activations, nil
}

// Get returns an activation with its entries in dispatch order.
func (h *History) Get(ctx context.Context, id string) (*models.Activation, error) {
	var activation models.Activation
	err := h.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&activation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrActivationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activation %s: %w", id, err)
	}
	return &activation, nil
}
