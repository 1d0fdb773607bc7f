package fastdl

// ActionType represents what the publisher does with an entry.
type ActionType string

const (
	// ActionUpload uploads an entry that is not in the bucket yet.
	ActionUpload ActionType = "upload"
	// ActionUpdate replaces an object whose content hash differs from the local file.
	ActionUpdate ActionType = "update"
	// ActionOK means the object is already up to date.
	ActionOK ActionType = "ok"
	// ActionMissingLocal means the entry could not be found under either content root.
	ActionMissingLocal ActionType = "missing_local"
)

// Action is the planned operation for a single manifest entry.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the object key in the bucket.
	Key string `json:"key"`

	// Path is the entry's relative path as written in the manifest.
	Path string `json:"path"`

	// Source is the local file the object is uploaded from.
	Source string `json:"source,omitempty"`

	// Size is the local file size in bytes.
	Size int64 `json:"size,omitempty"`

	// Hash is the xxhash64 of the local file, hex encoded.
	Hash string `json:"hash,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason,omitempty"`
}

// Pending reports whether the action transfers data.
func (a Action) Pending() bool {
	return a.Type == ActionUpload || a.Type == ActionUpdate
}

// Plan lists the actions needed to bring the bucket in line with the manifest.
type Plan struct {
	// Bucket is the target bucket.
	Bucket string `json:"bucket"`

	// Actions holds one action per entry, in manifest order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalItems is the number of entries considered.
	TotalItems int `json:"total_items"`

	// Uploads counts entries missing from the bucket.
	Uploads int `json:"uploads"`

	// Updates counts entries whose object is stale.
	Updates int `json:"updates"`

	// UpToDate counts entries that need nothing.
	UpToDate int `json:"up_to_date"`

	// MissingLocal counts entries without a local file.
	MissingLocal int `json:"missing_local"`

	// Bytes is the total size of pending transfers.
	Bytes int64 `json:"bytes"`
}

// SyncResult reports the outcome of applying a plan.
type SyncResult struct {
	// Plan is the plan that was applied.
	Plan *Plan `json:"plan"`

	// DryRun is set when no objects were written.
	DryRun bool `json:"dry_run"`

	// Uploaded counts objects written to the bucket.
	Uploaded int `json:"uploaded"`

	// Errors lists failed uploads.
	Errors []string `json:"errors,omitempty"`
}
