package host

import (
	"sync"

	"go.uber.org/zap"
)

// Call is a single precache registration seen by a Recorder.
type Call struct {
	// Kind is "model", "sound" or "generic".
	Kind string `json:"kind"`
	// Path is the path passed to the engine.
	Path string `json:"path"`
}

// Recorder is an Engine that keeps every registration in memory.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	logger *zap.Logger
}

// NewRecorder creates a recording engine.
func NewRecorder(logger *zap.Logger) *Recorder {
	return &Recorder{logger: logger}
}

func (r *Recorder) PrecacheModel(path string)   { r.record("model", path) }
func (r *Recorder) PrecacheSound(path string)   { r.record("sound", path) }
func (r *Recorder) PrecacheGeneric(path string) { r.record("generic", path) }

// Calls returns the registrations in the order they were made.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset forgets all recorded registrations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) record(kind, path string) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Kind: kind, Path: path})
	r.mu.Unlock()
	r.logger.Debug("Engine precache", zap.String("kind", kind), zap.String("path", path))
}
