package precache

import (
	"context"
	"errors"
	"sync"
	"time"

	"precache-manager/core/content"
	"precache-manager/core/host"
	"precache-manager/feature/precache/manifest"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service parses the manifest and dispatches precache requests to the engine.
type Service struct {
	resolver *content.Resolver
	parser   *manifest.Parser
	engine   host.Engine
	history  *History
	logger   *zap.Logger

	// mu serialises activations; the engine never activates concurrently.
	mu   sync.Mutex
	sf   singleflight.Group
	last *Report
}

// NewService creates the precache service. history may be nil.
func NewService(resolver *content.Resolver, engine host.Engine, history *History, logger *zap.Logger) *Service {
	return &Service{
		resolver: resolver,
		parser:   manifest.NewParser(resolver, logger),
		engine:   engine,
		history:  history,
		logger:   logger,
	}
}

// Activate re-reads the manifest into a fresh table and precaches every entry in order.
// It always returns host.ResultHandled: the engine keeps running its own precache.
func (s *Service) Activate(ctx context.Context, edicts host.EntityList) (*Report, host.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := s.parse()

	s.logger.Info("Precaching items", zap.Int("count", len(report.Entries)))
	for i, e := range report.Entries {
		s.logger.Info("Precaching item",
			zap.Int("index", i+1),
			zap.String("path", e.Path),
			zap.Stringer("kind", e.Kind),
		)
		switch e.Kind {
		case manifest.KindModel:
			s.engine.PrecacheModel(e.Path)
		case manifest.KindSound:
			s.engine.PrecacheSound(e.Path)
		default:
			s.engine.PrecacheGeneric(e.Path)
		}
	}

	report.Dispatched = true
	report.Duration = time.Since(report.StartedAt)
	s.last = report

	if s.history != nil {
		if err := s.history.Save(ctx, report); err != nil {
			s.logger.Warn("Failed to record activation", zap.String("id", report.ID), zap.Error(err))
		}
	}

	return report, host.ResultHandled
}

// ActivateShared runs an activation on behalf of API callers. Callers arriving
// while an activation is in flight share its report instead of queueing another.
func (s *Service) ActivateShared(ctx context.Context) *Report {
	v, _, _ := s.sf.Do("activate", func() (any, error) {
		report, _ := s.Activate(ctx, host.EntityList{})
		return report, nil
	})
	return v.(*Report)
}

// ServerActivate is the engine hook installed in the plugin's function table.
func (s *Service) ServerActivate(edicts host.EntityList) host.Result {
	_, result := s.Activate(context.Background(), edicts)
	return result
}

// Check parses the manifest without dispatching or recording anything.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report := s.parse()
	report.Duration = time.Since(report.StartedAt)
	return report, nil
}

// Entries returns the entries the next activation would precache.
func (s *Service) Entries(ctx context.Context) ([]manifest.Entry, error) {
	report, err := s.Check(ctx)
	if err != nil {
		return nil, err
	}
	return report.Entries, nil
}

// Last returns the report of the most recent activation, or nil.
func (s *Service) Last() *Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// History returns the history repository, or nil when history is disabled.
func (s *Service) History() *History {
	return s.history
}

// parse builds a report from a freshly parsed table. Read failures are logged
// and leave the report with whatever was accepted before them.
func (s *Service) parse() *Report {
	report := &Report{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}

	path, err := s.resolver.ManifestPath()
	if err != nil {
		s.logger.Error("Could not open manifest", zap.Error(err))
		report.Entries = []manifest.Entry{}
		return report
	}
	report.Manifest = path

	table := manifest.NewTable()
	stats, err := s.parser.Load(path, table)
	if err != nil && !errors.Is(err, manifest.ErrManifestUnavailable) {
		s.logger.Error("Manifest read failed", zap.String("path", path), zap.Error(err))
	}

	report.Entries = table.Entries()
	report.Stats = stats
	return report
}

// Plugin builds the engine-facing plugin. Only ServerActivate is implemented.
func Plugin(s *Service) *host.Plugin {
	return host.NewPlugin(host.FunctionTable{
		ServerActivate: host.Implement(s.ServerActivate),
	})
}
