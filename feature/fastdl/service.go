package fastdl

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sync"
	"time"

	"precache-manager/core/content"
	"precache-manager/core/storage"
	"precache-manager/feature/precache/manifest"

	"github.com/cespare/xxhash/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// HashMetadataKey is the user metadata key holding the object's content hash.
const HashMetadataKey = "Content-Hash"

// EntrySource provides the entries to publish.
type EntrySource interface {
	Entries(ctx context.Context) ([]manifest.Entry, error)
}

// Locator finds the local file backing a relative asset path.
type Locator interface {
	Locate(rel string) (content.Location, error)
}

// Service keeps the FastDL bucket in step with the precache manifest.
type Service struct {
	client  storage.Client
	bucket  string
	prefix  string
	region  string
	locator Locator
	source  EntrySource
	logger  *zap.Logger
	cache   *indexCache
	workers int
}

// NewService creates a new FastDL service.
func NewService(client storage.Client, cfg storage.Config, locator Locator, source EntrySource, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		region:  cfg.Region,
		locator: locator,
		source:  source,
		logger:  logger,
		cache:   newIndexCache(30 * time.Second),
		workers: 4,
	}
}

// Bucket returns the target bucket name.
func (s *Service) Bucket() string {
	return s.bucket
}

// CheckBucket reports whether the target bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (bool, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	return exists, nil
}

// FixBucket creates the target bucket if it does not exist.
func (s *Service) FixBucket(ctx context.Context) error {
	exists, err := s.CheckBucket(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	return nil
}

// PlanCurrent plans against the entries the next activation would precache.
func (s *Service) PlanCurrent(ctx context.Context) (*Plan, error) {
	entries, err := s.source.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest entries: %w", err)
	}
	return s.Plan(ctx, entries)
}

// Plan compares entries with the bucket. It does not write anything.
func (s *Service) Plan(ctx context.Context, entries []manifest.Entry) (*Plan, error) {
	idx, err := s.cache.get(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Bucket: s.bucket, Actions: make([]Action, 0, len(entries))}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		action, err := s.planEntry(ctx, idx, e)
		if err != nil {
			return nil, err
		}
		plan.Actions = append(plan.Actions, action)
		plan.Summary.add(action)
	}
	return plan, nil
}

func (s *Service) planEntry(ctx context.Context, idx *objectIndex, e manifest.Entry) (Action, error) {
	action := Action{Key: s.prefix + e.Path, Path: e.Path}

	loc, err := s.locator.Locate(e.Path)
	if err != nil {
		action.Type = ActionMissingLocal
		action.Reason = err.Error()
		return action, nil
	}
	if !loc.Found() {
		action.Type = ActionMissingLocal
		action.Reason = "not found under either content root"
		return action, nil
	}

	hash, size, err := hashFile(loc.Path)
	if err != nil {
		return action, err
	}
	action.Source = loc.Path
	action.Size = size
	action.Hash = hash

	if _, ok := idx.objects[action.Key]; !ok {
		action.Type = ActionUpload
		action.Reason = "missing in bucket"
		return action, nil
	}

	info, err := s.client.StatObject(ctx, s.bucket, action.Key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			action.Type = ActionUpload
			action.Reason = "missing in bucket"
			return action, nil
		}
		return action, fmt.Errorf("failed to stat %s: %w", action.Key, err)
	}

	remote := info.UserMetadata[HashMetadataKey]
	if remote != hash {
		action.Type = ActionUpdate
		action.Reason = fmt.Sprintf("hash mismatch: remote=%q local=%q", remote, hash)
		return action, nil
	}

	action.Type = ActionOK
	return action, nil
}

// Apply uploads every pending action of plan. Upload failures are collected in
// the result; only cancellation aborts the run.
func (s *Service) Apply(ctx context.Context, plan *Plan, dryRun bool) (*SyncResult, error) {
	result := &SyncResult{Plan: plan, DryRun: dryRun}
	if dryRun {
		return result, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, a := range plan.Actions {
		if !a.Pending() {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := s.upload(gctx, a)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Error("Upload failed", zap.String("key", a.Key), zap.Error(err))
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", a.Key, err))
				return nil
			}
			s.logger.Info("Uploaded", zap.String("key", a.Key), zap.String("action", string(a.Type)), zap.Int64("size", a.Size))
			result.Uploaded++
			return nil
		})
	}

	err := g.Wait()
	if result.Uploaded > 0 {
		s.cache.invalidate()
	}
	return result, err
}

// Sync plans against the current manifest and applies the plan.
func (s *Service) Sync(ctx context.Context, dryRun bool) (*SyncResult, error) {
	plan, err := s.PlanCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return s.Apply(ctx, plan, dryRun)
}

func (s *Service) upload(ctx context.Context, a Action) error {
	f, err := os.Open(a.Source)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", a.Source, err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, s.bucket, a.Key, f, a.Size, minio.PutObjectOptions{
		ContentType:  contentType(a.Path),
		UserMetadata: map[string]string{HashMetadataKey: a.Hash},
	})
	if err != nil {
		return fmt.Errorf("failed to upload: %w", err)
	}
	return nil
}

func (s *PlanSummary) add(a Action) {
	s.TotalItems++
	switch a.Type {
	case ActionUpload:
		s.Uploads++
		s.Bytes += a.Size
	case ActionUpdate:
		s.Updates++
		s.Bytes += a.Size
	case ActionOK:
		s.UpToDate++
	case ActionMissingLocal:
		s.MissingLocal++
	}
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := xxhash.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), n, nil
}

func contentType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}
