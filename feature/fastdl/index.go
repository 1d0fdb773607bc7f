package fastdl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"precache-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/singleflight"
)

// objectIndex is the set of object keys under a prefix with their sizes.
type objectIndex struct {
	objects map[string]int64
	built   time.Time
}

// indexCache holds the last listing of the bucket.
// Concurrent builds for the same prefix are collapsed into one listing.
type indexCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	indices map[string]*objectIndex
	sf      singleflight.Group
}

func newIndexCache(ttl time.Duration) *indexCache {
	return &indexCache{ttl: ttl, indices: make(map[string]*objectIndex)}
}

func (c *indexCache) get(ctx context.Context, client storage.Client, bucket, prefix string) (*objectIndex, error) {
	key := bucket + "|" + prefix

	c.mu.RLock()
	idx, ok := c.indices[key]
	c.mu.RUnlock()
	if ok && c.fresh(idx) {
		return idx, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		idx, err := listObjects(ctx, client, bucket, prefix)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.indices[key] = idx
		c.mu.Unlock()
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*objectIndex), nil
}

// invalidate drops every cached listing. Called after objects are written.
func (c *indexCache) invalidate() {
	c.mu.Lock()
	c.indices = make(map[string]*objectIndex)
	c.mu.Unlock()
}

func (c *indexCache) fresh(idx *objectIndex) bool {
	return c.ttl > 0 && time.Since(idx.built) <= c.ttl
}

func listObjects(ctx context.Context, client storage.Client, bucket, prefix string) (*objectIndex, error) {
	idx := &objectIndex{objects: make(map[string]int64), built: time.Now()}
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, obj.Err)
		}
		idx.objects[obj.Key] = obj.Size
	}
	return idx, nil
}
