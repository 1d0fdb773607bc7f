// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small interface the FastDL publisher
// needs. Both AWS S3 and self-hosted MinIO work as FastDL mirrors.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the FastDL bucket.
//   - ListObjects: index the published objects in one pass.
//   - StatObject: read the content hash stored with an object.
//   - PutObject: publish a file.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
