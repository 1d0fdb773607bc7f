// Package fastdl publishes precached content to a FastDL bucket.
//
// Clients joining a server download custom content the server precaches. The
// publisher uploads every accepted manifest entry to S3-compatible storage under
// the same relative path, so the bucket can be served as the server's download URL.
//
// Objects carry an xxhash64 of their content in the Content-Hash user metadata.
// Planning compares that hash with the local file and never writes; applying a
// plan uploads the missing and stale entries with a small worker pool.
//
// # HTTP Endpoints
//
//   - GET /fastdl/plan : Planned uploads for the current manifest.
//   - POST /fastdl/sync : Uploads pending entries (supports ?dry_run=true).
package fastdl
