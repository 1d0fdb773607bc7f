// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation for the management endpoints.
//   - RayID: a unique request ID (RayID) for every incoming request, stored in the
//     request locals and echoed in the response headers for tracing.
//
// RayID must be registered first so every later log line can carry the ID.
package middleware
