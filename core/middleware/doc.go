// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for the feed and logo endpoints.
//   - rayid: a per-request id, echoed in the X-Ray-ID header and attached
//     to request logs through logger.WithRayID.
package middleware
