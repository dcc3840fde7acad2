// Package dv360 is a typed client for Display & Video 360 built on the
// generated google.golang.org/api/displayvideo/v3 service.
//
// It covers exactly what the feed sync needs: get, list, create, update, pause,
// archive and delete native creatives; get and update line items; upload media.
// Resource ids stay decimal strings on this side of the package and are
// converted to the int64 fields of the generated types at the call boundary.
//
// # Partial updates
//
// Every mutation is a PATCH carrying an explicit updateMask naming only the
// top-level fields it changes (displayName, assets, entityStatus, creativeIds).
// UpdateCreative strips server-generated /simgad content references before
// sending, since the API rejects them when echoed back. UpdateLineItem always
// sends creativeIds, as [] when the list is empty.
//
// # Errors
//
// A *googleapi.Error becomes an *UpstreamError carrying the call name, status
// and API message. UpdateLineItem also fails on a 200 response whose body
// embeds an error object; a wrapping RoundTripper catches those before the
// generated decoder drops them.
//
// # Authentication
//
// The client does no token handling. Pass an *http.Client from oauth2.NewClient
// so the bearer token is attached per request.
package dv360
