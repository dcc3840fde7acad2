// Package logger builds the zap logger shared by the CLI, the HTTP server and
// the reconciliation engines.
//
// Level "debug" selects zap's development settings; any other level uses the
// production settings at that level. Format "console" gives coloured, human
// readable output for terminal runs, "json" is meant for log collectors.
// Every entry carries a "service" field.
//
// Inside request handlers, WithRayID tags entries with the request's ray id so
// a feed run triggered over HTTP can be followed from request to row:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Feed run failed", zap.Error(err))
package logger
