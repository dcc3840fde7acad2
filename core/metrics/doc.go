// Package metrics records Prometheus metrics for feed runs.
//
// Registry is the injected interface: DV360 calls, processed rows, removal deletes
// and pass durations. Prometheus keeps its collectors on a private registry so that
// several instances can coexist in tests; NoOp is used when metrics are disabled.
package metrics
