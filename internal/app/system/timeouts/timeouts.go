// Package timeouts centralizes context timeouts for handler operations.
//
// Guidelines:
//   - Ping: health checks
//   - Short: single-document reads
//   - Medium: paginated/filtered list queries, simple writes
//   - Long: dashboard aggregation, deletes with cascade or reference checks
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document reads.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and simple writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for aggregation and multi-collection writes.
func Long() time.Duration { return long }
