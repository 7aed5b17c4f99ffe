// Package aggregation folds a patient's full measurement history into a
// latest-known-value snapshot per metric and derives the health form's
// completion status from it.
package aggregation

import (
	"fmt"

	"healthform-server/internal/extraction"
	"healthform-server/internal/models"
)

// Snapshot maps each tracked metric to its most recent measurement. Metrics
// with no history are absent from the map, never present with a zero value.
type Snapshot map[models.Metric]models.Measurement

// Engine selects latest-per-metric values over a measurement history.
type Engine struct {
	tracked []models.Metric
}

// NewEngine creates an engine for the given tracked metrics; with none
// given, it tracks the full catalog. Tracking a metric the catalog has no
// rule for is a configuration error and fails here rather than degrading
// into a silently incomplete snapshot.
func NewEngine(catalog *extraction.Catalog, tracked ...models.Metric) (*Engine, error) {
	if len(tracked) == 0 {
		tracked = catalog.Metrics()
	}
	for _, m := range tracked {
		if !catalog.Tracks(m) {
			return nil, fmt.Errorf("tracked metric %q has no rule in the pattern catalog", m)
		}
	}
	return &Engine{tracked: tracked}, nil
}

// Tracked returns the tracked metrics in catalog order.
func (e *Engine) Tracked() []models.Metric {
	return e.tracked
}

// LatestByMetric recomputes the snapshot from the complete history on every
// call; it never patches a previous snapshot, so a backfilled older report
// can never incorrectly become "latest" regardless of insertion order.
//
// History must be supplied in insertion order (oldest appended first). Per
// metric, the maximal report date wins; measurements without a report date
// sort below any dated one. Among equal dates, or when every candidate is
// undated, the most recently appended measurement wins.
func (e *Engine) LatestByMetric(history []models.Measurement) Snapshot {
	snapshot := make(Snapshot, len(e.tracked))
	for _, metric := range e.tracked {
		for _, m := range history {
			if m.Metric != metric {
				continue
			}
			current, ok := snapshot[metric]
			if !ok || supersedes(m, current) {
				snapshot[metric] = m
			}
		}
	}
	return snapshot
}

// supersedes reports whether candidate replaces current as the latest value.
// Candidate is the later-appended of the two.
func supersedes(candidate, current models.Measurement) bool {
	switch {
	case candidate.ReportDate == nil:
		return current.ReportDate == nil
	case current.ReportDate == nil:
		return true
	default:
		return !candidate.ReportDate.Before(*current.ReportDate)
	}
}
