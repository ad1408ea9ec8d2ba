package status

import (
	api "github.com/jobforge/status-board/api/v1alpha1"
)

// AggregateAll builds aggregators for a batch of snapshots, preserving
// input order. Entries whose descriptor cannot produce a valid
// aggregator are dropped rather than failing the batch.
func AggregateAll(statuses []api.JobTypeStatus) []*Aggregator {
	aggregators := make([]*Aggregator, 0, len(statuses))
	for _, s := range statuses {
		a, err := NewAggregator(s.JobType, s.Counts)
		if err != nil {
			continue
		}
		aggregators = append(aggregators, a)
	}
	return aggregators
}
