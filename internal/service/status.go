package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	api "github.com/jobforge/status-board/api/v1alpha1"
	"github.com/jobforge/status-board/internal/status"
	"github.com/jobforge/status-board/internal/store"
	"github.com/jobforge/status-board/internal/store/model"
	"github.com/jobforge/status-board/pkg/metrics"
)

// StatusService is the data-fetch side of the board: it assembles count
// snapshots from the store and feeds them through the aggregation.
type StatusService struct {
	store store.Store
}

func NewStatusService(store store.Store) *StatusService {
	return &StatusService{store: store}
}

// GetJobTypeStatus aggregates the current count snapshot of one job type.
func (s *StatusService) GetJobTypeStatus(ctx context.Context, id uuid.UUID) (*status.Aggregator, error) {
	jobType, err := s.store.JobType().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobTypeNotFound(id)
		}
		return nil, err
	}

	counts, err := s.store.Job().StatusCounts(ctx, jobType.ID)
	if err != nil {
		return nil, err
	}

	aggregator, err := status.NewAggregator(jobType.ToApiResource(), countsToApi(counts))
	if err != nil {
		return nil, err
	}

	recordStatusMetrics(jobType.Name, counts)
	return aggregator, nil
}

// ListStatuses aggregates every job type on the board, in name order.
// Job types whose snapshot cannot produce an aggregator are skipped.
func (s *StatusService) ListStatuses(ctx context.Context) ([]*status.Aggregator, error) {
	jobTypes, err := s.store.JobType().List(ctx, nil, store.NewJobTypeQueryOptions().WithSortOrder(store.SortByName))
	if err != nil {
		return nil, err
	}

	statuses := make([]api.JobTypeStatus, 0, len(jobTypes))
	for _, jobType := range jobTypes {
		counts, err := s.store.Job().StatusCounts(ctx, jobType.ID)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, api.JobTypeStatus{
			JobType: jobType.ToApiResource(),
			Counts:  countsToApi(counts),
		})
		recordStatusMetrics(jobType.Name, counts)
	}

	return status.AggregateAll(statuses), nil
}

func countsToApi(counts []model.JobStatusCount) []api.StatusCount {
	apiCounts := make([]api.StatusCount, len(counts))
	for i, c := range counts {
		apiCounts[i] = c.ToApiResource()
	}
	return apiCounts
}

func recordStatusMetrics(jobTypeName string, counts []model.JobStatusCount) {
	for _, c := range counts {
		metrics.UpdateJobStatusCountMetric(jobTypeName, c.Status, c.Count)
	}
}
