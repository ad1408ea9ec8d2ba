package mappers

import (
	api "github.com/jobforge/status-board/api/v1alpha1"
	"github.com/jobforge/status-board/internal/status"
	"github.com/jobforge/status-board/internal/store/model"
)

func JobTypeToApi(jt model.JobType) api.JobType {
	return jt.ToApiResource()
}

func JobTypeListToApi(jobTypes model.JobTypeList) api.JobTypeList {
	return jobTypes.ToApiResource()
}

func JobToApi(job model.Job) api.Job {
	return job.ToApiResource()
}

// AggregatorToSummary projects one aggregated snapshot into the
// presentation shape the board renders, resolving the fill token
// against the configured table.
func AggregatorToSummary(a *status.Aggregator, tokens status.TokenTable) api.JobTypeSummary {
	summary := a.Summary()
	breakdown := a.FailureBreakdown()

	apiBreakdown := make([]api.CategoryCount, len(breakdown))
	for i, b := range breakdown {
		apiBreakdown[i] = api.CategoryCount{Category: b.Category, Count: b.Count}
	}

	return api.JobTypeSummary{
		JobType:                 a.JobType(),
		SuccessRate:             summary.SuccessRate,
		Classification:          summary.Classification,
		FailedCount:             summary.FailedCount,
		DominantFailureCategory: summary.DominantFailureCategory,
		CompletedCount:          summary.CompletedCount,
		TotalConsidered:         summary.TotalConsidered,
		FailureBreakdown:        apiBreakdown,
		FailureCategoryLabels:   a.FailureCategoryLabels(),
		CellFillToken:           a.CellFillToken(tokens),
		ActivityCount:           a.ActivityCount(),
		ErrorLabel:              a.ErrorLabel(),
		TotalLabel:              a.TotalLabel(),
	}
}

func SummaryListToApi(aggregators []*status.Aggregator, tokens status.TokenTable) api.JobTypeSummaryList {
	summaries := make(api.JobTypeSummaryList, len(aggregators))
	for i, a := range aggregators {
		summaries[i] = AggregatorToSummary(a, tokens)
	}
	return summaries
}
