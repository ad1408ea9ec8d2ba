package status

import (
	"errors"
	"fmt"
	"math"
	"sort"

	api "github.com/jobforge/status-board/api/v1alpha1"
)

// Classification thresholds on the success rate, in percent.
const (
	errorRateCeiling   = 30.0
	warningRateCeiling = 60.0
)

var ErrMissingJobTypeName = errors.New("job type descriptor has no name")

// CategoryCount is one entry of a failure breakdown, ordered by the
// aggregator before it is handed out.
type CategoryCount struct {
	Category api.ErrorCategory
	Count    int
}

// Summary holds the derived metrics for one count snapshot.
type Summary struct {
	// SuccessRate is in [0, 100], rounded to two decimals with
	// round-half-away-from-zero. Zero when nothing was considered.
	SuccessRate             float64
	Classification          api.Classification
	FailedCount             int
	DominantFailureCategory *api.ErrorCategory
	CompletedCount          int
	TotalConsidered         int
	IsRunning               bool
	RunningCount            int
}

// TokenTable is the caller-supplied lookup of display tokens. The
// aggregator only ever selects among these values.
type TokenTable struct {
	FailureSystem    string
	FailureData      string
	FailureAlgorithm string
	Inactive         string
	Healthy          string
}

// Aggregator turns one immutable snapshot of per-status job counts into
// the derived views the board renders. It computes its summary at
// construction and never mutates afterwards; a new snapshot means a new
// Aggregator.
type Aggregator struct {
	jobType api.JobType
	counts  []api.StatusCount
	summary Summary
}

// NewAggregator builds an aggregator for the given job type and count
// snapshot. The descriptor is passed through untouched apart from the
// name check. Missing statuses are not an error, they count as zero.
func NewAggregator(jobType api.JobType, counts []api.StatusCount) (*Aggregator, error) {
	if jobType.Name == "" {
		return nil, ErrMissingJobTypeName
	}

	snapshot := make([]api.StatusCount, len(counts))
	copy(snapshot, counts)

	a := &Aggregator{jobType: jobType, counts: snapshot}
	a.summary = computeSummary(snapshot)
	return a, nil
}

func (a *Aggregator) JobType() api.JobType {
	return a.jobType
}

func (a *Aggregator) Summary() Summary {
	return a.summary
}

// Running returns the summed RUNNING count and whether any RUNNING row
// was present in the snapshot. A present row with count zero still
// reports present.
func (a *Aggregator) Running() (int, bool) {
	return a.summary.RunningCount, a.summary.IsRunning
}

// FailureBreakdown returns the per-category failure totals, descending
// by count. Categories with equal totals keep the order in which they
// were first encountered in the snapshot.
func (a *Aggregator) FailureBreakdown() []CategoryCount {
	return groupFailures(a.counts)
}

// CellFillToken selects the display token for the status cell: the
// dominant failure category wins, then inactivity, then healthy.
func (a *Aggregator) CellFillToken(tokens TokenTable) string {
	if a.summary.DominantFailureCategory != nil {
		switch *a.summary.DominantFailureCategory {
		case api.ErrorCategorySystem:
			return tokens.FailureSystem
		case api.ErrorCategoryData:
			return tokens.FailureData
		case api.ErrorCategoryAlgorithm:
			return tokens.FailureAlgorithm
		}
	}
	if a.summary.Classification == api.ClassificationInactive {
		return tokens.Inactive
	}
	return tokens.Healthy
}

func (a *Aggregator) ActivityIndicatorPresent() bool {
	return a.summary.RunningCount > 0
}

// ActivityCount returns the running count, or nil when nothing runs so
// the renderer can suppress the zero.
func (a *Aggregator) ActivityCount() *int {
	if a.summary.RunningCount > 0 {
		count := a.summary.RunningCount
		return &count
	}
	return nil
}

func (a *Aggregator) ErrorLabel() string {
	return fmt.Sprintf("Failed: %d", a.summary.FailedCount)
}

func (a *Aggregator) TotalLabel() string {
	return fmt.Sprintf("Completed: %d", a.summary.CompletedCount)
}

// FailureCategoryLabels returns the category identifiers of the failure
// breakdown in the same descending order.
func (a *Aggregator) FailureCategoryLabels() []string {
	breakdown := groupFailures(a.counts)
	labels := make([]string, 0, len(breakdown))
	for _, b := range breakdown {
		labels = append(labels, string(b.Category))
	}
	return labels
}

func computeSummary(counts []api.StatusCount) Summary {
	summary := Summary{}

	hasFailures := false
	for _, c := range counts {
		switch c.Status {
		case api.JobStatusFailed:
			hasFailures = true
			summary.FailedCount += c.Count
		case api.JobStatusCompleted:
			summary.CompletedCount += c.Count
		case api.JobStatusRunning:
			summary.IsRunning = true
			summary.RunningCount += c.Count
		}
	}

	breakdown := groupFailures(counts)
	if len(breakdown) > 0 {
		category := breakdown[0].Category
		summary.DominantFailureCategory = &category
	}

	// A job type with neither failures nor completions totals zero; it
	// is not conflated with one that has failure rows summing to zero.
	summary.TotalConsidered = summary.CompletedCount
	if hasFailures {
		summary.TotalConsidered += summary.FailedCount
	}

	if summary.TotalConsidered > 0 {
		rate := 100 - (float64(summary.FailedCount)/float64(summary.TotalConsidered))*100
		summary.SuccessRate = roundRate(rate)
	}

	summary.Classification = classify(summary.SuccessRate, summary.TotalConsidered, summary.IsRunning)
	return summary
}

// classify buckets a summary, first match wins. A job type with no
// considered work but something running is reported healthy on purpose:
// it has not failed yet, it simply has not finished anything.
func classify(successRate float64, totalConsidered int, isRunning bool) api.Classification {
	switch {
	case totalConsidered == 0 && !isRunning:
		return api.ClassificationInactive
	case totalConsidered > 0 && successRate <= errorRateCeiling:
		return api.ClassificationError
	case totalConsidered > 0 && successRate <= warningRateCeiling:
		return api.ClassificationWarning
	default:
		return api.ClassificationSuccess
	}
}

// groupFailures sums FAILED rows per category and orders the totals
// descending. The sort is stable so equal totals keep first-encounter
// order. Uncategorized FAILED rows count toward the failure total but
// carry no category to break down.
func groupFailures(counts []api.StatusCount) []CategoryCount {
	totals := make(map[api.ErrorCategory]int)
	order := make([]api.ErrorCategory, 0, 3)

	for _, c := range counts {
		if c.Status != api.JobStatusFailed || c.Category == nil {
			continue
		}
		if _, seen := totals[*c.Category]; !seen {
			order = append(order, *c.Category)
		}
		totals[*c.Category] += c.Count
	}

	breakdown := make([]CategoryCount, 0, len(order))
	for _, category := range order {
		breakdown = append(breakdown, CategoryCount{Category: category, Count: totals[category]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})
	return breakdown
}

func roundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}
