package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "PENDING"
	JobStatusQueued    JobStatus = "QUEUED"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusFailed    JobStatus = "FAILED"
	JobStatusCanceled  JobStatus = "CANCELED"
)

type ErrorCategory string

const (
	ErrorCategorySystem    ErrorCategory = "SYSTEM"
	ErrorCategoryData      ErrorCategory = "DATA"
	ErrorCategoryAlgorithm ErrorCategory = "ALGORITHM"
)

// Classification is the health bucket a job type lands in once its
// counts have been aggregated.
type Classification string

const (
	ClassificationError    Classification = "error"
	ClassificationWarning  Classification = "warning"
	ClassificationSuccess  Classification = "success"
	ClassificationInactive Classification = "inactive"
)

type JobType struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type JobTypeList []JobType

type Job struct {
	Id        uuid.UUID      `json:"id"`
	JobTypeId uuid.UUID      `json:"jobTypeId"`
	Status    JobStatus      `json:"status"`
	Category  *ErrorCategory `json:"category,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type JobTypeCreate struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Title   string `json:"title,omitempty"`
}

// StatusCount is one row of a job-type count snapshot. Category is only
// populated for FAILED rows.
type StatusCount struct {
	Status   JobStatus      `json:"status"`
	Category *ErrorCategory `json:"category,omitempty"`
	Count    int            `json:"count"`
}

// JobTypeStatus pairs a job type with its count snapshot.
type JobTypeStatus struct {
	JobType JobType       `json:"jobType"`
	Counts  []StatusCount `json:"counts"`
}

type JobTypeStatusList []JobTypeStatus

type CategoryCount struct {
	Category ErrorCategory `json:"category"`
	Count    int           `json:"count"`
}

// JobTypeSummary is the presentation-ready projection of an aggregated
// snapshot, consumed by the board UI.
type JobTypeSummary struct {
	JobType                 JobType         `json:"jobType"`
	SuccessRate             float64         `json:"successRate"`
	Classification          Classification  `json:"classification"`
	FailedCount             int             `json:"failedCount"`
	DominantFailureCategory *ErrorCategory  `json:"dominantFailureCategory,omitempty"`
	CompletedCount          int             `json:"completedCount"`
	TotalConsidered         int             `json:"totalConsidered"`
	FailureBreakdown        []CategoryCount `json:"failureBreakdown"`
	FailureCategoryLabels   []string        `json:"failureCategoryLabels"`
	CellFillToken           string          `json:"cellFillToken"`
	ActivityCount           *int            `json:"activityCount,omitempty"`
	ErrorLabel              string          `json:"errorLabel"`
	TotalLabel              string          `json:"totalLabel"`
}

type JobTypeSummaryList []JobTypeSummary

type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}
