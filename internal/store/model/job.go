package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	api "github.com/jobforge/status-board/api/v1alpha1"
)

type Job struct {
	ID            uuid.UUID `gorm:"primaryKey;"`
	JobTypeID     uuid.UUID `gorm:"index;not null"`
	Status        string    `gorm:"index;not null"`
	ErrorCategory *string   `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type JobList []Job

func NewJobFromId(id uuid.UUID) *Job {
	return &Job{ID: id}
}

func (j Job) String() string {
	val, _ := json.Marshal(j)
	return string(val)
}

func (j Job) ToApiResource() api.Job {
	job := api.Job{
		Id:        j.ID,
		JobTypeId: j.JobTypeID,
		Status:    api.StringToJobStatus(j.Status),
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
	if j.ErrorCategory != nil {
		category := api.StringToErrorCategory(*j.ErrorCategory)
		job.Category = &category
	}
	return job
}

// JobStatusCount is one row of the group-by snapshot the Job store
// computes: how many jobs of a type sit in a (status, category) pair.
type JobStatusCount struct {
	Status   string
	Category *string
	Count    int
}

func (c JobStatusCount) ToApiResource() api.StatusCount {
	count := api.StatusCount{
		Status: api.StringToJobStatus(c.Status),
		Count:  c.Count,
	}
	if c.Category != nil {
		category := api.StringToErrorCategory(*c.Category)
		count.Category = &category
	}
	return count
}
