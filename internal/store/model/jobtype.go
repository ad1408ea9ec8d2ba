package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	api "github.com/jobforge/status-board/api/v1alpha1"
)

type JobType struct {
	ID        uuid.UUID `gorm:"primaryKey;"`
	Name      string    `gorm:"uniqueIndex:job_types_name_version;not null"`
	Version   string    `gorm:"uniqueIndex:job_types_name_version;not null"`
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Jobs      []Job `gorm:"constraint:OnDelete:CASCADE;"`
}

type JobTypeList []JobType

func NewJobTypeFromId(id uuid.UUID) *JobType {
	return &JobType{ID: id}
}

func (jt JobType) String() string {
	val, _ := json.Marshal(jt)
	return string(val)
}

func (jt JobType) ToApiResource() api.JobType {
	return api.JobType{
		Id:        jt.ID,
		Name:      jt.Name,
		Version:   jt.Version,
		Title:     jt.Title,
		CreatedAt: jt.CreatedAt,
		UpdatedAt: jt.UpdatedAt,
	}
}

func (jtl JobTypeList) ToApiResource() api.JobTypeList {
	jobTypes := make([]api.JobType, len(jtl))
	for i, jobType := range jtl {
		jobTypes[i] = jobType.ToApiResource()
	}
	return jobTypes
}
