package mappers

import (
	"github.com/google/uuid"

	"github.com/jobforge/status-board/internal/store/model"
)

type JobTypeCreateForm struct {
	Name    string
	Version string
	Title   string
}

func (f JobTypeCreateForm) ToJobType() model.JobType {
	return model.JobType{
		ID:      uuid.New(),
		Name:    f.Name,
		Version: f.Version,
		Title:   f.Title,
	}
}

type JobCreateForm struct {
	JobTypeID uuid.UUID
	Status    string
}

func (f JobCreateForm) ToJob() model.Job {
	return model.Job{
		ID:        uuid.New(),
		JobTypeID: f.JobTypeID,
		Status:    f.Status,
	}
}
