package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/jobforge/status-board/api/v1alpha1"
	"github.com/jobforge/status-board/internal/service/mappers"
	"github.com/jobforge/status-board/internal/store"
	"github.com/jobforge/status-board/internal/store/model"
)

type JobTypeService struct {
	store store.Store
}

func NewJobTypeService(store store.Store) *JobTypeService {
	return &JobTypeService{store: store}
}

func (s *JobTypeService) ListJobTypes(ctx context.Context) (model.JobTypeList, error) {
	return s.store.JobType().List(ctx, nil, store.NewJobTypeQueryOptions().WithSortOrder(store.SortByName))
}

func (s *JobTypeService) GetJobType(ctx context.Context, id uuid.UUID) (*model.JobType, error) {
	jobType, err := s.store.JobType().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobTypeNotFound(id)
		}
		return nil, err
	}
	return jobType, nil
}

func (s *JobTypeService) CreateJobType(ctx context.Context, form mappers.JobTypeCreateForm) (*model.JobType, error) {
	if form.Name == "" {
		return nil, NewErrInvalidJobType("name is required")
	}
	if form.Version == "" {
		return nil, NewErrInvalidJobType("version is required")
	}

	jobType, err := s.store.JobType().Create(ctx, form.ToJobType())
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrJobTypeAlreadyExists(form.Name, form.Version)
		}
		return nil, err
	}

	zap.S().Named("jobtype_service").Infow("job type created", "id", jobType.ID, "name", jobType.Name, "version", jobType.Version)
	return jobType, nil
}

// DeleteJobType removes a job type together with its jobs, in one
// transaction.
func (s *JobTypeService) DeleteJobType(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetJobType(ctx, id); err != nil {
		return err
	}

	ctx, err := s.store.NewTransactionContext(ctx)
	if err != nil {
		return err
	}

	if err := s.store.Job().DeleteByJobType(ctx, id); err != nil {
		_, _ = store.Rollback(ctx)
		return err
	}
	if err := s.store.JobType().Delete(ctx, id); err != nil {
		_, _ = store.Rollback(ctx)
		return err
	}

	_, err = store.Commit(ctx)
	return err
}

// CreateJob records a new job of the given type so its status shows up
// in the next count snapshot.
func (s *JobTypeService) CreateJob(ctx context.Context, form mappers.JobCreateForm) (*model.Job, error) {
	if _, err := s.GetJobType(ctx, form.JobTypeID); err != nil {
		return nil, err
	}

	if form.Status == "" {
		form.Status = string(api.JobStatusPending)
	}
	if !validJobStatus(form.Status) {
		return nil, NewErrInvalidJobStatus(form.Status)
	}

	return s.store.Job().Create(ctx, form.ToJob())
}

// UpdateJobStatus moves a job to a new status. The error category is
// required for FAILED and rejected for everything else.
func (s *JobTypeService) UpdateJobStatus(ctx context.Context, id uuid.UUID, status string, errorCategory *string) (*model.Job, error) {
	if !validJobStatus(status) {
		return nil, NewErrInvalidJobStatus(status)
	}
	if status == string(api.JobStatusFailed) {
		if errorCategory == nil || !validErrorCategory(*errorCategory) {
			category := ""
			if errorCategory != nil {
				category = *errorCategory
			}
			return nil, NewErrInvalidErrorCategory(category)
		}
	} else {
		errorCategory = nil
	}

	job, err := s.store.Job().UpdateStatus(ctx, id, status, errorCategory)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, err
	}
	return job, nil
}

func validJobStatus(status string) bool {
	switch api.JobStatus(status) {
	case api.JobStatusPending, api.JobStatusQueued, api.JobStatusRunning,
		api.JobStatusCompleted, api.JobStatusFailed, api.JobStatusCanceled:
		return true
	default:
		return false
	}
}

func validErrorCategory(category string) bool {
	switch api.ErrorCategory(category) {
	case api.ErrorCategorySystem, api.ErrorCategoryData, api.ErrorCategoryAlgorithm:
		return true
	default:
		return false
	}
}
