package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobforge/status-board/internal/store/model"
)

type Job interface {
	List(ctx context.Context, filter *JobQueryFilter) (model.JobList, error)
	Create(ctx context.Context, job model.Job) (*model.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, errorCategory *string) (*model.Job, error)
	DeleteByJobType(ctx context.Context, jobTypeID uuid.UUID) error
	StatusCounts(ctx context.Context, jobTypeID uuid.UUID) ([]model.JobStatusCount, error)
	InitialMigration(ctx context.Context) error
}

type JobStore struct {
	db *gorm.DB
}

// Make sure we conform to Job interface
var _ Job = (*JobStore)(nil)

func NewJob(db *gorm.DB) Job {
	return &JobStore{db: db}
}

func (s *JobStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.Job{})
}

func (s *JobStore) List(ctx context.Context, filter *JobQueryFilter) (model.JobList, error) {
	var jobs model.JobList
	tx := s.getDB(ctx).Model(&jobs)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Order("created_at").Find(&jobs); result.Error != nil {
		return nil, result.Error
	}
	return jobs, nil
}

func (s *JobStore) Create(ctx context.Context, job model.Job) (*model.Job, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	result := s.getDB(ctx).Create(&job)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &job, nil
}

func (s *JobStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string, errorCategory *string) (*model.Job, error) {
	job := model.NewJobFromId(id)
	job.Status = status
	job.ErrorCategory = errorCategory

	result := s.getDB(ctx).Model(job).Select("status", "error_category").Updates(&job)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return job, nil
}

func (s *JobStore) DeleteByJobType(ctx context.Context, jobTypeID uuid.UUID) error {
	result := s.getDB(ctx).Where("job_type_id = ?", jobTypeID).Delete(&model.Job{})
	return result.Error
}

// StatusCounts computes the per (status, category) count snapshot of a
// job type in a single group-by. This is the raw input of the status
// aggregation; absent pairs simply have no row.
func (s *JobStore) StatusCounts(ctx context.Context, jobTypeID uuid.UUID) ([]model.JobStatusCount, error) {
	var counts []model.JobStatusCount
	result := s.getDB(ctx).
		Model(&model.Job{}).
		Select("status, error_category as category, count(*) as count").
		Where("job_type_id = ?", jobTypeID).
		Group("status").
		Group("error_category").
		Order("status").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}
	return counts, nil
}

func (s *JobStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}
