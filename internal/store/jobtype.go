package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobforge/status-board/internal/store/model"
)

type JobType interface {
	List(ctx context.Context, filter *JobTypeQueryFilter, opts *JobTypeQueryOptions) (model.JobTypeList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.JobType, error)
	Create(ctx context.Context, jobType model.JobType) (*model.JobType, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InitialMigration(ctx context.Context) error
}

type JobTypeStore struct {
	db *gorm.DB
}

// Make sure we conform to JobType interface
var _ JobType = (*JobTypeStore)(nil)

func NewJobType(db *gorm.DB) JobType {
	return &JobTypeStore{db: db}
}

func (s *JobTypeStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.JobType{})
}

func (s *JobTypeStore) List(ctx context.Context, filter *JobTypeQueryFilter, opts *JobTypeQueryOptions) (model.JobTypeList, error) {
	var jobTypes model.JobTypeList
	tx := s.getDB(ctx).Model(&jobTypes)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}
	if opts != nil {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Find(&jobTypes); result.Error != nil {
		return nil, result.Error
	}
	return jobTypes, nil
}

func (s *JobTypeStore) Get(ctx context.Context, id uuid.UUID) (*model.JobType, error) {
	jobType := model.NewJobTypeFromId(id)
	result := s.getDB(ctx).First(&jobType)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return jobType, nil
}

func (s *JobTypeStore) Create(ctx context.Context, jobType model.JobType) (*model.JobType, error) {
	if jobType.ID == uuid.Nil {
		jobType.ID = uuid.New()
	}
	result := s.getDB(ctx).Create(&jobType)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &jobType, nil
}

func (s *JobTypeStore) Delete(ctx context.Context, id uuid.UUID) error {
	jobType := model.NewJobTypeFromId(id)
	result := s.getDB(ctx).Unscoped().Delete(&jobType)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (s *JobTypeStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}
