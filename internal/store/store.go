package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jobforge/status-board/internal/store/model"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	JobType() JobType
	Job() Job
	InitialMigration() error
	Seed() error
	Close() error
}

type DataStore struct {
	db      *gorm.DB
	jobType JobType
	job     Job
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		jobType: NewJobType(db),
		job:     NewJob(db),
		db:      db,
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) JobType() JobType {
	return s.jobType
}

func (s *DataStore) Job() Job {
	return s.job
}

func (s *DataStore) InitialMigration() error {
	ctx := context.Background()
	if err := s.JobType().InitialMigration(ctx); err != nil {
		return err
	}
	return s.Job().InitialMigration(ctx)
}

// Seed creates a default job type so a fresh deployment renders a
// non-empty board.
func (s *DataStore) Seed() error {
	ctx := context.Background()

	jobTypes, err := s.JobType().List(ctx, NewJobTypeQueryFilter().ByName("example"), nil)
	if err != nil {
		return err
	}
	if len(jobTypes) > 0 {
		return nil
	}

	_, err = s.JobType().Create(ctx, model.JobType{
		Name:    "example",
		Version: "1.0.0",
		Title:   "Example",
	})
	return err
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
