package service_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/jobforge/status-board/api/v1alpha1"
	"github.com/jobforge/status-board/internal/config"
	"github.com/jobforge/status-board/internal/service"
	"github.com/jobforge/status-board/internal/store"
)

const (
	insertJobTypeStm   = "INSERT INTO job_types (id, name, version) VALUES ('%s', '%s', '%s');"
	insertJobStm       = "INSERT INTO jobs (id, job_type_id, status) VALUES ('%s', '%s', '%s');"
	insertFailedJobStm = "INSERT INTO jobs (id, job_type_id, status, error_category) VALUES ('%s', '%s', 'FAILED', '%s');"
)

var _ = Describe("status service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM jobs;")
		gormdb.Exec("DELETE FROM job_types;")
	})

	Context("get job type status", func() {
		It("aggregates the count snapshot of one job type", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())

			for i := 0; i < 4; i++ {
				tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "COMPLETED"))
				Expect(tx.Error).To(BeNil())
			}
			tx = gormdb.Exec(fmt.Sprintf(insertFailedJobStm, uuid.NewString(), jobTypeID, "ALGORITHM"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewStatusService(s)
			aggregator, err := srv.GetJobTypeStatus(context.TODO(), jobTypeID)
			Expect(err).To(BeNil())

			summary := aggregator.Summary()
			Expect(summary.TotalConsidered).To(Equal(5))
			Expect(summary.FailedCount).To(Equal(1))
			Expect(summary.CompletedCount).To(Equal(4))
			Expect(summary.SuccessRate).To(Equal(80.0))
			Expect(summary.Classification).To(Equal(api.ClassificationSuccess))
			Expect(*summary.DominantFailureCategory).To(Equal(api.ErrorCategoryAlgorithm))
		})

		It("classifies a job type without jobs as inactive", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewStatusService(s)
			aggregator, err := srv.GetJobTypeStatus(context.TODO(), jobTypeID)
			Expect(err).To(BeNil())
			Expect(aggregator.Summary().Classification).To(Equal(api.ClassificationInactive))
		})

		It("classifies a job type with only running jobs as success", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "RUNNING"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewStatusService(s)
			aggregator, err := srv.GetJobTypeStatus(context.TODO(), jobTypeID)
			Expect(err).To(BeNil())

			summary := aggregator.Summary()
			Expect(summary.Classification).To(Equal(api.ClassificationSuccess))
			Expect(summary.IsRunning).To(BeTrue())
			Expect(summary.RunningCount).To(Equal(1))
		})

		It("failed to get status -- job type not found", func() {
			srv := service.NewStatusService(s)
			_, err := srv.GetJobTypeStatus(context.TODO(), uuid.New())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("list statuses", func() {
		It("aggregates every job type in name order", func() {
			firstID := uuid.New()
			secondID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, firstID, "worldview-tiler", "0.3.1"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobTypeStm, secondID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())

			tx = gormdb.Exec(fmt.Sprintf(insertFailedJobStm, uuid.NewString(), firstID, "SYSTEM"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewStatusService(s)
			aggregators, err := srv.ListStatuses(context.TODO())
			Expect(err).To(BeNil())
			Expect(aggregators).To(HaveLen(2))
			Expect(aggregators[0].JobType().Name).To(Equal("landsat8-parse"))
			Expect(aggregators[1].JobType().Name).To(Equal("worldview-tiler"))
			Expect(aggregators[1].Summary().Classification).To(Equal(api.ClassificationError))
		})

		It("returns an empty list when there are no job types", func() {
			srv := service.NewStatusService(s)
			aggregators, err := srv.ListStatuses(context.TODO())
			Expect(err).To(BeNil())
			Expect(aggregators).To(BeEmpty())
		})
	})
})
