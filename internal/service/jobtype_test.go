package service_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/jobforge/status-board/internal/config"
	"github.com/jobforge/status-board/internal/service"
	"github.com/jobforge/status-board/internal/service/mappers"
	"github.com/jobforge/status-board/internal/store"
)

var _ = Describe("job type service", Ordered, func() {
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

	Context("create job type", func() {
		It("successfully creates a job type", func() {
			srv := service.NewJobTypeService(s)
			jobType, err := srv.CreateJobType(context.TODO(), mappers.JobTypeCreateForm{Name: "landsat8-parse", Version: "1.0.0", Title: "Landsat 8 Parse"})
			Expect(err).To(BeNil())
			Expect(jobType.Name).To(Equal("landsat8-parse"))
		})

		It("failed to create a job type -- missing name", func() {
			srv := service.NewJobTypeService(s)
			_, err := srv.CreateJobType(context.TODO(), mappers.JobTypeCreateForm{Version: "1.0.0"})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidJobType{}))
		})

		It("failed to create a job type -- duplicate", func() {
			srv := service.NewJobTypeService(s)
			_, err := srv.CreateJobType(context.TODO(), mappers.JobTypeCreateForm{Name: "landsat8-parse", Version: "1.0.0"})
			Expect(err).To(BeNil())

			_, err = srv.CreateJobType(context.TODO(), mappers.JobTypeCreateForm{Name: "landsat8-parse", Version: "1.0.0"})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrJobTypeAlreadyExists{}))
		})
	})

	Context("jobs", func() {
		It("successfully creates a job with a default status", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewJobTypeService(s)
			job, err := srv.CreateJob(context.TODO(), mappers.JobCreateForm{JobTypeID: jobTypeID})
			Expect(err).To(BeNil())
			Expect(job.Status).To(Equal("PENDING"))
		})

		It("failed to create a job -- unknown job type", func() {
			srv := service.NewJobTypeService(s)
			_, err := srv.CreateJob(context.TODO(), mappers.JobCreateForm{JobTypeID: uuid.New()})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})

		It("failed to create a job -- invalid status", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewJobTypeService(s)
			_, err := srv.CreateJob(context.TODO(), mappers.JobCreateForm{JobTypeID: jobTypeID, Status: "SLEEPING"})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidJobStatus{}))
		})

		It("requires an error category when failing a job", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewJobTypeService(s)
			job, err := srv.CreateJob(context.TODO(), mappers.JobCreateForm{JobTypeID: jobTypeID, Status: "RUNNING"})
			Expect(err).To(BeNil())

			_, err = srv.UpdateJobStatus(context.TODO(), job.ID, "FAILED", nil)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidJobStatus{}))

			category := "DATA"
			updated, err := srv.UpdateJobStatus(context.TODO(), job.ID, "FAILED", &category)
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal("FAILED"))
			Expect(*updated.ErrorCategory).To(Equal("DATA"))
		})

		It("drops the error category for non failed statuses", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewJobTypeService(s)
			job, err := srv.CreateJob(context.TODO(), mappers.JobCreateForm{JobTypeID: jobTypeID, Status: "RUNNING"})
			Expect(err).To(BeNil())

			category := "DATA"
			updated, err := srv.UpdateJobStatus(context.TODO(), job.ID, "COMPLETED", &category)
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal("COMPLETED"))
			Expect(updated.ErrorCategory).To(BeNil())
		})
	})

	Context("delete job type", func() {
		It("successfully deletes a job type", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewJobTypeService(s)
			Expect(srv.DeleteJobType(context.TODO(), jobTypeID)).To(Succeed())
		})

		It("deletes the jobs of the job type along with it", func() {
			jobTypeID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeStm, jobTypeID, "landsat8-parse", "1.0.0"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "COMPLETED"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewJobTypeService(s)
			Expect(srv.DeleteJobType(context.TODO(), jobTypeID)).To(Succeed())

			var count int
			tx = gormdb.Raw("SELECT COUNT(*) FROM jobs WHERE job_type_id = ?", jobTypeID).Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("failed to delete a job type -- not found", func() {
			srv := service.NewJobTypeService(s)
			err := srv.DeleteJobType(context.TODO(), uuid.New())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})
})
