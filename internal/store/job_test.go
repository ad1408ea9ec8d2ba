package store_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/jobforge/status-board/internal/config"
	"github.com/jobforge/status-board/internal/store"
	"github.com/jobforge/status-board/internal/store/model"
)

const (
	insertJobStm            = "INSERT INTO jobs (id, job_type_id, status) VALUES ('%s', '%s', '%s');"
	insertFailedJobStm      = "INSERT INTO jobs (id, job_type_id, status, error_category) VALUES ('%s', '%s', 'FAILED', '%s');"
	insertJobTypeForJobsStm = "INSERT INTO job_types (id, name, version) VALUES ('%s', '%s', '%s');"
)

var _ = Describe("job store", Ordered, func() {
	var (
		s         store.Store
		gormdb    *gorm.DB
		jobTypeID uuid.UUID
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

	BeforeEach(func() {
		jobTypeID = uuid.New()
		tx := gormdb.Exec(fmt.Sprintf(insertJobTypeForJobsStm, jobTypeID, "landsat8-parse", "1.0.0"))
		Expect(tx.Error).To(BeNil())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM jobs;")
		gormdb.Exec("DELETE FROM job_types;")
	})

	Context("status counts", func() {
		It("computes one row per status and category pair", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "COMPLETED"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "COMPLETED"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertFailedJobStm, uuid.NewString(), jobTypeID, "SYSTEM"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertFailedJobStm, uuid.NewString(), jobTypeID, "SYSTEM"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertFailedJobStm, uuid.NewString(), jobTypeID, "DATA"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "RUNNING"))
			Expect(tx.Error).To(BeNil())

			counts, err := s.Job().StatusCounts(context.TODO(), jobTypeID)
			Expect(err).To(BeNil())
			Expect(counts).To(HaveLen(4))

			totals := map[string]int{}
			for _, c := range counts {
				key := c.Status
				if c.Category != nil {
					key = key + "/" + *c.Category
				}
				totals[key] = c.Count
			}
			Expect(totals).To(Equal(map[string]int{
				"COMPLETED":     2,
				"FAILED/SYSTEM": 2,
				"FAILED/DATA":   1,
				"RUNNING":       1,
			}))
		})

		It("returns no rows for a job type without jobs", func() {
			counts, err := s.Job().StatusCounts(context.TODO(), jobTypeID)
			Expect(err).To(BeNil())
			Expect(counts).To(BeEmpty())
		})

		It("does not mix counts between job types", func() {
			otherID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobTypeForJobsStm, otherID, "worldview-tiler", "0.3.1"))
			Expect(tx.Error).To(BeNil())

			tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "COMPLETED"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), otherID, "RUNNING"))
			Expect(tx.Error).To(BeNil())

			counts, err := s.Job().StatusCounts(context.TODO(), jobTypeID)
			Expect(err).To(BeNil())
			Expect(counts).To(HaveLen(1))
			Expect(counts[0].Status).To(Equal("COMPLETED"))
		})
	})

	Context("create", func() {
		It("successfully creates a job", func() {
			job, err := s.Job().Create(context.TODO(), model.Job{JobTypeID: jobTypeID, Status: "PENDING"})
			Expect(err).To(BeNil())
			Expect(job.ID).ToNot(Equal(uuid.Nil))
		})
	})

	Context("update status", func() {
		It("successfully moves a job to FAILED with a category", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, id, jobTypeID, "RUNNING"))
			Expect(tx.Error).To(BeNil())

			category := "ALGORITHM"
			job, err := s.Job().UpdateStatus(context.TODO(), id, "FAILED", &category)
			Expect(err).To(BeNil())
			Expect(job.Status).To(Equal("FAILED"))

			var status string
			tx = gormdb.Raw("SELECT status FROM jobs WHERE id = ?;", id).Scan(&status)
			Expect(tx.Error).To(BeNil())
			Expect(status).To(Equal("FAILED"))
		})

		It("failed to update status -- job not found", func() {
			_, err := s.Job().UpdateStatus(context.TODO(), uuid.New(), "COMPLETED", nil)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("list", func() {
		It("successfully list jobs filtered by status", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "RUNNING"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), jobTypeID, "COMPLETED"))
			Expect(tx.Error).To(BeNil())

			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByJobTypeID(jobTypeID).ByStatus("RUNNING"))
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].Status).To(Equal("RUNNING"))
		})
	})
})
