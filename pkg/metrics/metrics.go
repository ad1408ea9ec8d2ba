package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusBoard = "status_board"

	// Job metrics
	JobStatusCount = "job_status_count"

	// Labels
	jobTypeLabel   = "job_type"
	jobStatusLabel = "status"
)

var jobStatusCountLabels = []string{
	jobTypeLabel,
	jobStatusLabel,
}

/**
* Metrics definition
**/
var jobStatusCountMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: statusBoard,
		Name:      JobStatusCount,
		Help:      "metrics to record the number of jobs of a job type in each status",
	},
	jobStatusCountLabels,
)

func UpdateJobStatusCountMetric(jobType string, status string, count int) {
	labels := prometheus.Labels{
		jobTypeLabel:   jobType,
		jobStatusLabel: status,
	}
	jobStatusCountMetric.With(labels).Set(float64(count))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(jobStatusCountMetric)
}
