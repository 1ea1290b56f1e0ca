package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	salesReportJob *SalesReportJob
}

// NewJobManager groups the jobs started and stopped with the application.
func NewJobManager(salesReportJob *SalesReportJob) *JobManager {
	return &JobManager{salesReportJob: salesReportJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.salesReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start sales report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.salesReportJob.Stop()
}
