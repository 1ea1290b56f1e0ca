// Package jobs provides scheduled background tasks of the marketplace service.
//
// Jobs run on github.com/robfig/cron/v3 schedules and live outside the core:
// they only call query handlers and log what they observe.
//
// # Available Jobs
//
// SalesReportJob runs on REPORT_CRON (default "@hourly") and logs the sales
// total of the window since its previous run together with the number of
// pending orders.
//
// # Usage
//
//	job := jobs.NewSalesReportJob(salesHandler, countsHandler, cfg.ReportCron, logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A schedule that cron cannot parse makes StartAll fail.
package jobs
