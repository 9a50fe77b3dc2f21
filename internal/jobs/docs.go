// Package jobs provides scheduled background tasks for the shop backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the catalog.
//
// # Available Jobs
//
// 1. LowStockReportJob - Scans for items whose stock fell below the configured
// threshold and logs them so they can be restocked.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(itemRepo, schedule, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a seconds column, as accepted
// by cron.New(cron.WithSeconds()).
//
// # Error Handling
//
// The report job logs scan failures and keeps running; a failed scan on one
// tick must not stop future reports.
package jobs
