// Package jobs provides scheduled background tasks for the bakery
// ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operational reporting.
//
// # Available Jobs
//
// 1. PendingOrdersJob - Runs every minute to report orders that are still
// PENDIENTE and warn about orders waiting longer than the configured
// threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(allOrdersHandler, 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The pending orders monitor logs query failures and keeps running; a
// single failed tick does not stop the schedule.
package jobs
