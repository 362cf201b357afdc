// Package jobs provides scheduled background tasks for the webshop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shop.
//
// # Available Jobs
//
// 1. StockMonitorJob - Runs every minute and reports products that are out of stock at every location
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAllProductsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stock monitor uses the cron expression "* * * * *" which means it runs
// every minute. Stock only changes when orders are placed, so a tighter
// schedule would add noise without information.
//
// # Error Handling
//
// The monitor logs catalog read failures and keeps running; a transient
// database error must not kill the schedule.
package jobs
