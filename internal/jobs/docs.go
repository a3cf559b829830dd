// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// with second-level schedules.
//
// # Available Jobs
//
// 1. EventRelayJob - Runs every 5 seconds and publishes a batch of outbox messages to Kafka
// 2. ProblematicOrdersJob - Runs every minute and logs a warning per order stuck in a status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayHandler, 100, problematicOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Ticks never panic or stop the schedule. Failures are logged and the next tick retries.
// A tick that is still running when the next one is due is skipped.
package jobs
