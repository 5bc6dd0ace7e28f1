// Package jobs provides scheduled background tasks for the configurator.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. OrderEventDispatchJob - every five seconds by default, publishes stored
// order events and sends the confirmation emails
// 2. OutboxPurgeJob - daily at 03:00 by default, deletes dispatched events
// past their retention period
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&dispatchHandler, &purgeHandler, jobs.Config{}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs never return errors. Failures are logged and the work is retried
// on the next tick, since undispatched events stay in the outbox.
package jobs
