// Package jobs provides scheduled background tasks for the shop.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(ordersHandler, sender, admins, maxAge, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// StaleOrderJob runs at the top of every minute and reminds the admin
// pool about orders still sitting in Placed status beyond the configured
// age. Reminders are recomputed from current order state on every tick,
// so they need no memory of past notification attempts.
package jobs
