// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OrderTotalsReconciliationJob runs FindInconsistentOrdersQuery and logs, at warn
// level, every order whose subtotal differs from the sum of its line items or whose
// total differs from subtotal plus delivery fee. It is read-only.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(findInconsistentOrdersHandler, cfg.ReconcileSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule comes from RECONCILE_SCHEDULE, e.g. "0 */15 * * * *" for every
// fifteen minutes. An empty schedule disables the job.
package jobs
