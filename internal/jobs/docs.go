// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs are strictly read-only: no background process mutates order state.
// Status movement happens only through explicit actor requests.
//
// # Available Jobs
//
// 1. PendingOrdersReportJob - Periodically logs per-status order counts so
// operators can watch the pending backlog without querying the console.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderStatsHandler)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
