// Package jobs provides scheduled background tasks for the catering service.
//
// Jobs run on github.com/robfig/cron/v3 schedules. The parser accepts the
// six-field form with seconds as well as descriptors such as "@hourly".
//
// # Available Jobs
//
//  1. MaterialReturnJob - scans orders waiting for lent material whose return
//     deadline has passed, logs each of them and sets the
//     catering_material_returns_overdue gauge. Runs @hourly unless
//     MATERIAL_RETURN_SCAN_SCHEDULE says otherwise.
//
// # Usage
//
//	job := jobs.NewMaterialReturnJob(overdueHandler, clock.NewSystem(), m.MaterialReturnsOverdue, "@hourly", logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed scan is logged and retried at the next tick. An invalid schedule is
// reported by StartAll.
package jobs
