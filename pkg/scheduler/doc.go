/*
Package scheduler submits tasks to a threadpool.Pool at fixed times, fixed
intervals or cron schedules.

	pool, _ := threadpool.New(4)
	defer pool.Shutdown()

	sched, _ := scheduler.New(pool)
	sched.ScheduleRepeating("heartbeat", sendHeartbeat, 30*time.Second)
	sched.ScheduleCron("nightly-report", "0 0 2 * * *", buildReport)

	sched.Start()
	defer sched.Stop()

The scheduler polls for due tasks on a short tick (50ms by default) rather
than arming one timer per task; task execution itself happens on the pool's
workers, so a slow task delays nothing but its own next submission.
*/
package scheduler
