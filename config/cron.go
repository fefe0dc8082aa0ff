package config

import (
	"erp.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"poexpirejob":          {Schedule: "0 2 * * *", Job: jobs.PoExpireJob},
	"dashboardsnapshotjob": {Schedule: "@every 5m", Job: jobs.DashboardSnapshotJob},
	// Add more jobs here
}
