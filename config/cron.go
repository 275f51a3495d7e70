package config

import (
	"vitrine.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"catalogrefreshjob": {Schedule: "0 * * * *", Job: jobs.CatalogRefreshJob},
	"cartprunejob":      {Schedule: "@every 30m", Job: jobs.CartPruneJob},
	// Add more jobs here
}
