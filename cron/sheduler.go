package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"vitrine.GO/config"
)

// StartCron schedules the built-in jobs from config.CronJobs plus every
// job registered through Register, then starts the scheduler.
func StartCron() *cron.Cron {
	c := cron.New()

	for name, job := range config.CronJobs {
		run := job.Job
		if _, err := c.AddFunc(job.Schedule, func() { run() }); err != nil {
			log.Fatalf("Failed to schedule job %s: %v", name, err)
		}
		log.Printf("Scheduled %s (%s)", name, job.Schedule)
	}
	for name, job := range Jobs() {
		run := job.Run
		if _, err := c.AddFunc(job.Schedule, func() { run() }); err != nil {
			log.Fatalf("Failed to schedule job %s: %v", name, err)
		}
		log.Printf("Scheduled %s (%s)", name, job.Schedule)
	}

	c.Start()
	return c
}
