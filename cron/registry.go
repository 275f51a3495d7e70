package cron

import (
	"sync"

	"vitrine.GO/core/registry"
)

// Job is a scheduled task: a cron spec plus the function to run. Args are
// only passed when a job is invoked one-off from the CLI.
type Job struct {
	Schedule string
	Run      func(...string)
}

var regMu sync.Mutex

func registered() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return make(map[string]Job)
}

// Register adds a job under a unique name. Call from init() in custom
// packages; panics once the scheduler has started.
func Register(name string, schedule string, run func(...string)) {
	regMu.Lock()
	defer regMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	jobs := registered()
	if _, exists := jobs[name]; exists {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = Job{Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job and reopens the registry (for tests).
func Unregister(name string) {
	regMu.Lock()
	defer regMu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := registered()
	delete(jobs, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Jobs returns a copy of the registered jobs; the scheduler merges them
// with the built-in table in config.CronJobs. The first call locks the
// registry.
func Jobs() map[string]Job {
	jobs := registered()
	out := make(map[string]Job, len(jobs))
	for name, job := range jobs {
		out[name] = job
	}
	if !registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	}
	return out
}
