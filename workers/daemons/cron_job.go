package daemons

import (
	"time"

	"github.com/enterprise220/RWA-Trade-Hub/engine"
	"github.com/enterprise220/RWA-Trade-Hub/jobs"
	"github.com/enterprise220/RWA-Trade-Hub/jobs/cron"
)

type CronJob struct {
	Running bool
	Jobs    []jobs.Job
}

func NewCronJob(app *engine.Engine) *CronJob {
	jobs := []jobs.Job{&cron.SessionAutosaveJob{App: app}}

	return &CronJob{Running: true, Jobs: jobs}
}

func (c *CronJob) Stop() {
	c.Running = false
}

func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		go c.Process(job)
	}

	for c.Running {
		time.Sleep(1 * time.Second)
	}
}

func (c *CronJob) Process(job jobs.Job) {
	for {
		if !c.Running {
			break
		}

		job.Process()
	}
}
