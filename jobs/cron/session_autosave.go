package cron

import (
	"github.com/jasonlvhit/gocron"

	"github.com/enterprise220/RWA-Trade-Hub/engine"
)

// SessionAutosaveJob periodically rewrites the default session snapshot so
// the persisted feed connectivity flag tracks the live stream state.
type SessionAutosaveJob struct {
	App *engine.Engine
}

func (j *SessionAutosaveJob) Process() {
	s := gocron.NewScheduler()
	s.Every(30).Seconds().Do(j.save)
	<-s.Start()
}

func (j *SessionAutosaveJob) save() {
	state := j.App.LoadSession("default")

	j.App.SaveSession("default", state.SelectedMarket())
}
