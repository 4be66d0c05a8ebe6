package controllers

import (
	"github.com/enterprise220/RWA-Trade-Hub/engine"
	"github.com/enterprise220/RWA-Trade-Hub/services"
)

var (
	App       *engine.Engine
	Submitter services.OrderSubmitter
	Positions services.PositionProvider
)

// Initialize hands the controllers their collaborators. Called once from the
// router setup.
func Initialize(app *engine.Engine, submitter services.OrderSubmitter, positions services.PositionProvider) {
	App = app
	Submitter = submitter
	Positions = positions
}
