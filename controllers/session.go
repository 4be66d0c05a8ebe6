package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enterprise220/RWA-Trade-Hub/controllers/helpers"
	"github.com/enterprise220/RWA-Trade-Hub/controllers/queries"
	"github.com/enterprise220/RWA-Trade-Hub/snapshot"
)

const defaultSessionName = "default"

func GetSession(c *fiber.Ctx) error {
	params := new(queries.SessionQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}
	if params.Name == "" {
		params.Name = defaultSessionName
	}

	document := App.LoadSession(params.Name)
	// Always answer with a resolved market so a fresh session renders.
	document[snapshot.KeySelectedMarket] = document.SelectedMarket()

	return c.Status(200).JSON(document)
}

// PutSession persists the whitelisted session subset. Saving is best-effort
// by design, so this endpoint cannot fail on storage errors.
func PutSession(c *fiber.Ctx) error {
	err_src := new(helpers.Errors)
	payload := new(queries.SessionPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	if _, err := App.Market(payload.SelectedMarket); err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	name := payload.Name
	if name == "" {
		name = defaultSessionName
	}

	App.SaveSession(name, payload.SelectedMarket)

	return c.Status(200).JSON(App.LoadSession(name))
}
