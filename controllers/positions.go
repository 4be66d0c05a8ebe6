package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/controllers/entities"
	"github.com/enterprise220/RWA-Trade-Hub/controllers/helpers"
	"github.com/enterprise220/RWA-Trade-Hub/controllers/queries"
	"github.com/enterprise220/RWA-Trade-Hub/risk"
)

// GetPositions returns the account's open positions enriched with derived
// PnL and liquidation price against the live price mapping. Positions with
// no known mark price come back with a null valuation instead of failing the
// whole response.
func GetPositions(c *fiber.Ctx) error {
	err_src := new(helpers.Errors)
	params := new(queries.PositionsQuery)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	positions, err := Positions.Positions(c.UserContext(), params.Account)
	if err != nil {
		config.Logger.Errorf("positions: provider failed for %s: %v", params.Account, err)
		return c.Status(502).JSON(helpers.Errors{
			Errors: []string{"market.positions.provider_unavailable"},
		})
	}

	prices := App.Prices()
	positions_json := make([]entities.PositionEntity, 0, len(positions))

	for _, position := range positions {
		position := position
		entity := entities.PositionEntity{Position: position}

		valuation, err := risk.Evaluate(&position, prices)
		switch {
		case err == nil:
			entity.Valuation = &valuation
		case errors.Is(err, risk.ErrPriceUnavailable):
			// no mark price yet; the client renders it as unavailable
		default:
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"market.positions.invalid_parameters"},
			})
		}

		positions_json = append(positions_json, entity)
	}

	return c.Status(200).JSON(positions_json)
}
