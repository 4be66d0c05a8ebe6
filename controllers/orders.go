package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/controllers/helpers"
	"github.com/enterprise220/RWA-Trade-Hub/engine"
	"github.com/enterprise220/RWA-Trade-Hub/ledger"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

func CreateOrder(c *fiber.Ctx) error {
	err_src := new(helpers.Errors)
	payload := new(helpers.CreateOrderParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	ledgers, err := App.Market(payload.Market)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	payload.CheckMarketLimits(ledgers.Market, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	submission := payload.BuildSubmission()

	// Market intents are priced from the live mark before anything reaches
	// the venue; an unpriceable intent never leaves the process.
	venuePrice := submission.Price
	if submission.OrdType == types.TypeMarket {
		price, known := ledgers.Orders.MarketPrice()
		if !known {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"market.order.price_unavailable"},
			})
		}
		venuePrice = price
	}

	// Hand the intent to the execution venue next; a rejected intent never
	// reaches the ledger. The venue owns matching and confirmation.
	if _, err := Submitter.Submit(c.UserContext(), submission.Side, submission.Amount, venuePrice, ledgers.Market.BaseUnit); err != nil {
		config.Logger.Errorf("orders: venue rejected submission for %s: %v", payload.Market, err)
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.order.submission_failed"},
		})
	}

	order, err := ledgers.Orders.Submit(submission)
	if err != nil {
		if errors.Is(err, ledger.ErrPriceUnavailable) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"market.order.price_unavailable"},
			})
		}
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.order.invalid"},
		})
	}

	return c.Status(201).JSON(order)
}

func CancelOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"market.order.invalid_id"},
		})
	}

	ledgers, found := findOrderMarket(id, c.Query("market"))
	if !found {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	order, err := ledgers.Orders.Cancel(id)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrOrderNotFound):
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{"record.not_found"},
			})
		case errors.Is(err, ledger.ErrOrderNotPending):
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"market.order.invalid_state"},
			})
		default:
			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}
	}

	return c.Status(200).JSON(order)
}

// findOrderMarket resolves the ledger holding an order. The market query
// param short-circuits the scan when the caller knows it.
func findOrderMarket(id uuid.UUID, marketID string) (*engine.MarketLedgers, bool) {
	if marketID != "" {
		ledgers, err := App.Market(marketID)
		if err != nil {
			return nil, false
		}
		return ledgers, true
	}

	for _, ledgers := range App.Markets() {
		if _, found := ledgers.Orders.Get(id); found {
			return ledgers, true
		}
	}
	return nil, false
}
