package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/enterprise220/RWA-Trade-Hub/controllers/entities"
	"github.com/enterprise220/RWA-Trade-Hub/controllers/helpers"
	"github.com/enterprise220/RWA-Trade-Hub/controllers/queries"
	"github.com/enterprise220/RWA-Trade-Hub/models"
)

func GetTimestamp(c *fiber.Ctx) error {
	return c.Status(200).JSON(time.Now())
}

func GetMarkets(c *fiber.Ctx) error {
	markets_json := make([]entities.MarketEntity, 0, len(App.Markets()))

	for _, ledgers := range App.Markets() {
		market := ledgers.Market
		markets_json = append(markets_json, entities.MarketEntity{
			ID:                    market.ID,
			Symbol:                market.Symbol,
			BaseUnit:              market.BaseUnit,
			QuoteUnit:             market.QuoteUnit,
			PricePrecision:        market.PricePrecision,
			AmountPrecision:       market.AmountPrecision,
			MaxLeverage:           market.MaxLeverage,
			MaintenanceMarginRate: market.MaintenanceMarginRate.String(),
		})
	}

	return c.Status(200).JSON(markets_json)
}

func GetDepth(c *fiber.Ctx) error {
	marketID := c.Params("market")

	ledgers, err := App.Market(marketID)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	params := new(queries.DepthQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	bids, asks := ledgers.Orders.View()
	if params.Limit > 0 {
		if params.Limit < len(bids) {
			bids = bids[:params.Limit]
		}
		if params.Limit < len(asks) {
			asks = asks[:params.Limit]
		}
	}

	depth := entities.DepthEntity{
		MarketID: marketID,
		Bids:     make([]entities.BookOrder, 0, len(bids)),
		Asks:     make([]entities.BookOrder, 0, len(asks)),
	}
	for _, order := range bids {
		depth.Bids = append(depth.Bids, entities.BookOrderFromModel(order))
	}
	for _, order := range asks {
		depth.Asks = append(depth.Asks, entities.BookOrderFromModel(order))
	}

	if spread, ok := ledgers.Orders.Spread(); ok {
		rendered := spread.String()
		depth.Spread = &rendered
	}

	return c.Status(200).JSON(depth)
}

func GetTrades(c *fiber.Ctx) error {
	marketID := c.Params("market")

	ledgers, err := App.Market(marketID)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	params := new(queries.TradeFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}
	if params.Limit == 0 {
		params.Limit = 100
	}

	return c.Status(200).JSON(ledgers.Trades.Recent(params.Limit))
}

func GetKLine(c *fiber.Ctx) error {
	marketID := c.Params("market")

	ledgers, err := App.Market(marketID)
	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	params := new(queries.KLineQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	candles := App.Feed.FetchHistoricalSeries(c.UserContext(), ledgers.Market.StreamSymbol, params.Interval, params.Limit)
	if candles == nil {
		candles = make([]models.Candle, 0)
	}

	return c.Status(200).JSON(candles)
}
