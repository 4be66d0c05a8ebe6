package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enterprise220/RWA-Trade-Hub/controllers"
	"github.com/enterprise220/RWA-Trade-Hub/engine"
	"github.com/enterprise220/RWA-Trade-Hub/services"
)

func SetupRouter(app *engine.Engine, submitter services.OrderSubmitter, positions services.PositionProvider) *fiber.App {
	controllers.Initialize(app, submitter, positions)

	r := fiber.New()

	r.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	r.Get("/api/v2/public/markets", controllers.GetMarkets)
	r.Get("/api/v2/public/markets/:market/depth", controllers.GetDepth)
	r.Get("/api/v2/public/markets/:market/trades", controllers.GetTrades)
	r.Get("/api/v2/public/markets/:market/k-line", controllers.GetKLine)

	r.Post("/api/v2/market/orders", controllers.CreateOrder)
	r.Post("/api/v2/market/orders/:id/cancel", controllers.CancelOrder)
	r.Get("/api/v2/market/positions", controllers.GetPositions)
	r.Get("/api/v2/market/session", controllers.GetSession)
	r.Put("/api/v2/market/session", controllers.PutSession)

	return r
}
