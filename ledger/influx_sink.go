package ledger

import (
	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/models"
)

// InfluxTradeSink mirrors every recorded trade into the "trades" measurement
// for charting. Writes are best-effort; the influx client logs and swallows
// its own failures.
type InfluxTradeSink struct{}

func (InfluxTradeSink) Write(trade models.Trade) {
	if config.InfluxDB == nil {
		return
	}

	config.InfluxDB.NewPoint(
		"trades",
		map[string]string{
			"market": trade.MarketID,
		},
		map[string]interface{}{
			"id":     trade.ID.String(),
			"price":  trade.Price.String(),
			"amount": trade.Amount.String(),
			"total":  trade.Total().String(),
			"maker":  trade.Maker,
			"taker":  trade.Taker,
		},
	)
}
