package config

import (
	"errors"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

var Markets []Market

// Market describes one tradable symbol. The engine keeps market definitions
// in a YAML file because nothing else in the system needs a database.
type Market struct {
	ID                    string // e.g. "BTC/USD"
	Symbol                string // url-safe id, e.g. "btcusd"
	StreamSymbol          string // e.g. "BTCUSDT", key used by the price stream
	BaseUnit              string
	QuoteUnit             string
	PricePrecision        int32
	AmountPrecision       int32
	MinPrice              decimal.Decimal
	MinAmount             decimal.Decimal
	MaxLeverage           int64
	MaintenanceMarginRate decimal.Decimal // fraction, e.g. 0.05
}

// marketYAML mirrors Market with decimals as strings; yaml.v2 has no decoder
// hook for decimal.Decimal.
type marketYAML struct {
	ID                    string `yaml:"id"`
	Symbol                string `yaml:"symbol"`
	StreamSymbol          string `yaml:"stream_symbol"`
	BaseUnit              string `yaml:"base_unit"`
	QuoteUnit             string `yaml:"quote_unit"`
	PricePrecision        int32  `yaml:"price_precision"`
	AmountPrecision       int32  `yaml:"amount_precision"`
	MinPrice              string `yaml:"min_price"`
	MinAmount             string `yaml:"min_amount"`
	MaxLeverage           int64  `yaml:"max_leverage"`
	MaintenanceMarginRate string `yaml:"maintenance_margin_rate"`
}

func LoadMarkets() error {
	path := os.Getenv("MARKETS_FILE")
	if path == "" {
		path = "config/markets.yml"
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []marketYAML
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New("config: no markets defined in " + path)
	}

	markets := make([]Market, 0, len(entries))
	for _, entry := range entries {
		minPrice, err := decimal.NewFromString(entry.MinPrice)
		if err != nil {
			return err
		}
		minAmount, err := decimal.NewFromString(entry.MinAmount)
		if err != nil {
			return err
		}
		mmr, err := decimal.NewFromString(entry.MaintenanceMarginRate)
		if err != nil {
			return err
		}

		markets = append(markets, Market{
			ID:                    entry.ID,
			Symbol:                entry.Symbol,
			StreamSymbol:          entry.StreamSymbol,
			BaseUnit:              entry.BaseUnit,
			QuoteUnit:             entry.QuoteUnit,
			PricePrecision:        entry.PricePrecision,
			AmountPrecision:       entry.AmountPrecision,
			MinPrice:              minPrice,
			MinAmount:             minAmount,
			MaxLeverage:           entry.MaxLeverage,
			MaintenanceMarginRate: mmr,
		})
	}

	Markets = markets
	return nil
}

func FindMarket(id string) (Market, bool) {
	for _, market := range Markets {
		if market.ID == id {
			return market, true
		}
	}
	return Market{}, false
}
