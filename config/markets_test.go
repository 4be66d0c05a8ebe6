package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MarketsTestSuite struct {
	suite.Suite
}

func (s *MarketsTestSuite) writeMarketsFile(content string) {
	path := filepath.Join(s.T().TempDir(), "markets.yml")
	s.NoError(os.WriteFile(path, []byte(content), 0o644))
	s.T().Setenv("MARKETS_FILE", path)
}

func (s *MarketsTestSuite) TestLoadMarkets() {
	s.writeMarketsFile(`
- id: BTC/USD
  symbol: btcusd
  stream_symbol: BTCUSDT
  base_unit: btc
  quote_unit: usd
  price_precision: 2
  amount_precision: 4
  min_price: "0.01"
  min_amount: "0.0001"
  max_leverage: 10
  maintenance_margin_rate: "0.05"
`)

	s.NoError(LoadMarkets())
	s.Len(Markets, 1)

	market := Markets[0]
	s.Equal("BTC/USD", market.ID)
	s.Equal("btcusd", market.Symbol)
	s.Equal("BTCUSDT", market.StreamSymbol)
	s.Equal(int32(2), market.PricePrecision)
	s.Equal("0.01", market.MinPrice.String())
	s.Equal("0.05", market.MaintenanceMarginRate.String())
	s.Equal(int64(10), market.MaxLeverage)

	found, ok := FindMarket("BTC/USD")
	s.True(ok)
	s.Equal("btcusd", found.Symbol)

	_, ok = FindMarket("DOGE/USD")
	s.False(ok)
}

func (s *MarketsTestSuite) TestLoadMarketsRejectsEmptyFile() {
	s.writeMarketsFile("[]\n")
	s.Error(LoadMarkets())
}

func (s *MarketsTestSuite) TestLoadMarketsRejectsBadDecimal() {
	s.writeMarketsFile(`
- id: BTC/USD
  symbol: btcusd
  stream_symbol: BTCUSDT
  min_price: "abc"
  min_amount: "0.0001"
  maintenance_margin_rate: "0.05"
`)
	s.Error(LoadMarkets())
}

func (s *MarketsTestSuite) TestLoadMarketsMissingFile() {
	s.T().Setenv("MARKETS_FILE", filepath.Join(s.T().TempDir(), "nope.yml"))
	s.Error(LoadMarkets())
}

func TestMarkets(t *testing.T) {
	suite.Run(t, new(MarketsTestSuite))
}
