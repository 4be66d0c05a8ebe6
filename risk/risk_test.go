package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/enterprise220/RWA-Trade-Hub/models"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

type RiskTestSuite struct {
	suite.Suite
}

func d(value string) decimal.Decimal {
	result, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return result
}

func marginLong(entry string, leverage int64, mmr string) *models.Position {
	return &models.Position{
		ID:                    "pos-1",
		Kind:                  types.KindMargin,
		Side:                  types.PositionLong,
		Asset:                 "BTCUSDT",
		Size:                  d("1"),
		EntryPrice:            d(entry),
		Leverage:              leverage,
		MaintenanceMarginRate: d(mmr),
	}
}

func (s *RiskTestSuite) TestUnrealizedPnLLong() {
	position := &models.Position{
		Kind:       types.KindSpot,
		Side:       types.PositionLong,
		Asset:      "ETHUSDT",
		Size:       d("2"),
		EntryPrice: d("100"),
	}
	prices := types.PriceMapping{"ETHUSDT": d("110")}

	pnl, err := UnrealizedPnL(position, prices)
	s.NoError(err)
	s.Equal("20", pnl.String())
}

func (s *RiskTestSuite) TestUnrealizedPnLShort() {
	position := &models.Position{
		Kind:       types.KindMargin,
		Side:       types.PositionShort,
		Asset:      "ETHUSDT",
		Size:       d("2"),
		EntryPrice: d("100"),
	}

	pnl, err := UnrealizedPnL(position, types.PriceMapping{"ETHUSDT": d("90")})
	s.NoError(err)
	s.Equal("20", pnl.String())

	pnl, err = UnrealizedPnL(position, types.PriceMapping{"ETHUSDT": d("110")})
	s.NoError(err)
	s.Equal("-20", pnl.String())
}

func (s *RiskTestSuite) TestUnrealizedPnLRequiresMarkPrice() {
	position := marginLong("50000", 5, "0.05")

	_, err := UnrealizedPnL(position, types.PriceMapping{})
	s.ErrorIs(err, ErrPriceUnavailable)

	// a zero entry in the mapping is a price, absence is not
	pnl, err := UnrealizedPnL(position, types.PriceMapping{"BTCUSDT": decimal.Zero})
	s.NoError(err)
	s.Equal("-50000", pnl.String())
}

func (s *RiskTestSuite) TestLiquidationPriceLong() {
	liquidation, err := LiquidationPrice(marginLong("50000", 5, "0.05"))
	s.NoError(err)
	s.Equal("40500", liquidation.String())
}

func (s *RiskTestSuite) TestLiquidationPriceShort() {
	position := marginLong("50000", 5, "0.05")
	position.Side = types.PositionShort

	liquidation, err := LiquidationPrice(position)
	s.NoError(err)
	s.Equal("59500", liquidation.String())
}

func (s *RiskTestSuite) TestLiquidationPriceFullLeverage() {
	liquidation, err := LiquidationPrice(marginLong("100", 1, "0"))
	s.NoError(err)
	s.Equal("0", liquidation.String())
}

func (s *RiskTestSuite) TestLiquidationPriceRejections() {
	spot := &models.Position{
		Kind:       types.KindSpot,
		Side:       types.PositionLong,
		Asset:      "BTCUSDT",
		Size:       d("1"),
		EntryPrice: d("50000"),
	}
	_, err := LiquidationPrice(spot)
	s.ErrorIs(err, ErrNotMargin)

	_, err = LiquidationPrice(marginLong("50000", 0, "0.05"))
	s.ErrorIs(err, ErrInvalidLeverage)

	_, err = LiquidationPrice(marginLong("50000", 5, "-0.01"))
	s.ErrorIs(err, ErrInvalidMaintenanceMargin)

	_, err = LiquidationPrice(marginLong("50000", 5, "1"))
	s.ErrorIs(err, ErrInvalidMaintenanceMargin)
}

func (s *RiskTestSuite) TestEvaluateMargin() {
	position := marginLong("50000", 5, "0.05")
	prices := types.PriceMapping{"BTCUSDT": d("52000")}

	valuation, err := Evaluate(position, prices)
	s.NoError(err)
	s.Equal("52000", valuation.MarkPrice.String())
	s.Equal("2000", valuation.PnL.String())
	s.NotNil(valuation.LiquidationPrice)
	s.Equal("40500", valuation.LiquidationPrice.String())
}

func (s *RiskTestSuite) TestEvaluateSpotHasNoLiquidation() {
	position := &models.Position{
		Kind:       types.KindSpot,
		Side:       types.PositionLong,
		Asset:      "ETHUSDT",
		Size:       d("3"),
		EntryPrice: d("2000"),
	}

	valuation, err := Evaluate(position, types.PriceMapping{"ETHUSDT": d("2100")})
	s.NoError(err)
	s.Equal("300", valuation.PnL.String())
	s.Nil(valuation.LiquidationPrice)
}

func (s *RiskTestSuite) TestEvaluateMissingPrice() {
	_, err := Evaluate(marginLong("50000", 5, "0.05"), types.PriceMapping{})
	s.ErrorIs(err, ErrPriceUnavailable)
}

func TestRisk(t *testing.T) {
	suite.Run(t, new(RiskTestSuite))
}
