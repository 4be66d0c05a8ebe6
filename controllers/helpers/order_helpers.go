package helpers

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/ledger"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

type CreateOrderParams struct {
	Market  string              `json:"market" form:"market" validate:"required"`
	Side    types.OrderSide     `json:"side" form:"side" validate:"required|VaildateSide"`
	OrdType types.OrderType     `json:"ord_type" form:"ord_type" validate:"VaildateOrdType"`
	Price   decimal.NullDecimal `json:"price" form:"price" validate:"VaildatePrice"`
	Amount  decimal.Decimal     `json:"amount" form:"amount" validate:"VaildateAmount"`
	Owner   string              `json:"owner" form:"owner" validate:"required"`
}

func (p CreateOrderParams) Messages() map[string]string {
	invalid_message := "market.order.invalid_{field}"

	return validate.MS{
		"required":        invalid_message,
		"VaildateSide":    invalid_message,
		"VaildateOrdType": invalid_message,
		"VaildatePrice":   "market.order.non_positive_price",
		"VaildateAmount":  "market.order.non_positive_amount",
	}
}

func (p CreateOrderParams) VaildateSide(val types.OrderSide) bool {
	return val == types.SideBuy || val == types.SideSell
}

func (p CreateOrderParams) VaildateOrdType(OrdType types.OrderType) bool {
	switch OrdType {
	case "", types.TypeLimit:
		return p.Price.Valid
	case types.TypeMarket:
		return !p.Price.Valid
	default:
		return false
	}
}

func (p CreateOrderParams) VaildatePrice(Price decimal.NullDecimal) bool {
	if Price.Valid {
		return !Price.Decimal.IsNegative()
	}
	return true
}

func (p CreateOrderParams) VaildateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

// CheckMarketLimits validates price/amount against the market definition.
func (p CreateOrderParams) CheckMarketLimits(market config.Market, err_src *Errors) {
	if p.Price.Valid && p.Price.Decimal.IsPositive() && p.Price.Decimal.LessThan(market.MinPrice) {
		err_src.Errors = append(err_src.Errors, "market.order.price_too_small")
	}
	if p.Amount.LessThan(market.MinAmount) {
		err_src.Errors = append(err_src.Errors, "market.order.amount_too_small")
	}
}

// BuildSubmission converts the validated payload into a ledger submission.
func (p CreateOrderParams) BuildSubmission() ledger.Submission {
	ordType := p.OrdType
	if ordType == "" {
		ordType = types.TypeLimit
	}

	return ledger.Submission{
		Side:    p.Side,
		OrdType: ordType,
		Price:   p.Price.Decimal,
		Amount:  p.Amount,
		Owner:   p.Owner,
	}
}
