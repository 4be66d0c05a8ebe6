package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

type OrderLedgerTestSuite struct {
	suite.Suite
}

func (s *OrderLedgerTestSuite) SetupSuite() {
	config.NewLoggerService()
}

func d(value string) decimal.Decimal {
	result, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return result
}

func limit(side types.OrderSide, price, amount string) Submission {
	return Submission{
		Side:   side,
		Price:  d(price),
		Amount: d(amount),
		Owner:  "trader",
	}
}

func (s *OrderLedgerTestSuite) TestSubmitAssignsIdentityAndTotal() {
	book := NewOrderLedger("BTC/USD")

	order, err := book.Submit(limit(types.SideBuy, "100.1", "3"))
	s.NoError(err)

	s.NotEqual(uuid.Nil, order.ID)
	s.Equal("BTC/USD", order.MarketID)
	s.Equal(types.StatePending, order.State)
	s.Equal(types.TypeLimit, order.OrdType)
	s.Equal("300.3", order.Total.String())
	s.False(order.CreatedAt.IsZero())
}

func (s *OrderLedgerTestSuite) TestSubmitRejections() {
	book := NewOrderLedger("BTC/USD")

	_, err := book.Submit(Submission{Side: "hold", Price: d("1"), Amount: d("1")})
	s.ErrorIs(err, ErrInvalidSide)

	_, err = book.Submit(limit(types.SideBuy, "100", "0"))
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = book.Submit(limit(types.SideBuy, "100", "-2"))
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = book.Submit(limit(types.SideSell, "-1", "1"))
	s.ErrorIs(err, ErrInvalidPrice)

	s.Equal(0, book.Pending())
}

func (s *OrderLedgerTestSuite) TestMarketOrderPricing() {
	book := NewOrderLedger("BTC/USD")

	_, err := book.Submit(Submission{
		Side:    types.SideBuy,
		OrdType: types.TypeMarket,
		Amount:  d("2"),
	})
	s.ErrorIs(err, ErrPriceUnavailable)

	book.SetMarketPrice(d("50000"))

	order, err := book.Submit(Submission{
		Side:    types.SideBuy,
		OrdType: types.TypeMarket,
		Amount:  d("2"),
	})
	s.NoError(err)
	s.Equal("50000", order.Price.String())
	s.Equal("100000", order.Total.String())
}

func (s *OrderLedgerTestSuite) TestViewSorting() {
	book := NewOrderLedger("BTC/USD")

	for _, price := range []string{"100", "101", "99"} {
		_, err := book.Submit(limit(types.SideBuy, price, "1"))
		s.NoError(err)
	}
	for _, price := range []string{"105", "103", "104"} {
		_, err := book.Submit(limit(types.SideSell, price, "1"))
		s.NoError(err)
	}

	bids, asks := book.View()

	s.Len(bids, 3)
	s.Equal("101", bids[0].Price.String())
	s.Equal("100", bids[1].Price.String())
	s.Equal("99", bids[2].Price.String())

	s.Len(asks, 3)
	s.Equal("103", asks[0].Price.String())
	s.Equal("104", asks[1].Price.String())
	s.Equal("105", asks[2].Price.String())
}

func (s *OrderLedgerTestSuite) TestEqualPriceRanksEarlierFirst() {
	now := time.Now()

	first := &orderKey{Price: d("100"), CreatedAt: now, ID: uuid.New()}
	second := &orderKey{Price: d("100"), CreatedAt: now.Add(time.Millisecond), ID: uuid.New()}

	s.Negative(askComparator(first, second))
	s.Positive(askComparator(second, first))
	s.Negative(bidComparator(first, second))
	s.Positive(bidComparator(second, first))

	// identical timestamps stay distinct through the id
	twin := &orderKey{Price: d("100"), CreatedAt: now, ID: uuid.New()}
	s.NotEqual(0, askComparator(first, twin))
}

func (s *OrderLedgerTestSuite) TestCancelRemovesFromView() {
	book := NewOrderLedger("BTC/USD")

	keep, err := book.Submit(limit(types.SideBuy, "100", "1"))
	s.NoError(err)
	drop, err := book.Submit(limit(types.SideBuy, "101", "1"))
	s.NoError(err)

	cancelled, err := book.Cancel(drop.ID)
	s.NoError(err)
	s.Equal(types.StateCancelled, cancelled.State)

	bids, _ := book.View()
	s.Len(bids, 1)
	s.Equal(keep.ID, bids[0].ID)

	// the record survives with terminal state
	stored, found := book.Get(drop.ID)
	s.True(found)
	s.Equal(types.StateCancelled, stored.State)
}

func (s *OrderLedgerTestSuite) TestCancelRejections() {
	book := NewOrderLedger("BTC/USD")

	_, err := book.Cancel(uuid.New())
	s.ErrorIs(err, ErrOrderNotFound)

	order, err := book.Submit(limit(types.SideSell, "100", "1"))
	s.NoError(err)

	_, err = book.Cancel(order.ID)
	s.NoError(err)

	_, err = book.Cancel(order.ID)
	s.ErrorIs(err, ErrOrderNotPending)
}

func (s *OrderLedgerTestSuite) TestFill() {
	book := NewOrderLedger("BTC/USD")

	order, err := book.Submit(limit(types.SideSell, "100", "1"))
	s.NoError(err)

	filled, err := book.Fill(order.ID)
	s.NoError(err)
	s.Equal(types.StateFilled, filled.State)
	s.Equal(0, book.Pending())

	_, err = book.Cancel(order.ID)
	s.ErrorIs(err, ErrOrderNotPending)
}

func (s *OrderLedgerTestSuite) TestSpread() {
	book := NewOrderLedger("BTC/USD")

	_, present := book.Spread()
	s.False(present)

	_, err := book.Submit(limit(types.SideBuy, "99", "1"))
	s.NoError(err)

	_, present = book.Spread()
	s.False(present)

	_, err = book.Submit(limit(types.SideSell, "101", "1"))
	s.NoError(err)

	spread, present := book.Spread()
	s.True(present)
	s.Equal("2", spread.String())
}

func (s *OrderLedgerTestSuite) TestSpreadAllowsCrossedBook() {
	book := NewOrderLedger("BTC/USD")

	_, err := book.Submit(limit(types.SideBuy, "105", "1"))
	s.NoError(err)
	_, err = book.Submit(limit(types.SideSell, "100", "1"))
	s.NoError(err)

	spread, present := book.Spread()
	s.True(present)
	s.Equal("-5", spread.String())
}

func (s *OrderLedgerTestSuite) TestViewIsACopy() {
	book := NewOrderLedger("BTC/USD")

	order, err := book.Submit(limit(types.SideBuy, "100", "1"))
	s.NoError(err)

	bids, _ := book.View()
	bids[0].State = types.StateCancelled

	stored, found := book.Get(order.ID)
	s.True(found)
	s.Equal(types.StatePending, stored.State)
}

func TestOrderLedger(t *testing.T) {
	suite.Run(t, new(OrderLedgerTestSuite))
}
