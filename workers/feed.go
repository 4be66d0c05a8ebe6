package workers

import (
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/pricefeed"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

const pricesCacheKey = "tradehub:prices"

// FeedWorker mirrors every published price mapping into the cache and the
// time series store so other processes can read marks without holding a
// stream connection of their own.
type FeedWorker struct {
	Running bool
	Feed    *pricefeed.Feed

	subID int
}

func NewFeedWorker(feed *pricefeed.Feed) *FeedWorker {
	return &FeedWorker{Running: true, Feed: feed}
}

func (w *FeedWorker) Start() {
	w.subID = w.Feed.Subscribe(w.Process)

	for w.Running {
		time.Sleep(1 * time.Second)
	}
}

func (w *FeedWorker) Stop() {
	w.Running = false
	w.Feed.Unsubscribe(w.subID)
}

func (w *FeedWorker) Process(prices types.PriceMapping) {
	if config.Redis != nil {
		if err := config.Redis.SetKey(pricesCacheKey, prices, redis.KeepTTL); err != nil {
			config.Logger.Errorf("feed worker: cache write failed: %v", err)
		}
	}

	if config.InfluxDB == nil {
		return
	}

	for symbol, price := range prices {
		config.InfluxDB.NewPoint(
			"prices",
			map[string]string{"symbol": symbol},
			map[string]interface{}{"price": price.String()},
		)
	}
}
