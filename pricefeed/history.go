package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/models"
)

const (
	defaultInterval = "1d"
	defaultLimit    = 100
)

// FetchHistoricalSeries performs a one-shot klines query against the REST
// provider and returns candles ascending by time. Provider failures are
// logged and reported as an empty series, never as an error.
func (f *Feed) FetchHistoricalSeries(ctx context.Context, symbol, interval string, limit int) []models.Candle {
	if interval == "" {
		interval = defaultInterval
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	timeout := f.config.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=%s&limit=%d",
		f.config.RestURL, url.QueryEscape(symbol), url.QueryEscape(interval), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		config.Logger.Errorf("pricefeed: building klines request: %v", err)
		return nil
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		config.Logger.Errorf("pricefeed: klines request for %s failed: %v", symbol, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		config.Logger.Errorf("pricefeed: klines request for %s returned %d", symbol, resp.StatusCode)
		return nil
	}

	// Each kline row is a mixed-type array:
	// [openTimeMs, "open", "high", "low", "close", "volume", ...]
	var rows [][]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		config.Logger.Errorf("pricefeed: decoding klines for %s: %v", symbol, err)
		return nil
	}

	candles := make([]models.Candle, 0, len(rows))
	for _, row := range rows {
		candle, err := parseKline(row)
		if err != nil {
			config.Logger.Errorf("pricefeed: skipping kline row for %s: %v", symbol, err)
			continue
		}
		candles = append(candles, candle)
	}

	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Time < candles[j].Time
	})

	return candles
}

func parseKline(row []json.RawMessage) (models.Candle, error) {
	if len(row) < 5 {
		return models.Candle{}, fmt.Errorf("short row: %d fields", len(row))
	}

	var openTimeMs int64
	if err := json.Unmarshal(row[0], &openTimeMs); err != nil {
		return models.Candle{}, err
	}

	values := make([]decimal.Decimal, 4)
	for i := 0; i < 4; i++ {
		var raw string
		if err := json.Unmarshal(row[i+1], &raw); err != nil {
			return models.Candle{}, err
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return models.Candle{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		values[i] = value
	}

	return models.Candle{
		Time:  openTimeMs / int64(time.Second/time.Millisecond),
		Open:  values[0],
		High:  values[1],
		Low:   values[2],
		Close: values[3],
	}, nil
}
