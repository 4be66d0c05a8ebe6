package pricefeed

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/types"
)

// Subscriber receives the complete updated price mapping after every applied
// tick, never a diff. Callbacks run synchronously on the feed goroutine.
type Subscriber func(types.PriceMapping)

type Config struct {
	StreamURL         string        // e.g. wss://stream.binance.com:9443/ws
	RestURL           string        // e.g. https://api.binance.com
	Symbols           []string      // stream symbols, e.g. BTCUSDT
	ReconnectInterval time.Duration // delay between reconnect attempts
	RequestTimeout    time.Duration // historical query timeout
}

func (c Config) reconnectInterval() time.Duration {
	if c.ReconnectInterval <= 0 {
		return 5 * time.Second
	}
	return c.ReconnectInterval
}

// Feed owns the live price mapping. It is an explicit, constructed service:
// callers hold a reference and register subscribers, nothing is process-global.
type Feed struct {
	feedMutex sync.RWMutex

	config Config
	dialer *websocket.Dialer

	prices      types.PriceMapping
	subscribers map[int]Subscriber
	nextSubID   int

	conn      *websocket.Conn
	connected bool
}

type subscribeMessage struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
	ID     int      `json:"id"`
}

type tradeTick struct {
	EventType string `json:"e"`
	Symbol    string `json:"s"`
	Price     string `json:"p"`
}

func New(cfg Config) *Feed {
	return &Feed{
		config: cfg,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		prices:      make(types.PriceMapping),
		subscribers: make(map[int]Subscriber),
	}
}

// Connect dials the stream, subscribes the configured symbol channels and
// starts the read loop. The first dial error is returned to the caller; any
// later connection loss reconnects after a fixed delay, indefinitely, with
// the mapping retained across the gap.
func (f *Feed) Connect(ctx context.Context) error {
	if err := f.dial(); err != nil {
		return err
	}

	go f.run(ctx)
	return nil
}

func (f *Feed) dial() error {
	conn, _, err := f.dialer.Dial(f.config.StreamURL, nil)
	if err != nil {
		return err
	}

	params := make([]string, 0, len(f.config.Symbols))
	for _, symbol := range f.config.Symbols {
		params = append(params, strings.ToLower(symbol)+"@trade")
	}

	sub := subscribeMessage{
		Method: "SUBSCRIBE",
		Params: params,
		ID:     1,
	}
	if err := conn.WriteJSON(sub); err != nil {
		conn.Close()
		return err
	}

	f.feedMutex.Lock()
	f.conn = conn
	f.connected = true
	f.feedMutex.Unlock()

	config.Logger.Infof("pricefeed: connected to %s (%d channels)", f.config.StreamURL, len(params))
	return nil
}

func (f *Feed) run(ctx context.Context) {
	// Unblock the read loop on cancellation; ReadMessage only returns once
	// the connection closes.
	go func() {
		<-ctx.Done()
		f.close()
	}()

	for {
		f.feedMutex.RLock()
		conn := f.conn
		f.feedMutex.RUnlock()

		if conn == nil {
			return
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				f.close()
				return
			}

			config.Logger.Warnf("pricefeed: connection lost: %v", err)
			f.close()

			if !f.reconnect(ctx) {
				return
			}
			continue
		}

		f.handleMessage(data)
	}
}

// reconnect retries the dial every ReconnectInterval until it succeeds or the
// context is cancelled. It never gives up on its own.
func (f *Feed) reconnect(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(f.config.reconnectInterval()):
		}

		if err := f.dial(); err != nil {
			config.Logger.Warnf("pricefeed: reconnect failed: %v", err)
			continue
		}
		return true
	}
}

func (f *Feed) close() {
	f.feedMutex.Lock()
	defer f.feedMutex.Unlock()

	if f.conn != nil {
		f.conn.Close()
		f.conn = nil
	}
	f.connected = false
}

// handleMessage applies one tick. Malformed or unrecognized messages are
// dropped and logged, they never reach subscribers or affect the mapping.
func (f *Feed) handleMessage(data []byte) {
	var tick tradeTick
	if err := json.Unmarshal(data, &tick); err != nil {
		config.Logger.Debugf("pricefeed: dropping malformed message: %v", err)
		return
	}

	if tick.EventType != "trade" || tick.Symbol == "" {
		config.Logger.Debugf("pricefeed: ignoring event type %q", tick.EventType)
		return
	}

	price, err := decimal.NewFromString(tick.Price)
	if err != nil {
		config.Logger.Debugf("pricefeed: dropping unparsable price %q for %s", tick.Price, tick.Symbol)
		return
	}
	if price.IsNegative() {
		config.Logger.Debugf("pricefeed: dropping negative price for %s", tick.Symbol)
		return
	}

	f.feedMutex.Lock()
	f.prices[tick.Symbol] = price
	snapshot := f.prices.Clone()
	subscribers := make([]Subscriber, 0, len(f.subscribers))
	for _, subscriber := range f.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	f.feedMutex.Unlock()

	for _, subscriber := range subscribers {
		subscriber(snapshot)
	}
}

// Subscribe registers a callback and synchronously delivers the current
// mapping right away, so new subscribers never wait for the next tick.
func (f *Feed) Subscribe(subscriber Subscriber) int {
	f.feedMutex.Lock()
	f.nextSubID++
	id := f.nextSubID
	f.subscribers[id] = subscriber
	snapshot := f.prices.Clone()
	f.feedMutex.Unlock()

	subscriber(snapshot)
	return id
}

func (f *Feed) Unsubscribe(id int) {
	f.feedMutex.Lock()
	defer f.feedMutex.Unlock()

	delete(f.subscribers, id)
}

// Snapshot returns the mapping by value.
func (f *Feed) Snapshot() types.PriceMapping {
	f.feedMutex.RLock()
	defer f.feedMutex.RUnlock()

	return f.prices.Clone()
}

func (f *Feed) Connected() bool {
	f.feedMutex.RLock()
	defer f.feedMutex.RUnlock()

	return f.connected
}
