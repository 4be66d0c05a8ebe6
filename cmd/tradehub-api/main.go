package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/enterprise220/RWA-Trade-Hub/config"
	"github.com/enterprise220/RWA-Trade-Hub/engine"
	"github.com/enterprise220/RWA-Trade-Hub/ledger"
	"github.com/enterprise220/RWA-Trade-Hub/pricefeed"
	"github.com/enterprise220/RWA-Trade-Hub/routes"
	"github.com/enterprise220/RWA-Trade-Hub/services"
	"github.com/enterprise220/RWA-Trade-Hub/snapshot"
)

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	feed := pricefeed.New(feedConfig())

	store := snapshot.NewStore(config.Redis)
	app := engine.New(feed, store, ledger.InfluxTradeSink{})

	if err := app.Start(context.Background()); err != nil {
		config.Logger.Warnf("api: stream unavailable, serving without live prices: %v", err)
	}

	venue := services.NewPaperVenue()

	r := routes.SetupRouter(app, venue, venue)
	// running
	r.Listen(":3000")
}

func feedConfig() pricefeed.Config {
	symbols := make([]string, 0, len(config.Markets))
	for _, market := range config.Markets {
		symbols = append(symbols, market.StreamSymbol)
	}

	return pricefeed.Config{
		StreamURL:         getEnv("STREAM_URL", "wss://stream.binance.com:9443/ws"),
		RestURL:           getEnv("REST_URL", "https://api.binance.com"),
		Symbols:           symbols,
		ReconnectInterval: 5 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, found := os.LookupEnv(key); found {
		return value
	}
	return fallback
}
