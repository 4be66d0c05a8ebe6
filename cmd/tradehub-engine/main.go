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
	"github.com/enterprise220/RWA-Trade-Hub/snapshot"
	"github.com/enterprise220/RWA-Trade-Hub/workers"
	"github.com/enterprise220/RWA-Trade-Hub/workers/daemons"
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
		config.Logger.Errorf("engine: stream connect failed: %v", err)
		return
	}

	ARVG := os.Args[1:]
	if len(ARVG) == 0 {
		ARVG = []string{"feed", "cron"}
	}

	for _, id := range ARVG {
		fmt.Println("Start tradehub-engine: " + id)

		switch id {
		case "feed":
			go workers.NewFeedWorker(feed).Start()
		case "cron":
			go daemons.NewCronJob(app).Start()
		default:
			config.Logger.Errorf("engine: unknown worker %s", id)
			return
		}
	}

	for {
		time.Sleep(1 * time.Second)
	}
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
