// Lists instruments from the public catalog, or looks a single one up by
// symbol. No login is required.
//
// Usage:
//
//	hood-instruments [-config hood.yaml] [-n 10] [SYMBOL]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"hood"
	"hood/internal/config"
	"hood/internal/util"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	count := flag.Int("n", 10, "number of instruments to list")
	perMinute := flag.Int("rate", 60, "max page fetches per minute")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}

	log := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(log)

	builder := hood.New().Logger(log)
	if cfg.API.BaseURL != "" {
		builder.BaseURL(cfg.API.BaseURL)
	}
	if cfg.API.UserAgent != "" {
		builder.UserAgent(cfg.API.UserAgent)
	}

	ctx := context.Background()
	rh, err := builder.Build(ctx)
	if err != nil {
		log.Error("building client", "err", err)
		os.Exit(1)
	}

	if sym := flag.Arg(0); sym != "" {
		inst, err := rh.InstrumentBySymbol(ctx, sym)
		if err != nil {
			log.Error("looking up instrument", "symbol", sym, "err", err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\t(%s)\n", inst.Symbol, inst.Name, inst.State)
		return
	}

	// The full catalog is thousands of pages; pace the pulls.
	limiter := util.NewRateLimiter(*perMinute)
	it := rh.Instruments()
	for i := 0; i < *count; i++ {
		if err := limiter.Wait(ctx); err != nil {
			log.Error("rate limiter", "err", err)
			os.Exit(1)
		}
		inst, err := it.Next(ctx)
		if err == hood.Done {
			break
		}
		if err != nil {
			log.Error("listing instruments", "err", err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\n", inst.Symbol, inst.Name)
	}
}
