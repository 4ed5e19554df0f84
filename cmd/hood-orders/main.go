// Logs in, prints recent orders, and optionally submits a limit buy.
//
// Usage:
//
//	hood-orders [-config hood.yaml] [-n 10]
//	hood-orders -submit -symbol MSFT -quantity 1 -limit 25.50
//
// Submission is gated behind -submit so running the tool without flags is
// read-only.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"hood"
	"hood/internal/config"
	"hood/internal/util"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	count := flag.Int("n", 10, "number of orders to list")
	submit := flag.Bool("submit", false, "submit an order instead of listing")
	symbol := flag.String("symbol", "", "symbol to trade (with -submit)")
	quantity := flag.Uint64("quantity", 1, "shares to buy (with -submit)")
	limit := flag.String("limit", "", "limit price (with -submit; empty = market)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}

	log := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(log)

	ctx := context.Background()

	builder := hood.New().
		Login(cfg.Auth.Username, cfg.Auth.Password).
		Logger(log)
	if cfg.Auth.OAuthClientID != "" {
		builder.OAuthClient(cfg.Auth.OAuthClientID)
	}
	if cfg.API.BaseURL != "" {
		builder.BaseURL(cfg.API.BaseURL)
	}

	// Login hits the network; ride out transient failures here since the
	// client never retries on its own.
	var rh *hood.Client
	err = util.Retry(ctx, 3, time.Second, func() error {
		var buildErr error
		rh, buildErr = builder.Build(ctx)
		return buildErr
	})
	if err != nil {
		log.Error("building client", "err", err)
		os.Exit(1)
	}
	if !rh.Authorized() {
		log.Error("not authorized; set HOOD_USERNAME and HOOD_PASSWORD")
		os.Exit(1)
	}

	if *submit {
		submitOrder(ctx, rh, *symbol, *quantity, *limit)
		return
	}

	it := rh.Orders()
	for i := 0; i < *count; i++ {
		order, err := it.Next(ctx)
		if err == hood.Done {
			break
		}
		if err != nil {
			log.Error("listing orders", "err", err)
			os.Exit(1)
		}
		price := "-"
		if order.Price != nil {
			price = order.Price.String()
		}
		fmt.Printf("%s\t%s %s x %s @ %s\t%s\n",
			order.CreatedAt.Format(time.RFC3339),
			order.Side, order.Type, order.Quantity, price, order.State)
	}
}

func submitOrder(ctx context.Context, rh *hood.Client, symbol string, quantity uint64, limit string) {
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "-submit requires -symbol")
		os.Exit(1)
	}

	inst, err := rh.InstrumentBySymbol(ctx, symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, "looking up instrument:", err)
		os.Exit(1)
	}

	ob, err := rh.Buy(ctx, quantity, *inst)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preparing order:", err)
		os.Exit(1)
	}
	if limit != "" {
		price, err := decimal.NewFromString(limit)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parsing limit price:", err)
			os.Exit(1)
		}
		ob.Limit(price)
	}

	order, err := ob.Submit(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "submitting order:", err)
		os.Exit(1)
	}
	fmt.Printf("order %s: %s %s x %s (%s)\n",
		order.ID, order.Side, order.Type, order.Quantity, order.State)
}
