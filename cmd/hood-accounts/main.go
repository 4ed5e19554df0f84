// Logs in and prints the session's accounts with their nonzero positions.
//
// Usage:
//
//	hood-accounts [-config hood.yaml]
//
// Credentials come from the config file or HOOD_USERNAME / HOOD_PASSWORD
// (plus HOOD_OAUTH_CLIENT_ID for the OAuth2 flow). A .env file in the
// working directory is honoured.
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
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}

	log := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(log)

	builder := hood.New().
		Login(cfg.Auth.Username, cfg.Auth.Password).
		Logger(log)
	if cfg.Auth.OAuthClientID != "" {
		builder.OAuthClient(cfg.Auth.OAuthClientID)
	}
	if cfg.Auth.OAuthScope != "" {
		builder.OAuthScope(cfg.Auth.OAuthScope)
	}
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
	if !rh.Authorized() {
		log.Error("not authorized; set HOOD_USERNAME and HOOD_PASSWORD")
		os.Exit(1)
	}
	defer func() {
		if err := rh.Logout(ctx); err != nil {
			log.Warn("logout", "err", err)
		}
	}()

	for account, err := range rh.Accounts().All(ctx) {
		if err != nil {
			log.Error("listing accounts", "err", err)
			os.Exit(1)
		}
		fmt.Printf("account %s\tbuying power %s\tcash %s\n",
			account.AccountNumber, account.BuyingPower, account.Cash)

		for pos, err := range rh.PositionsNonzeroWithAccount(*account).All(ctx) {
			if err != nil {
				log.Error("listing positions", "account", account.AccountNumber, "err", err)
				os.Exit(1)
			}
			fmt.Printf("  %s x %s @ %s\n", pos.Instrument, pos.Quantity, pos.AverageBuyPrice)
		}
	}
}
