package hood

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is the account's holding in one instrument, including the shares
// reserved by open orders on either side.
type Position struct {
	SharesHeldForStockGrants decimal.Decimal `json:"shares_held_for_stock_grants"`
	Account                  string          `json:"account"`
	IntradayQuantity         decimal.Decimal `json:"intraday_quantity"`
	IntradayAverageBuyPrice  decimal.Decimal `json:"intraday_average_buy_price"`
	URL                      string          `json:"url"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
	SharesHeldForBuys        decimal.Decimal `json:"shares_held_for_buys"`
	AverageBuyPrice          decimal.Decimal `json:"average_buy_price"`
	Instrument               string          `json:"instrument"`
	SharesHeldForSells       decimal.Decimal `json:"shares_held_for_sells"`
	Quantity                 decimal.Decimal `json:"quantity"`
}
