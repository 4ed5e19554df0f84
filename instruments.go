package hood

import "github.com/shopspring/decimal"

// Instrument is one tradeable security. Field URLs (quote, fundamentals,
// splits, market) link to sibling resources and are kept as strings.
type Instrument struct {
	MinTickSize        *decimal.Decimal `json:"min_tick_size"`
	Type               string           `json:"type"`
	Splits             string           `json:"splits"`
	MarginInitialRatio decimal.Decimal  `json:"margin_initial_ratio"`
	URL                string           `json:"url"`
	Quote              string           `json:"quote"`
	Tradability        string           `json:"tradability"`
	BloombergUnique    string           `json:"bloomberg_unique"`
	ListDate           *Date            `json:"list_date"`
	Name               string           `json:"name"`
	Symbol             string           `json:"symbol"`
	Fundamentals       string           `json:"fundamentals"`
	State              string           `json:"state"`
	Country            string           `json:"country"`
	DayTradeRatio      decimal.Decimal  `json:"day_trade_ratio"`
	Tradeable          bool             `json:"tradeable"`
	MaintenanceRatio   decimal.Decimal  `json:"maintenance_ratio"`
	ID                 string           `json:"id"`
	Market             string           `json:"market"`
	SimpleName         *string          `json:"simple_name"`
	RHSTradability     string           `json:"rhs_tradability"`
	TradableChainID    *string          `json:"tradable_chain_id"`
}
