package hood

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	sideBuy  = "buy"
	sideSell = "sell"
)

// Order is one order record as returned by the API. CancelURL is only
// present while the order can still be cancelled.
type Order struct {
	Account                string           `json:"account"`
	AveragePrice           *decimal.Decimal `json:"average_price"`
	CancelURL              *string          `json:"cancel"`
	CreatedAt              time.Time        `json:"created_at"`
	CumulativeQuantity     decimal.Decimal  `json:"cumulative_quantity"`
	Executions             []Execution      `json:"executions"`
	ExtendedHours          bool             `json:"extended_hours"`
	Fees                   decimal.Decimal  `json:"fees"`
	ID                     string           `json:"id"`
	Instrument             string           `json:"instrument"`
	LastTransactionAt      time.Time        `json:"last_transaction_at"`
	OverrideDayTradeChecks bool             `json:"override_day_trade_checks"`
	OverrideDTBPChecks     bool             `json:"override_dtbp_checks"`
	Position               string           `json:"position"`
	Price                  *decimal.Decimal `json:"price"`
	Quantity               decimal.Decimal  `json:"quantity"`
	RefID                  *string          `json:"ref_id"`
	RejectReason           *string          `json:"reject_reason"`
	ResponseCategory       *string          `json:"response_category"`
	Side                   string           `json:"side"`
	State                  string           `json:"state"`
	StopPrice              *decimal.Decimal `json:"stop_price"`
	TimeInForce            string           `json:"time_in_force"`
	Trigger                string           `json:"trigger"`
	Type                   string           `json:"type"`
	UpdatedAt              time.Time        `json:"updated_at"`
	URL                    string           `json:"url"`
}

// Execution is one fill of an order.
type Execution struct {
	Timestamp      string          `json:"timestamp"`
	Price          decimal.Decimal `json:"price"`
	SettlementDate string          `json:"settlement_date"`
	ID             string          `json:"id"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// OrderBuilder accumulates the parameters of a single order and submits it.
// The zero configuration is a market order, good for the day, no stop. Every
// builder carries exactly one account and one instrument. Use it once:
// Submit does not reset it.
type OrderBuilder struct {
	client         *Client
	side           string
	quantity       uint64
	instrument     Instrument
	account        Account
	orderType      string
	timeInForce    string
	price         *decimal.Decimal
	stopPrice     *decimal.Decimal
	extendedHours bool
	overrideDTBP  bool
}

func newOrderBuilder(c *Client, side string, quantity uint64, instrument Instrument, account Account) *OrderBuilder {
	return &OrderBuilder{
		client:      c,
		side:        side,
		quantity:    quantity,
		instrument:  instrument,
		account:     account,
		orderType:   "market",
		timeInForce: "gfd",
	}
}

// GFD makes the order good for the day. This is the default.
func (o *OrderBuilder) GFD() *OrderBuilder {
	o.timeInForce = "gfd"
	return o
}

// GTC makes the order good till cancelled.
func (o *OrderBuilder) GTC() *OrderBuilder {
	o.timeInForce = "gtc"
	return o
}

// OPG executes the order at the market open.
func (o *OrderBuilder) OPG() *OrderBuilder {
	o.timeInForce = "opg"
	return o
}

// Stop sets a stop price; the submitted trigger becomes "stop". A stop and a
// limit may be combined into a stop-limit order.
func (o *OrderBuilder) Stop(price decimal.Decimal) *OrderBuilder {
	o.stopPrice = &price
	return o
}

// Limit sets a limit price and forces the order type to "limit". Calling it
// twice keeps the last price.
func (o *OrderBuilder) Limit(price decimal.Decimal) *OrderBuilder {
	o.price = &price
	o.orderType = "limit"
	return o
}

// CollarPrice sets a price on a market order without changing its type.
func (o *OrderBuilder) CollarPrice(price decimal.Decimal) *OrderBuilder {
	o.price = &price
	return o
}

// ExtendedHours allows the order to execute outside regular trading hours.
func (o *OrderBuilder) ExtendedHours() *OrderBuilder {
	o.extendedHours = true
	return o
}

// OverrideDTBPChecks skips the server's day-trade-buying-power check.
func (o *OrderBuilder) OverrideDTBPChecks() *OrderBuilder {
	o.overrideDTBP = true
	return o
}

// Submit posts the order and returns the created record. A market order with
// no explicit price is submitted without a price field; no quote lookup is
// performed. The day-trade-check override is always sent, matching the API's
// expected client behaviour. A client-generated ref_id makes accidental
// resubmission detectable server-side.
func (o *OrderBuilder) Submit(ctx context.Context) (*Order, error) {
	form := url.Values{}
	form.Set("account", o.account.URL)
	form.Set("instrument", o.instrument.URL)
	form.Set("symbol", o.instrument.Symbol)
	form.Set("type", o.orderType)
	form.Set("time_in_force", o.timeInForce)
	form.Set("trigger", "immediate")
	form.Set("quantity", strconv.FormatUint(o.quantity, 10))
	form.Set("side", o.side)
	form.Set("ref_id", uuid.NewString())

	if o.stopPrice != nil {
		form.Set("stop_price", o.stopPrice.String())
		form.Set("trigger", "stop")
	}
	if o.price != nil {
		form.Set("price", o.price.String())
	}
	if o.extendedHours {
		form.Set("extended_hours", "true")
	}
	if o.overrideDTBP {
		form.Set("override_dtbp_checks", "true")
	}

	// Always sent; the API rejects pattern-day-trade flagged submissions
	// otherwise.
	form.Set("override_day_trade_checks", "true")

	var order Order
	if err := o.client.postForm(ctx, o.client.baseURL+ordersPath, form, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
