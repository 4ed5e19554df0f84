package hood

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Account is one brokerage account. Positions holds the URL of the
// account-scoped positions listing.
type Account struct {
	Deactivated                bool               `json:"deactivated"`
	UpdatedAt                  time.Time          `json:"updated_at"`
	MarginBalances             MarginBalances     `json:"margin_balances"`
	Portfolio                  string             `json:"portfolio"`
	CashBalances               json.RawMessage    `json:"cash_balances"`
	CanDowngradeToCash         string             `json:"can_downgrade_to_cash"`
	WithdrawalHalted           bool               `json:"withdrawal_halted"`
	CashAvailableForWithdrawal decimal.Decimal    `json:"cash_available_for_withdrawal"`
	Type                       string             `json:"type"`
	SMA                        decimal.Decimal    `json:"sma"`
	SweepEnabled               bool               `json:"sweep_enabled"`
	DepositHalted              bool               `json:"deposit_halted"`
	BuyingPower                decimal.Decimal    `json:"buying_power"`
	User                       string             `json:"user"`
	MaxACHEarlyAccessAmount    decimal.Decimal    `json:"max_ach_early_access_amount"`
	InstantEligibility         InstantEligibility `json:"instant_eligibility"`
	CashHeldForOrders          decimal.Decimal    `json:"cash_held_for_orders"`
	OnlyPositionClosingTrades  bool               `json:"only_position_closing_trades"`
	URL                        string             `json:"url"`
	Positions                  string             `json:"positions"`
	CreatedAt                  time.Time          `json:"created_at"`
	Cash                       decimal.Decimal    `json:"cash"`
	SMAHeldForOrders           decimal.Decimal    `json:"sma_held_for_orders"`
	UnsettledDebit             decimal.Decimal    `json:"unsettled_debit"`
	AccountNumber              string             `json:"account_number"`
	UnclearedDeposits          decimal.Decimal    `json:"uncleared_deposits"`
	UnsettledFunds             decimal.Decimal    `json:"unsettled_funds"`
	NummusEnabled              *bool              `json:"nummus_enabled"` // crypto
	OptionLevel                string             `json:"option_level"`
	IsPinnacleAccount          bool               `json:"is_pinnacle_account"`
}

// MarginBalances is the margin detail embedded in an Account.
type MarginBalances struct {
	DayTradeBuyingPower                decimal.Decimal `json:"day_trade_buying_power"`
	StartOfDayOvernightBuyingPower     decimal.Decimal `json:"start_of_day_overnight_buying_power"`
	OvernightBuyingPowerHeldForOrders  decimal.Decimal `json:"overnight_buying_power_held_for_orders"`
	CashHeldForOrders                  decimal.Decimal `json:"cash_held_for_orders"`
	CreatedAt                          time.Time       `json:"created_at"`
	UnsettledDebit                     decimal.Decimal `json:"unsettled_debit"`
	StartOfDayDTBP                     decimal.Decimal `json:"start_of_day_dtbp"`
	DayTradeBuyingPowerHeldForOrders   decimal.Decimal `json:"day_trade_buying_power_held_for_orders"`
	OvernightBuyingPower               decimal.Decimal `json:"overnight_buying_power"`
	MarkedPatternDayTraderDate         *Date           `json:"marked_pattern_day_trader_date"`
	Cash                               decimal.Decimal `json:"cash"`
	UnallocatedMarginCash              decimal.Decimal `json:"unallocated_margin_cash"`
	UpdatedAt                          time.Time       `json:"updated_at"`
	CashAvailableForWithdrawal         decimal.Decimal `json:"cash_available_for_withdrawal"`
	MarginLimit                        decimal.Decimal `json:"margin_limit"`
	OutstandingInterest                decimal.Decimal `json:"outstanding_interest"`
	UnclearedDeposits                  decimal.Decimal `json:"uncleared_deposits"`
	UnsettledFunds                     decimal.Decimal `json:"unsettled_funds"`
	GoldEquityRequirement              decimal.Decimal `json:"gold_equity_requirement"`
	DayTradeRatio                      decimal.Decimal `json:"day_trade_ratio"`
	OvernightRatio                     decimal.Decimal `json:"overnight_ratio"`
}

// InstantEligibility describes the account's instant-deposit standing.
type InstantEligibility struct {
	UpdatedAt         *time.Time      `json:"updated_at"`
	Reason            string          `json:"reason"`
	ReinstatementDate *time.Time      `json:"reinstatement_date"`
	Reversal          json.RawMessage `json:"reversal"`
	State             string          `json:"state"`
}
