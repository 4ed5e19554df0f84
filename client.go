package hood

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Client is an authenticated (or deliberately unauthenticated) session
// against the API. It is immutable after construction and safe to share:
// the Authorization and User-Agent headers live in the transport, and every
// paginator or order builder carries its own cursor.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authorized bool
	log        *slog.Logger
}

// Authorized reports whether Build completed a login flow. Unauthenticated
// clients can still list instruments, which is a public resource.
func (c *Client) Authorized() bool {
	return c.authorized
}

// Instruments lists the full instrument catalog.
func (c *Client) Instruments() *Paginator[Instrument] {
	return newPaginator[Instrument](c, c.baseURL+instrumentsPath)
}

// InstrumentBySymbol looks up a single instrument by ticker symbol using the
// server-side symbol filter. A miss is ErrNotFound, not an empty success.
func (c *Client) InstrumentBySymbol(ctx context.Context, symbol string) (*Instrument, error) {
	start := c.baseURL + instrumentsPath + "?symbol=" + url.QueryEscape(symbol)
	inst, err := newPaginator[Instrument](c, start).Next(ctx)
	if err == Done {
		return nil, fmt.Errorf("instrument %q: %w", symbol, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// Accounts lists the accounts visible to the session.
func (c *Client) Accounts() *Paginator[Account] {
	return newPaginator[Account](c, c.baseURL+accountsPath)
}

// Orders lists the session's order history, most recent first.
func (c *Client) Orders() *Paginator[Order] {
	return newPaginator[Order](c, c.baseURL+ordersPath)
}

// Positions lists positions of the first account.
func (c *Client) Positions(ctx context.Context) (*Paginator[Position], error) {
	account, err := c.firstAccount(ctx)
	if err != nil {
		return nil, err
	}
	return c.PositionsWithAccount(*account), nil
}

// PositionsWithAccount lists positions of a specific account.
func (c *Client) PositionsWithAccount(account Account) *Paginator[Position] {
	return newPaginator[Position](c, account.Positions)
}

// PositionsNonzero lists the first account's positions with the zero-share
// rows filtered out server-side.
func (c *Client) PositionsNonzero(ctx context.Context) (*Paginator[Position], error) {
	account, err := c.firstAccount(ctx)
	if err != nil {
		return nil, err
	}
	return c.PositionsNonzeroWithAccount(*account), nil
}

// PositionsNonzeroWithAccount lists a specific account's nonzero positions.
func (c *Client) PositionsNonzeroWithAccount(account Account) *Paginator[Position] {
	return newPaginator[Position](c, account.Positions+"?nonzero=true")
}

// Buy starts a buy order against the first account.
func (c *Client) Buy(ctx context.Context, quantity uint64, instrument Instrument) (*OrderBuilder, error) {
	account, err := c.firstAccount(ctx)
	if err != nil {
		return nil, err
	}
	return c.BuyWithAccount(quantity, instrument, *account), nil
}

// BuyWithAccount starts a buy order against a specific account.
func (c *Client) BuyWithAccount(quantity uint64, instrument Instrument, account Account) *OrderBuilder {
	return newOrderBuilder(c, sideBuy, quantity, instrument, account)
}

// Sell starts a sell order against the first account.
func (c *Client) Sell(ctx context.Context, quantity uint64, instrument Instrument) (*OrderBuilder, error) {
	account, err := c.firstAccount(ctx)
	if err != nil {
		return nil, err
	}
	return c.SellWithAccount(quantity, instrument, *account), nil
}

// SellWithAccount starts a sell order against a specific account.
func (c *Client) SellWithAccount(quantity uint64, instrument Instrument, account Account) *OrderBuilder {
	return newOrderBuilder(c, sideSell, quantity, instrument, account)
}

// Cancel requests cancellation of an order via its embedded cancel URL. An
// order without one (already filled or cancelled) fails with
// ErrCancelUnavailable before any request is made.
func (c *Client) Cancel(ctx context.Context, order Order) error {
	if order.CancelURL == nil || *order.CancelURL == "" {
		return fmt.Errorf("order %s: %w", order.ID, ErrCancelUnavailable)
	}
	return c.postForm(ctx, *order.CancelURL, nil, nil)
}

// Logout invalidates the session token server-side. Legacy token auth hands
// the same token to every client of the account, so this is the only way to
// force it to expire. OAuth sessions are not asked to log back in.
func (c *Client) Logout(ctx context.Context) error {
	if !c.authorized {
		return fmt.Errorf("logout: %w", ErrUnauthorized)
	}
	return c.postForm(ctx, c.baseURL+tokenLogoutPath, nil, nil)
}

func (c *Client) firstAccount(ctx context.Context) (*Account, error) {
	account, err := c.Accounts().Next(ctx)
	if err == Done {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// get issues a GET and strict-decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, dst)
}

// postForm issues a form-encoded POST. A nil form sends an empty body; a nil
// dst drains and discards the response.
func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values, dst any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return c.do(req, dst)
}

func (c *Client) do(req *http.Request, dst any) error {
	c.log.Debug("api request", "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return decodeStrict(resp.Body, dst)
}
