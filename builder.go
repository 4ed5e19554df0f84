package hood

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// defaultUserAgent mimics the mobile app; some endpoints reject unknown
// agents.
const defaultUserAgent = "Robinhood/2672 (Android 6.1;)"

// CodeSource supplies a multi-factor authentication code when the server
// demands one during login. GetCode receives the delivery channel reported
// by the server (e.g. "sms" or "app") and may block on interactive input.
type CodeSource interface {
	GetCode(mfaType string) (string, error)
}

// CodeFunc adapts a plain function to a CodeSource.
type CodeFunc func(mfaType string) (string, error)

func (f CodeFunc) GetCode(mfaType string) (string, error) {
	return f(mfaType)
}

// terminalCodeSource prompts on stdin, matching what the mobile-app flow
// expects from a human.
type terminalCodeSource struct{}

func (terminalCodeSource) GetCode(mfaType string) (string, error) {
	fmt.Printf("Please enter MFA code from %s: ", mfaType)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading mfa code: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Builder accumulates credentials and options and produces a Client. A zero
// of everything is valid: Build then returns an unauthenticated client.
type Builder struct {
	username   string
	password   string
	agent      string
	clientID   string // OAuth2
	scope      string // OAuth2: internal, read, trade, ...
	baseURL    string
	mfa        CodeSource
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Builder with defaults: the production base URL, the
// mobile-app user agent, the "internal" OAuth scope and a terminal prompt
// for MFA codes.
func New() *Builder {
	return &Builder{
		agent:   defaultUserAgent,
		scope:   "internal",
		baseURL: DefaultBaseURL,
		mfa:     terminalCodeSource{},
	}
}

// Login sets the credentials used by Build. Which login flow runs depends on
// whether an OAuth client id is also configured.
func (b *Builder) Login(username, password string) *Builder {
	b.username = username
	b.password = password
	return b
}

// UserAgent overrides the User-Agent header sent on every request.
func (b *Builder) UserAgent(agent string) *Builder {
	b.agent = agent
	return b
}

// OAuthClient sets the OAuth2 client id and selects the OAuth2 password
// grant flow over the legacy token flow.
func (b *Builder) OAuthClient(clientID string) *Builder {
	b.clientID = clientID
	return b
}

// OAuthScope overrides the OAuth2 scope requested at login.
func (b *Builder) OAuthScope(scope string) *Builder {
	b.scope = scope
	return b
}

// MFA sets the source queried for a multi-factor code during login.
func (b *Builder) MFA(src CodeSource) *Builder {
	b.mfa = src
	return b
}

// MFAFunc is shorthand for MFA(CodeFunc(fn)).
func (b *Builder) MFAFunc(fn func(mfaType string) (string, error)) *Builder {
	b.mfa = CodeFunc(fn)
	return b
}

// BaseURL overrides the API host, mainly for tests.
func (b *Builder) BaseURL(rawURL string) *Builder {
	b.baseURL = strings.TrimRight(rawURL, "/")
	return b
}

// HTTPClient sets the transport collaborator. Timeouts and proxies are the
// caller's business; the library configures neither.
func (b *Builder) HTTPClient(hc *http.Client) *Builder {
	b.httpClient = hc
	return b
}

// Logger sets the structured logger. Requests are logged at debug level.
func (b *Builder) Logger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// oauthToken is the response of the OAuth2 token endpoint. Decoded leniently:
// the endpoint is not covered by the strict-schema policy applied to
// resource records.
type oauthToken struct {
	BackupCode   *string `json:"backup_code"`
	AccessToken  *string `json:"access_token"`
	ExpiresIn    *int    `json:"expires_in"`
	TokenType    *string `json:"token_type"`
	Scope        *string `json:"scope"`
	RefreshToken *string `json:"refresh_token"`
	MFACode      *string `json:"mfa_code"`
	MFAType      *string `json:"mfa_type"`
	MFARequired  *bool   `json:"mfa_required"`

	birth time.Time // issuance instant, stamped locally on success
}

// plainToken is the response of the legacy token-auth endpoint.
type plainToken struct {
	Token       *string `json:"token"`
	MFACode     *string `json:"mfa_code"`
	MFAType     *string `json:"mfa_type"`
	MFARequired *bool   `json:"mfa_required"`
}

// Build runs the configured login flow, if any, and returns a Client with
// the Authorization and User-Agent headers installed on its transport.
// Without credentials the client is built unauthenticated and no network
// request is made. Login failures (transport, decode, non-2xx, missing
// token, exhausted MFA retry) abort the build.
func (b *Builder) Build(ctx context.Context) (*Client, error) {
	transport := &headerTransport{base: http.DefaultTransport, agent: b.agent}

	hc := &http.Client{Transport: transport}
	if b.httpClient != nil {
		inner := *b.httpClient
		if inner.Transport != nil {
			transport.base = inner.Transport
		}
		inner.Transport = transport
		hc = &inner
	}

	log := b.log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	authorized := false
	if b.username != "" && b.password != "" {
		if b.clientID != "" {
			tok, err := b.oauthLogin(ctx)
			if err != nil {
				return nil, err
			}
			if tok.AccessToken == nil || *tok.AccessToken == "" {
				return nil, fmt.Errorf("oauth login: %w", ErrAuthentication)
			}
			transport.auth = "Bearer " + *tok.AccessToken
			authorized = true
		} else {
			tok, err := b.tokenLogin(ctx)
			if err != nil {
				return nil, err
			}
			if tok.Token == nil || *tok.Token == "" {
				return nil, fmt.Errorf("token login: %w", ErrAuthentication)
			}
			transport.auth = "Token " + *tok.Token
			authorized = true
		}
	}

	return &Client{
		baseURL:    b.baseURL,
		httpClient: hc,
		authorized: authorized,
		log:        log,
	}, nil
}

// oauthLogin posts the OAuth2 password grant, retrying exactly once with a
// multi-factor code if the server asks for one.
func (b *Builder) oauthLogin(ctx context.Context) (*oauthToken, error) {
	var mfaCode string
	for attempt := 0; ; attempt++ {
		form := url.Values{}
		form.Set("grant_type", "password")
		form.Set("username", b.username)
		form.Set("password", b.password)
		form.Set("scope", b.scope)
		form.Set("client_id", b.clientID)
		if mfaCode != "" {
			form.Set("mfa_code", mfaCode)
		}

		var tok oauthToken
		if err := b.postLogin(ctx, b.baseURL+oauthTokenPath, form, &tok); err != nil {
			return nil, err
		}

		if tok.MFARequired != nil && *tok.MFARequired {
			if attempt > 0 {
				return nil, fmt.Errorf("oauth login: %w", ErrMFARetryLimit)
			}
			code, err := b.getMFACode(tok.MFAType)
			if err != nil {
				return nil, err
			}
			mfaCode = code
			continue
		}

		tok.birth = time.Now().UTC()
		return &tok, nil
	}
}

// tokenLogin posts to the legacy token-auth endpoint with the same single
// MFA retry policy as the OAuth flow.
func (b *Builder) tokenLogin(ctx context.Context) (*plainToken, error) {
	var mfaCode string
	for attempt := 0; ; attempt++ {
		form := url.Values{}
		form.Set("username", b.username)
		form.Set("password", b.password)
		if mfaCode != "" {
			form.Set("mfa_code", mfaCode)
		}

		var tok plainToken
		if err := b.postLogin(ctx, b.baseURL+tokenAuthPath, form, &tok); err != nil {
			return nil, err
		}

		if tok.MFARequired != nil && *tok.MFARequired {
			if attempt > 0 {
				return nil, fmt.Errorf("token login: %w", ErrMFARetryLimit)
			}
			code, err := b.getMFACode(tok.MFAType)
			if err != nil {
				return nil, err
			}
			mfaCode = code
			continue
		}

		return &tok, nil
	}
}

func (b *Builder) getMFACode(mfaType *string) (string, error) {
	channel := ""
	if mfaType != nil {
		channel = *mfaType
	}
	code, err := b.mfa.GetCode(channel)
	if err != nil {
		return "", fmt.Errorf("getting mfa code: %w", err)
	}
	return code, nil
}

// postLogin issues a login form POST on a bare client. Auth headers are not
// installed yet at this point; only the user agent is sent.
func (b *Builder) postLogin(ctx context.Context, rawURL string, form url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", b.agent)

	hc := b.httpClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading login response: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decoding login response: %w", err)
	}
	return nil
}

// headerTransport installs the session headers on every outgoing request so
// iterators and order builders never handle auth themselves.
type headerTransport struct {
	base  http.RoundTripper
	agent string
	auth  string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.agent)
	if t.auth != "" {
		req.Header.Set("Authorization", t.auth)
	}
	return t.base.RoundTrip(req)
}
