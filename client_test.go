package hood

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestInstrumentBySymbol(t *testing.T) {
	var fetches atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		if r.URL.Path != instrumentsPath {
			t.Errorf("request path = %q, want %q", r.URL.Path, instrumentsPath)
		}
		if got := r.URL.Query().Get("symbol"); got != "MSFT" {
			t.Errorf("symbol query = %q, want %q", got, "MSFT")
		}
		// next deliberately set: the lookup must not follow it.
		fmt.Fprint(w, `{"previous":null,"next":"http://unused.invalid/page2/","results":[{"symbol":"MSFT","name":"Microsoft Corporation"}]}`)
	}))
	defer srv.Close()

	rh := testClient(t, srv)
	inst, err := rh.InstrumentBySymbol(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("InstrumentBySymbol() returned error: %v", err)
	}
	if inst.Symbol != "MSFT" {
		t.Errorf("Symbol = %q, want %q", inst.Symbol, "MSFT")
	}
	if n := fetches.Load(); n != 1 {
		t.Errorf("lookup fetched %d pages, want 1", n)
	}
}

func TestInstrumentBySymbolNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"previous":null,"next":null,"results":[]}`)
	}))
	defer srv.Close()

	rh := testClient(t, srv)
	_, err := rh.InstrumentBySymbol(context.Background(), "NOPE")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("InstrumentBySymbol() error = %v, want ErrNotFound", err)
	}
}

func TestCancelWithoutCancelURL(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	rh := testClient(t, srv)
	err := rh.Cancel(context.Background(), Order{ID: "order-1"})
	if !errors.Is(err, ErrCancelUnavailable) {
		t.Fatalf("Cancel() error = %v, want ErrCancelUnavailable", err)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("Cancel() without a cancel URL made %d requests, want 0", n)
	}
}

func TestCancelPostsCancelURL(t *testing.T) {
	var cancelled atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/order-1/cancel/" {
			t.Errorf("request path = %q, want the cancel URL", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		cancelled.Store(true)
	}))
	defer srv.Close()

	rh := testClient(t, srv)
	cancelURL := srv.URL + "/orders/order-1/cancel/"
	if err := rh.Cancel(context.Background(), Order{ID: "order-1", CancelURL: &cancelURL}); err != nil {
		t.Fatalf("Cancel() returned error: %v", err)
	}
	if !cancelled.Load() {
		t.Error("Cancel() never reached the server")
	}
}

func TestLogoutUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	rh := testClient(t, srv)
	if err := rh.Logout(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Logout() error = %v, want ErrUnauthorized", err)
	}
}

func TestLogout(t *testing.T) {
	var loggedOut atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case tokenAuthPath:
			fmt.Fprint(w, `{"token":"abc123"}`)
		case tokenLogoutPath:
			if got := r.Header.Get("Authorization"); got != "Token abc123" {
				t.Errorf("logout Authorization = %q, want %q", got, "Token abc123")
			}
			loggedOut.Store(true)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	rh, err := New().BaseURL(srv.URL).Login("trader", "hunter2").Build(context.Background())
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if err := rh.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() returned error: %v", err)
	}
	if !loggedOut.Load() {
		t.Error("Logout() never reached the server")
	}
}

func TestPositionsWithAccount(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts/5QR/positions/":
			if got := r.URL.Query().Get("nonzero"); got != "" {
				t.Errorf("unexpected nonzero query %q", got)
			}
			fmt.Fprint(w, `{"previous":null,"next":null,"results":[{"account":"5QR","quantity":"10.0000"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	rh := testClient(t, srv)
	account := Account{AccountNumber: "5QR", Positions: srv.URL + "/accounts/5QR/positions/"}

	pos, err := rh.PositionsWithAccount(account).Next(context.Background())
	if err != nil {
		t.Fatalf("Next() returned error: %v", err)
	}
	if pos.Account != "5QR" {
		t.Errorf("position account = %q, want %q", pos.Account, "5QR")
	}
}

func TestPositionsNonzeroWithAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("nonzero"); got != "true" {
			t.Errorf("nonzero query = %q, want %q", got, "true")
		}
		fmt.Fprint(w, `{"previous":null,"next":null,"results":[]}`)
	}))
	defer srv.Close()

	rh := testClient(t, srv)
	account := Account{Positions: srv.URL + "/accounts/5QR/positions/"}

	if _, err := rh.PositionsNonzeroWithAccount(account).Next(context.Background()); err != Done {
		t.Fatalf("Next() = %v, want Done", err)
	}
}

func TestPositionsNoAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"previous":null,"next":null,"results":[]}`)
	}))
	defer srv.Close()

	rh := testClient(t, srv)
	if _, err := rh.Positions(context.Background()); !errors.Is(err, ErrNoAccount) {
		t.Fatalf("Positions() error = %v, want ErrNoAccount", err)
	}
}
