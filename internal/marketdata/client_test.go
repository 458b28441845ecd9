package marketdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/config"
)

func newTestClient(t *testing.T, handler http.Handler) (Client, *int64) {
	t.Helper()
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	c := New(config.ProviderConfig{
		APIKey:            "test-key",
		BaseURL:           srv.URL,
		RequestTimeoutSec: 5,
	})
	t.Cleanup(func() { _ = c.Close() })
	return c, &calls
}

func TestStockPrice_Success(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/stockprice" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("missing X-Api-Key header")
		}
		if r.URL.Query().Get("ticker") != "UNM" {
			t.Errorf("unexpected ticker %q", r.URL.Query().Get("ticker"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ticker":"UNM","name":"Unum Group","price":52.13,"exchange":"NYSE","updated":1767225600,"currency":"USD"}`))
	}))

	q, err := c.StockPrice(context.Background(), "UNM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Ticker != "UNM" || q.Price == nil || *q.Price != 52.13 {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestStockPrice_NonSuccessStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A non-2xx body must never be parsed as data
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"price":1.0}`))
	}))

	_, err := c.StockPrice(context.Background(), "UNM")
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", pe.StatusCode)
	}
}

func TestStockPrice_MissingPriceIsFailure(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ticker":"UNM","name":"Unum Group"}`))
	}))

	_, err := c.StockPrice(context.Background(), "UNM")
	if !errors.Is(err, ErrNoPrice) {
		t.Fatalf("expected ErrNoPrice, got %v", err)
	}
}

func TestStockPrice_NotConfigured(t *testing.T) {
	c, calls := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// A client built without a key must not dial anything at all.
	unconfigured := New(config.ProviderConfig{BaseURL: "http://localhost:1", RequestTimeoutSec: 1})
	t.Cleanup(func() { _ = unconfigured.Close() })

	if unconfigured.Configured() {
		t.Fatalf("client without key reports configured")
	}
	if _, err := unconfigured.StockPrice(context.Background(), "UNM"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := unconfigured.EarningsTranscript(context.Background(), "UNM", 0, 0); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if c.Configured() != true || atomic.LoadInt64(calls) != 0 {
		t.Fatalf("no outbound call should have been issued")
	}
}

func TestEarningsTranscript_Success(t *testing.T) {
	payload := `{"date":"2026-07-29","transcript":"Good afternoon, everyone..."}`
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/earningstranscript" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("year") != "2026" || r.URL.Query().Get("quarter") != "2" {
			t.Errorf("year/quarter not relayed: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))

	tr, err := c.EarningsTranscript(context.Background(), "UNM", 2026, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Ticker != "UNM" || string(tr.Payload) != payload {
		t.Fatalf("payload not relayed verbatim: %+v", tr)
	}
	if tr.RetrievedAt.IsZero() {
		t.Fatalf("RetrievedAt not set")
	}
}

func TestEarningsTranscript_OmitsUnsetYearQuarter(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("year") || r.URL.Query().Has("quarter") {
			t.Errorf("unset year/quarter must not be sent: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"transcript":"hi"}`))
	}))

	if _, err := c.EarningsTranscript(context.Background(), "UNM", 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEarningsTranscript_NotFound(t *testing.T) {
	cases := []struct {
		name string
		fn   http.HandlerFunc
	}{
		{
			name: "provider 404",
			fn: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "empty array payload",
			fn: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[]`))
			},
		},
		{
			name: "empty object payload",
			fn: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{}`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, tc.fn)
			_, err := c.EarningsTranscript(context.Background(), "ZZZZ", 0, 0)
			if !errors.Is(err, ErrTranscriptNotFound) {
				t.Fatalf("expected ErrTranscriptNotFound, got %v", err)
			}
		})
	}
}

func TestEarningsTranscript_ServerError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.EarningsTranscript(context.Background(), "UNM", 0, 0)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}
