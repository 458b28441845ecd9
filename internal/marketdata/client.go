package marketdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"resty.dev/v3"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/config"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/models"
)

const (
	stockPriceEndpoint = "/v1/stockprice"
	transcriptEndpoint = "/v1/earningstranscript"
)

// Quote is one price observation as returned by the API Ninjas stockprice
// endpoint. Price is a pointer so a payload without a price field is
// distinguishable from a zero price.
type Quote struct {
	Ticker   string   `json:"ticker"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Exchange string   `json:"exchange"`
	Updated  int64    `json:"updated"`
	Currency string   `json:"currency"`
}

// Client is the contract for the upstream stock-data provider. Services
// depend on this interface so tests can substitute a double.
type Client interface {
	// StockPrice looks up the current price for one ticker.
	StockPrice(ctx context.Context, ticker string) (*Quote, error)

	// EarningsTranscript fetches an earnings-call transcript for one ticker.
	// year and quarter are optional (zero means "latest" on the provider
	// side). The payload is relayed opaquely.
	EarningsTranscript(ctx context.Context, ticker string, year, quarter int) (*models.Transcript, error)

	// Configured reports whether the provider credential is present.
	Configured() bool

	// Close releases the underlying HTTP client resources.
	Close() error
}

type apiNinjas struct {
	configured bool
	http       *resty.Client
}

// New builds an API Ninjas client from provider configuration. The key is
// attached as the X-Api-Key header on every request; no retries are
// configured, so each lookup either succeeds or fails exactly once.
func New(cfg config.ProviderConfig) Client {
	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.RequestTimeoutSec) * time.Second).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		hc.SetHeader("X-Api-Key", cfg.APIKey)
	}
	return &apiNinjas{configured: cfg.APIKey != "", http: hc}
}

func (c *apiNinjas) Configured() bool { return c.configured }

func (c *apiNinjas) Close() error {
	c.http.Close()
	return nil
}

// StockPrice issues one GET per call. A reachable provider answering without
// a price field yields ErrNoPrice (see errors.go); non-2xx yields a
// ProviderError. The caller decides how failures aggregate.
func (c *apiNinjas) StockPrice(ctx context.Context, ticker string) (*Quote, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	var out Quote
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ticker", ticker).
		SetResult(&out).
		Get(stockPriceEndpoint)
	if err != nil {
		return nil, fmt.Errorf("stock price request for %s: %w", ticker, err)
	}
	if !res.IsSuccess() {
		return nil, &ProviderError{Endpoint: stockPriceEndpoint, StatusCode: res.StatusCode()}
	}
	if out.Price == nil {
		return nil, fmt.Errorf("ticker %s: %w", ticker, ErrNoPrice)
	}
	return &out, nil
}

// EarningsTranscript relays the provider payload verbatim after confirming it
// is valid, non-empty JSON. The provider reports a missing transcript either
// as a 404 or as a well-formed empty payload; both map to
// ErrTranscriptNotFound.
func (c *apiNinjas) EarningsTranscript(ctx context.Context, ticker string, year, quarter int) (*models.Transcript, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("ticker", ticker)
	if year > 0 {
		req.SetQueryParam("year", strconv.Itoa(year))
	}
	if quarter > 0 {
		req.SetQueryParam("quarter", strconv.Itoa(quarter))
	}

	res, err := req.Get(transcriptEndpoint)
	if err != nil {
		return nil, fmt.Errorf("transcript request for %s: %w", ticker, err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, ErrTranscriptNotFound
	}
	if !res.IsSuccess() {
		return nil, &ProviderError{Endpoint: transcriptEndpoint, StatusCode: res.StatusCode()}
	}

	body := bytes.TrimSpace(res.Bytes())
	if emptyPayload(body) {
		return nil, ErrTranscriptNotFound
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("malformed transcript payload for %s", ticker)
	}

	return &models.Transcript{
		Ticker:      ticker,
		Payload:     append(json.RawMessage(nil), body...),
		RetrievedAt: time.Now().UTC(),
	}, nil
}

// emptyPayload reports whether a 2xx body carries no transcript data.
func emptyPayload(body []byte) bool {
	switch string(body) {
	case "", "[]", "{}", "null", `""`:
		return true
	}
	return false
}
