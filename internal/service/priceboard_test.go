package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/config"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/models"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/marketdata"
)

// fakeClient implements marketdata.Client with canned per-ticker outcomes.
type fakeClient struct {
	mu           sync.Mutex
	priceCalls   int
	unconfigured bool
	prices       map[string]float64
	errs         map[string]error
	transcript   *models.Transcript
	trErr        error
	trCalls      int
}

func (f *fakeClient) StockPrice(_ context.Context, ticker string) (*marketdata.Quote, error) {
	f.mu.Lock()
	f.priceCalls++
	f.mu.Unlock()
	if err, ok := f.errs[ticker]; ok {
		return nil, err
	}
	p, ok := f.prices[ticker]
	if !ok {
		return nil, fmt.Errorf("no canned price for %s", ticker)
	}
	return &marketdata.Quote{Ticker: ticker, Price: &p}, nil
}

func (f *fakeClient) EarningsTranscript(_ context.Context, ticker string, _, _ int) (*models.Transcript, error) {
	f.mu.Lock()
	f.trCalls++
	f.mu.Unlock()
	if f.trErr != nil {
		return nil, f.trErr
	}
	return f.transcript, nil
}

func (f *fakeClient) Configured() bool { return !f.unconfigured }
func (f *fakeClient) Close() error     { return nil }

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.priceCalls
}

var _ marketdata.Client = (*fakeClient)(nil)

func flatWatchlist(companies ...models.Company) config.Watchlist {
	return config.Watchlist{Industries: []models.IndustryGroup{
		{Key: "all", Name: "All", Companies: companies},
	}}
}

func TestSnapshot_PartialFailureIsOverallSuccess(t *testing.T) {
	// Configuration [AAPL, MSFT]; provider returns 150 for AAPL, errors for MSFT.
	client := &fakeClient{
		prices: map[string]float64{"AAPL": 150},
		errs:   map[string]error{"MSFT": errors.New("provider exploded")},
	}
	svc := NewPriceBoardService(client, flatWatchlist(
		models.Company{Ticker: "AAPL", Name: "Apple"},
		models.Company{Ticker: "MSFT", Name: "Microsoft"},
	))

	board, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("partial failure must not be an error: %v", err)
	}
	if board.TotalCompanies != 2 || board.TotalSuccessful != 1 {
		t.Fatalf("unexpected counts: %+v", board)
	}

	// Order preserved from configuration
	if board.Results[0].Ticker != "AAPL" || board.Results[1].Ticker != "MSFT" {
		t.Fatalf("order not preserved: %+v", board.Results)
	}
	aapl, msft := board.Results[0], board.Results[1]
	if !aapl.Succeeded || aapl.Price == nil || *aapl.Price != 150 {
		t.Fatalf("unexpected AAPL result: %+v", aapl)
	}
	if msft.Succeeded || msft.Price != nil || msft.ErrorDetail == "" {
		t.Fatalf("unexpected MSFT result: %+v", msft)
	}
}

func TestSnapshot_AllFailed(t *testing.T) {
	client := &fakeClient{errs: map[string]error{"AAPL": errors.New("down")}}
	svc := NewPriceBoardService(client, flatWatchlist(models.Company{Ticker: "AAPL", Name: "Apple"}))

	board, err := svc.Snapshot(context.Background())
	if !errors.Is(err, ErrAllLookupsFailed) {
		t.Fatalf("expected ErrAllLookupsFailed, got %v", err)
	}
	// The board is still fully populated so the 503 body can carry details
	if board == nil || board.TotalCompanies != 1 || board.TotalSuccessful != 0 {
		t.Fatalf("unexpected board: %+v", board)
	}
	if board.Results[0].ErrorDetail == "" {
		t.Fatalf("per-ticker error detail missing")
	}
}

func TestSnapshot_EmptyWatchlist(t *testing.T) {
	client := &fakeClient{}
	svc := NewPriceBoardService(client, config.Watchlist{})

	board, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("empty watchlist must succeed: %v", err)
	}
	if board.TotalCompanies != 0 || board.TotalSuccessful != 0 || len(board.Results) != 0 {
		t.Fatalf("unexpected board: %+v", board)
	}
	if client.calls() != 0 {
		t.Fatalf("no outbound calls expected, got %d", client.calls())
	}
}

func TestSnapshot_NotConfigured(t *testing.T) {
	client := &fakeClient{unconfigured: true}
	svc := NewPriceBoardService(client, flatWatchlist(models.Company{Ticker: "AAPL"}))

	if _, err := svc.Snapshot(context.Background()); !errors.Is(err, marketdata.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if client.calls() != 0 {
		t.Fatalf("configuration failure must short-circuit before dispatch")
	}
}

// Every company must land in its own slot even though lookups run
// concurrently in arbitrary order.
func TestSnapshot_ManyCompanies_SlotsMatchTickers(t *testing.T) {
	prices := make(map[string]float64)
	var companies []models.Company
	for i := 0; i < 50; i++ {
		tk := fmt.Sprintf("TK%02d", i)
		prices[tk] = float64(i)
		companies = append(companies, models.Company{Ticker: tk})
	}
	svc := NewPriceBoardService(&fakeClient{prices: prices}, flatWatchlist(companies...))

	board, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.TotalCompanies != 50 || board.TotalSuccessful != 50 {
		t.Fatalf("unexpected counts: %+v", board)
	}
	for i, r := range board.Results {
		want := fmt.Sprintf("TK%02d", i)
		if r.Ticker != want {
			t.Fatalf("slot %d holds %q, want %q", i, r.Ticker, want)
		}
		if r.Price == nil || *r.Price != float64(i) {
			t.Fatalf("slot %d price mismatch: %+v", i, r)
		}
	}
}

func TestSnapshotByIndustry_GroupTotalsSumToOverall(t *testing.T) {
	client := &fakeClient{
		prices: map[string]float64{"UNM": 52, "MET": 80},
		errs: map[string]error{
			"AON": errors.New("down"),
			"MMC": errors.New("down"),
		},
	}
	wl := config.Watchlist{Industries: []models.IndustryGroup{
		{Key: "carriers", Name: "Carriers", Companies: []models.Company{
			{Ticker: "UNM", Name: "Unum Group"},
			{Ticker: "MET", Name: "MetLife"},
			{Ticker: "AON", Name: "Aon"},
		}},
		{Key: "brokers", Name: "Brokers", Companies: []models.Company{
			{Ticker: "MMC", Name: "Marsh McLennan"},
		}},
	}}
	svc := NewPriceBoardService(client, wl)

	board, err := svc.SnapshotByIndustry(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(board.Groups) != 2 || board.Groups[0].Key != "carriers" || board.Groups[1].Key != "brokers" {
		t.Fatalf("group order not preserved: %+v", board.Groups)
	}

	sumTotal, sumSuccess := 0, 0
	for _, g := range board.Groups {
		if g.TotalCompanies != len(g.Results) {
			t.Fatalf("group %s count mismatch: %+v", g.Key, g)
		}
		sumTotal += g.TotalCompanies
		sumSuccess += g.TotalSuccessful
	}
	if sumTotal != board.TotalCompanies || sumSuccess != board.TotalSuccessful {
		t.Fatalf("group sums %d/%d do not match overall %d/%d",
			sumTotal, sumSuccess, board.TotalCompanies, board.TotalSuccessful)
	}
	if board.TotalCompanies != 4 || board.TotalSuccessful != 2 {
		t.Fatalf("unexpected overall counts: %+v", board)
	}

	// Member order within a group preserved
	carriers := board.Groups[0]
	for i, want := range []string{"UNM", "MET", "AON"} {
		if carriers.Results[i].Ticker != want {
			t.Fatalf("member order not preserved: %+v", carriers.Results)
		}
	}
}

func TestSnapshotByIndustry_AllFailed(t *testing.T) {
	client := &fakeClient{errs: map[string]error{
		"UNM": errors.New("down"),
		"MMC": errors.New("down"),
	}}
	wl := config.Watchlist{Industries: []models.IndustryGroup{
		{Key: "carriers", Name: "Carriers", Companies: []models.Company{{Ticker: "UNM"}}},
		{Key: "brokers", Name: "Brokers", Companies: []models.Company{{Ticker: "MMC"}}},
	}}
	svc := NewPriceBoardService(client, wl)

	board, err := svc.SnapshotByIndustry(context.Background())
	if !errors.Is(err, ErrAllLookupsFailed) {
		t.Fatalf("expected ErrAllLookupsFailed, got %v", err)
	}
	if board.TotalSuccessful != 0 || board.TotalCompanies != 2 {
		t.Fatalf("unexpected board: %+v", board)
	}
}

// With a provider returning fixed data, consecutive snapshots agree on
// everything except timestamps.
func TestSnapshot_Idempotent(t *testing.T) {
	client := &fakeClient{prices: map[string]float64{"UNM": 52}}
	svc := NewPriceBoardService(client, flatWatchlist(models.Company{Ticker: "UNM", Name: "Unum Group"}))

	first, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.TotalCompanies != second.TotalCompanies || first.TotalSuccessful != second.TotalSuccessful {
		t.Fatalf("counts differ across invocations")
	}
	a, b := first.Results[0], second.Results[0]
	if a.Ticker != b.Ticker || a.Succeeded != b.Succeeded || *a.Price != *b.Price {
		t.Fatalf("results differ across invocations: %+v vs %+v", a, b)
	}
}
