package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/config"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/models"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/logger"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/marketdata"
)

// ErrAllLookupsFailed is returned alongside a fully populated board when the
// batch contained at least one company and every single lookup failed. The
// handler maps it to 503; a partial failure is still an overall success.
var ErrAllLookupsFailed = errors.New("every price lookup in the batch failed")

// PriceBoardService computes dashboard price aggregates over the configured
// watchlist.
//
// Both snapshot modes fan out one provider lookup per company, wait for all
// of them to settle, and fold per-company failures into the result rather
// than propagating them. Every configured company appears exactly once in
// the output, in configuration order.
type PriceBoardService interface {
	// Snapshot aggregates the flattened watchlist into a single ordered list.
	Snapshot(ctx context.Context) (*models.Board, error)

	// SnapshotByIndustry runs the same aggregation once per industry group,
	// in configuration order, and sums the totals across groups.
	SnapshotByIndustry(ctx context.Context) (*models.IndustryBoard, error)
}

type priceBoardService struct {
	client    marketdata.Client
	watchlist config.Watchlist
}

// NewPriceBoardService builds the aggregation service. The watchlist is
// passed in explicitly so tests can run against arbitrary entity sets.
func NewPriceBoardService(client marketdata.Client, watchlist config.Watchlist) PriceBoardService {
	return &priceBoardService{client: client, watchlist: watchlist}
}

func (s *priceBoardService) Snapshot(ctx context.Context) (*models.Board, error) {
	if !s.client.Configured() {
		return nil, marketdata.ErrNotConfigured
	}

	results := s.fetchAll(ctx, s.watchlist.Flatten())
	board := &models.Board{
		Results:         results,
		TotalCompanies:  len(results),
		TotalSuccessful: countSuccessful(results),
		GeneratedAt:     time.Now().UTC(),
	}
	if board.TotalCompanies > 0 && board.TotalSuccessful == 0 {
		return board, ErrAllLookupsFailed
	}
	return board, nil
}

func (s *priceBoardService) SnapshotByIndustry(ctx context.Context) (*models.IndustryBoard, error) {
	if !s.client.Configured() {
		return nil, marketdata.ErrNotConfigured
	}

	board := &models.IndustryBoard{GeneratedAt: time.Now().UTC()}
	for _, group := range s.watchlist.Industries {
		results := s.fetchAll(ctx, group.Companies)
		gr := models.GroupResult{
			Key:             group.Key,
			Name:            group.Name,
			Results:         results,
			TotalCompanies:  len(results),
			TotalSuccessful: countSuccessful(results),
		}
		board.Groups = append(board.Groups, gr)
		board.TotalCompanies += gr.TotalCompanies
		board.TotalSuccessful += gr.TotalSuccessful
	}
	if board.TotalCompanies > 0 && board.TotalSuccessful == 0 {
		return board, ErrAllLookupsFailed
	}
	return board, nil
}

// fetchAll dispatches one lookup per company without waiting on each other
// and joins on the all-settled barrier. Each goroutine writes only its own
// preallocated slot, so no locking is needed and input order is preserved.
// Lookups are never cancelled because a sibling failed; the slowest call
// bounds total latency (itself capped by the client timeout).
func (s *priceBoardService) fetchAll(ctx context.Context, companies []models.Company) []models.PriceResult {
	results := make([]models.PriceResult, len(companies))

	var g errgroup.Group
	for i, company := range companies {
		i, company := i, company
		g.Go(func() error {
			results[i] = s.lookup(ctx, company)
			return nil
		})
	}
	_ = g.Wait() // lookups never return an error; failures live in their slot

	return results
}

// lookup converts a single provider call into a PriceResult, success or not.
func (s *priceBoardService) lookup(ctx context.Context, company models.Company) models.PriceResult {
	result := models.PriceResult{
		Ticker: company.Ticker,
		Name:   company.Name,
	}

	quote, err := s.client.StockPrice(ctx, company.Ticker)
	result.ObservedAt = time.Now().UTC()
	if err != nil {
		result.ErrorDetail = err.Error()
		logger.L().Warn().Str("ticker", company.Ticker).Err(err).Msg("price lookup failed")
		return result
	}

	result.Price = quote.Price
	result.Succeeded = true
	return result
}

func countSuccessful(results []models.PriceResult) int {
	n := 0
	for _, r := range results {
		if r.Succeeded {
			n++
		}
	}
	return n
}
