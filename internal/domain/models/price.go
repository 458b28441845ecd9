package models

import "time"

// PriceResult is the outcome of one price lookup for one tracked company.
//
// A failed lookup still produces a PriceResult: Succeeded is false, Price is
// nil and ErrorDetail carries a human-readable reason. One failing company
// never suppresses results for its siblings.
type PriceResult struct {
	Ticker      string    `json:"ticker" example:"UNM"`
	Name        string    `json:"name" example:"Unum Group"`
	Price       *float64  `json:"price" example:"52.13"` // nil when the lookup failed
	ObservedAt  time.Time `json:"observed_at"`
	Succeeded   bool      `json:"succeeded"`
	ErrorDetail string    `json:"error,omitempty"`
}

// Board is the flat (ungrouped) aggregate over the whole watchlist.
//
// Invariant: Results contains exactly one entry per configured company, in
// configuration order, regardless of individual lookup outcomes.
type Board struct {
	Results         []PriceResult
	TotalCompanies  int
	TotalSuccessful int
	GeneratedAt     time.Time
}

// GroupResult is the aggregate for one industry bucket.
type GroupResult struct {
	Key             string
	Name            string
	Results         []PriceResult
	TotalCompanies  int
	TotalSuccessful int
}

// IndustryBoard is the grouped aggregate: per-group results plus overall
// totals summed across groups. Group order matches configuration order.
type IndustryBoard struct {
	Groups          []GroupResult
	TotalCompanies  int
	TotalSuccessful int
	GeneratedAt     time.Time
}
