package models

// Company is a single tracked entity on the dashboard watchlist.
//
// The watchlist is static configuration: companies are defined at startup and
// immutable at runtime.
type Company struct {
	Ticker string `json:"ticker" example:"UNM"`       // Exchange ticker symbol
	Name   string `json:"name" example:"Unum Group"`  // Display name used by the frontend
}

// IndustryGroup is a named, ordered bucket of tracked companies.
//
// Insertion order of groups and of members within a group is preserved all
// the way to the JSON response, since the frontend renders them in
// configuration order.
type IndustryGroup struct {
	Key       string    `json:"key" example:"carriers"`
	Name      string    `json:"name" example:"Group Insurance Carriers"`
	Companies []Company `json:"companies"`
}
