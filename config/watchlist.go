package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/models"
)

// Watchlist is the static set of companies the dashboard tracks, organized
// into named industry buckets. Order is significant: groups and members are
// rendered in the order they are configured here.
type Watchlist struct {
	Industries []models.IndustryGroup
}

// Flatten returns all tracked companies as a single ordered list: groups in
// configuration order, members in member order. Used by the ungrouped price
// endpoint mode.
func (w Watchlist) Flatten() []models.Company {
	var out []models.Company
	for _, g := range w.Industries {
		out = append(out, g.Companies...)
	}
	return out
}

// DefaultWatchlist is the compiled-in set of tracked companies: the group
// benefits market MGIS operates in, bucketed by industry segment.
func DefaultWatchlist() Watchlist {
	return Watchlist{
		Industries: []models.IndustryGroup{
			{
				Key:  "carriers",
				Name: "Group Insurance Carriers",
				Companies: []models.Company{
					{Ticker: "UNM", Name: "Unum Group"},
					{Ticker: "MET", Name: "MetLife"},
					{Ticker: "PRU", Name: "Prudential Financial"},
					{Ticker: "AFL", Name: "Aflac"},
					{Ticker: "PFG", Name: "Principal Financial Group"},
					{Ticker: "LNC", Name: "Lincoln Financial"},
					{Ticker: "HIG", Name: "The Hartford"},
				},
			},
			{
				Key:  "health",
				Name: "Health Insurers",
				Companies: []models.Company{
					{Ticker: "UNH", Name: "UnitedHealth Group"},
					{Ticker: "CI", Name: "The Cigna Group"},
					{Ticker: "ELV", Name: "Elevance Health"},
					{Ticker: "HUM", Name: "Humana"},
				},
			},
			{
				Key:  "brokers",
				Name: "Brokers & Consultants",
				Companies: []models.Company{
					{Ticker: "AON", Name: "Aon"},
					{Ticker: "MMC", Name: "Marsh McLennan"},
					{Ticker: "WTW", Name: "Willis Towers Watson"},
					{Ticker: "AJG", Name: "Arthur J. Gallagher"},
				},
			},
		},
	}
}

// LoadWatchlist returns the watchlist to serve.
//
// With an empty path the compiled-in default is used. Otherwise the YAML file
// at path is read (via viper) and fully replaces the default. Expected shape:
//
//	industries:
//	  - key: carriers
//	    name: Group Insurance Carriers
//	    companies:
//	      - ticker: UNM
//	        name: Unum Group
//
// The result is validated: at least one group, no empty keys or tickers, and
// no ticker listed twice (each tracked company must appear exactly once in a
// response).
func LoadWatchlist(path string) (Watchlist, error) {
	wl := DefaultWatchlist()

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Watchlist{}, fmt.Errorf("read watchlist file: %w", err)
		}
		var loaded Watchlist
		if err := v.Unmarshal(&loaded); err != nil {
			return Watchlist{}, fmt.Errorf("parse watchlist file: %w", err)
		}
		wl = loaded
	}

	if err := validateWatchlist(wl); err != nil {
		return Watchlist{}, err
	}
	return wl, nil
}

func validateWatchlist(wl Watchlist) error {
	if len(wl.Industries) == 0 {
		return fmt.Errorf("watchlist has no industry groups")
	}
	seenGroup := make(map[string]bool)
	seenTicker := make(map[string]bool)
	for _, g := range wl.Industries {
		if g.Key == "" {
			return fmt.Errorf("industry group %q has an empty key", g.Name)
		}
		if seenGroup[g.Key] {
			return fmt.Errorf("duplicate industry group key %q", g.Key)
		}
		seenGroup[g.Key] = true
		if len(g.Companies) == 0 {
			return fmt.Errorf("industry group %q has no companies", g.Key)
		}
		for _, c := range g.Companies {
			if c.Ticker == "" {
				return fmt.Errorf("industry group %q has a company with an empty ticker", g.Key)
			}
			if seenTicker[c.Ticker] {
				return fmt.Errorf("ticker %q appears more than once in the watchlist", c.Ticker)
			}
			seenTicker[c.Ticker] = true
		}
	}
	return nil
}
