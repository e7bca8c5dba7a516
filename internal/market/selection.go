// Package market implements the mandi price selection heuristic: from a raw
// daily snapshot it picks a bounded, state-diverse, commodity-deduplicated
// sample annotated with a day-over-day trend.
package market

import (
	"strconv"

	"krishisanjivni-backend/internal/domain"
)

const (
	// MaxRows caps the selection output.
	MaxRows = 50
	// maxPerState caps how many rows a single state contributes in pass 2.
	maxPerState = 3

	priceUnit = "Quintal"
)

// SelectDaily runs the selection over today's records, falling back to
// yesterday's records as the pool when today is empty (a plain substitution,
// not a merge). The trend lookup always comes from yesterday, so in the
// fallback case the pool is compared against itself and every row degrades
// to "stable".
func SelectDaily(today, yesterday []domain.MarketRecord) []domain.MarketPrice {
	pool := today
	if len(pool) == 0 {
		pool = yesterday
	}
	return Select(pool, BuildTrendLookup(yesterday))
}

// BuildTrendLookup indexes yesterday's modal prices by (state, market,
// commodity). Records with an unparseable modal price are left out, which
// makes their trend read "stable" downstream.
func BuildTrendLookup(yesterday []domain.MarketRecord) map[string]float64 {
	lookup := make(map[string]float64, len(yesterday))
	for _, rec := range yesterday {
		price, ok := parsePrice(rec.ModalPrice)
		if !ok {
			continue
		}
		lookup[trendKey(rec.State, rec.Market, rec.Commodity)] = price
	}
	return lookup
}

// Select picks at most MaxRows rows from the pool in two order-preserving
// greedy passes. Pass 1 emits the first record of each not-yet-represented
// state; pass 2 tops states up to maxPerState rows. A commodity name is used
// at most once across the whole output, states included; the first state to
// claim it wins, even if that leaves later states underrepresented. Both
// passes consume records in upstream order; nothing is sorted.
func Select(pool []domain.MarketRecord, yesterdayLookup map[string]float64) []domain.MarketPrice {
	selected := make([]domain.MarketPrice, 0, MaxRows)
	usedCommodities := make(map[string]bool)
	stateCount := make(map[string]int)

	// Pass 1: at least one row per state
	for _, rec := range pool {
		if len(selected) >= MaxRows {
			break
		}
		if stateCount[rec.State] > 0 || usedCommodities[rec.Commodity] {
			continue
		}
		selected = append(selected, makePrice(rec, yesterdayLookup))
		usedCommodities[rec.Commodity] = true
		stateCount[rec.State] = 1
	}

	// Pass 2: fill remaining, max three rows per state
	for _, rec := range pool {
		if len(selected) >= MaxRows {
			break
		}
		if stateCount[rec.State] >= maxPerState || usedCommodities[rec.Commodity] {
			continue
		}
		selected = append(selected, makePrice(rec, yesterdayLookup))
		usedCommodities[rec.Commodity] = true
		stateCount[rec.State]++
	}

	return selected
}

func makePrice(rec domain.MarketRecord, yesterdayLookup map[string]float64) domain.MarketPrice {
	modal, modalOK := parsePrice(rec.ModalPrice)
	minPrice, _ := parsePrice(rec.MinPrice)
	maxPrice, _ := parsePrice(rec.MaxPrice)

	trend := domain.TrendStable
	if yesterdayPrice, found := yesterdayLookup[trendKey(rec.State, rec.Market, rec.Commodity)]; found && modalOK {
		switch {
		case modal > yesterdayPrice:
			trend = domain.TrendUp
		case modal < yesterdayPrice:
			trend = domain.TrendDown
		}
	}

	return domain.MarketPrice{
		Commodity:  rec.Commodity,
		Variety:    rec.Variety,
		Market:     rec.Market,
		State:      rec.State,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		ModalPrice: modal,
		Unit:       priceUnit,
		Date:       rec.ArrivalDate,
		Trend:      trend,
	}
}

func trendKey(state, market, commodity string) string {
	return state + "_" + market + "_" + commodity
}

func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
