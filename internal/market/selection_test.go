package market_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/market"
)

func record(state, mkt, commodity, modal string) domain.MarketRecord {
	return domain.MarketRecord{
		State:       state,
		Market:      mkt,
		Commodity:   commodity,
		Variety:     "Local",
		ArrivalDate: "15/08/2026",
		MinPrice:    "1000",
		MaxPrice:    "3000",
		ModalPrice:  modal,
	}
}

func TestSelect_OneRowPerStateFirst(t *testing.T) {
	pool := []domain.MarketRecord{
		record("Punjab", "Ludhiana", "Wheat", "2200"),
		record("Punjab", "Amritsar", "Rice", "3100"),
		record("Haryana", "Karnal", "Mustard", "5400"),
		record("Kerala", "Kochi", "Banana", "1800"),
	}

	got := market.Select(pool, nil)

	assert.Len(t, got, 4)
	// Pass 1 takes Wheat, Mustard, Banana in pool order, then pass 2 tops
	// Punjab up with Rice.
	assert.Equal(t, "Wheat", got[0].Commodity)
	assert.Equal(t, "Mustard", got[1].Commodity)
	assert.Equal(t, "Banana", got[2].Commodity)
	assert.Equal(t, "Rice", got[3].Commodity)
}

func TestSelect_CommodityUniqueAcrossStates(t *testing.T) {
	// Wheat appears for two states; only the first state keeps it, even if
	// that leaves the second state with nothing.
	pool := []domain.MarketRecord{
		record("Punjab", "Ludhiana", "Wheat", "2200"),
		record("Haryana", "Karnal", "Wheat", "2150"),
	}

	got := market.Select(pool, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, "Punjab", got[0].State)

	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p.Commodity], "commodity %s selected twice", p.Commodity)
		seen[p.Commodity] = true
	}
}

func TestSelect_MaxThreeRowsPerState(t *testing.T) {
	var pool []domain.MarketRecord
	for i := 0; i < 6; i++ {
		pool = append(pool, record("Punjab", "Ludhiana", fmt.Sprintf("Crop%d", i), "2000"))
	}
	pool = append(pool, record("Haryana", "Karnal", "Mustard", "5400"))

	got := market.Select(pool, nil)

	perState := map[string]int{}
	for _, p := range got {
		perState[p.State]++
	}
	assert.Equal(t, 3, perState["Punjab"])
	assert.Equal(t, 1, perState["Haryana"])
}

func TestSelect_CapsAtFiftyRows(t *testing.T) {
	var pool []domain.MarketRecord
	for i := 0; i < 40; i++ {
		state := fmt.Sprintf("State%d", i)
		for j := 0; j < 3; j++ {
			pool = append(pool, record(state, "Mandi", fmt.Sprintf("Crop%d_%d", i, j), "2000"))
		}
	}

	got := market.Select(pool, nil)
	assert.Len(t, got, market.MaxRows)
}

func TestSelect_TrendAgainstYesterday(t *testing.T) {
	pool := []domain.MarketRecord{
		record("Punjab", "Ludhiana", "Wheat", "2300"),
		record("Haryana", "Karnal", "Mustard", "5000"),
		record("Kerala", "Kochi", "Banana", "1800"),
		record("Assam", "Guwahati", "Tea", "900"),
	}
	yesterday := []domain.MarketRecord{
		record("Punjab", "Ludhiana", "Wheat", "2200"),  // up today
		record("Haryana", "Karnal", "Mustard", "5400"), // down today
		record("Kerala", "Kochi", "Banana", "1800"),    // unchanged
		// no Tea yesterday: stable by absence
	}

	got := market.Select(pool, market.BuildTrendLookup(yesterday))

	byCommodity := map[string]domain.Trend{}
	for _, p := range got {
		byCommodity[p.Commodity] = p.Trend
	}
	assert.Equal(t, domain.TrendUp, byCommodity["Wheat"])
	assert.Equal(t, domain.TrendDown, byCommodity["Mustard"])
	assert.Equal(t, domain.TrendStable, byCommodity["Banana"])
	assert.Equal(t, domain.TrendStable, byCommodity["Tea"])
}

func TestSelect_TrendKeyIncludesMarket(t *testing.T) {
	// Same commodity in a different market yesterday must not feed the trend.
	pool := []domain.MarketRecord{record("Punjab", "Ludhiana", "Wheat", "2300")}
	yesterday := []domain.MarketRecord{record("Punjab", "Amritsar", "Wheat", "1000")}

	got := market.Select(pool, market.BuildTrendLookup(yesterday))

	assert.Len(t, got, 1)
	assert.Equal(t, domain.TrendStable, got[0].Trend)
}

func TestSelect_UnparseablePrices(t *testing.T) {
	pool := []domain.MarketRecord{record("Punjab", "Ludhiana", "Wheat", "NR")}
	yesterday := []domain.MarketRecord{record("Punjab", "Ludhiana", "Wheat", "2200")}

	got := market.Select(pool, market.BuildTrendLookup(yesterday))

	assert.Len(t, got, 1)
	assert.Equal(t, float64(0), got[0].ModalPrice)
	assert.Equal(t, domain.TrendStable, got[0].Trend)
}

func TestSelectDaily_EmptyTodayFallsBackToYesterday(t *testing.T) {
	yesterday := []domain.MarketRecord{
		record("Punjab", "Ludhiana", "Wheat", "2200"),
		record("Haryana", "Karnal", "Mustard", "5400"),
	}

	got := market.SelectDaily(nil, yesterday)

	// Yesterday compared against itself: every row reads stable.
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, domain.TrendStable, p.Trend)
	}
}

func TestSelectDaily_PriceUnitAndDate(t *testing.T) {
	got := market.SelectDaily([]domain.MarketRecord{record("Punjab", "Ludhiana", "Wheat", "2200")}, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, "Quintal", got[0].Unit)
	assert.Equal(t, "15/08/2026", got[0].Date)
	assert.Equal(t, 1000.0, got[0].MinPrice)
	assert.Equal(t, 3000.0, got[0].MaxPrice)
	assert.Equal(t, 2200.0, got[0].ModalPrice)
}
