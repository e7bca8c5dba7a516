package domain

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// MarketRecord is a raw row from the data.gov.in mandi price resource.
// The upstream serves every field as a string, prices included.
type MarketRecord struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	Variety     string `json:"variety"`
	ArrivalDate string `json:"arrival_date"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
}

// MarketPrice is a selected, display-ready price row with its day-over-day
// trend. Derived per request, never persisted.
type MarketPrice struct {
	Commodity  string  `json:"commodity"`
	Variety    string  `json:"variety"`
	Market     string  `json:"market"`
	State      string  `json:"state"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	ModalPrice float64 `json:"modal_price"`
	Unit       string  `json:"unit"`
	Date       string  `json:"date"`
	Trend      Trend   `json:"trend"`
}

type Fertilizer struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Unit    string  `json:"unit"`
	Subsidy bool    `json:"subsidy"`
}
