package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/logger"
)

// MandiClient fetches commodity price snapshots from the data.gov.in
// "current daily price of various commodities" resource.
type MandiClient struct {
	apiKey     string
	resourceID string
	baseURL    string
	limit      int
	httpClient *http.Client
}

func NewMandiClient(apiKey, resourceID, baseURL string, limit int) *MandiClient {
	return &MandiClient{
		apiKey:     apiKey,
		resourceID: resourceID,
		baseURL:    baseURL,
		limit:      limit,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

type mandiResponse struct {
	Records []domain.MarketRecord `json:"records"`
}

// FetchByDate returns the raw records for one arrival date (dd/mm/yyyy, the
// upstream's own format).
func (c *MandiClient) FetchByDate(ctx context.Context, arrivalDate string) ([]domain.MarketRecord, error) {
	params := url.Values{}
	params.Set("api-key", c.apiKey)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(c.limit))
	params.Set("filters[arrival_date]", arrivalDate)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, c.resourceID, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	logger.ExternalServiceCall("data.gov.in", "FetchByDate", "arrival_date", arrivalDate)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("data.gov.in", "FetchByDate", err)
		return nil, fmt.Errorf("mandi price request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("mandi price API returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("data.gov.in", "FetchByDate", err)
		return nil, err
	}

	var payload mandiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode mandi price response: %w", err)
	}
	logger.ExternalServiceResult("data.gov.in", "FetchByDate", nil, "records", len(payload.Records))
	return payload.Records, nil
}
