package openerapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/country-insights/country_insights_app/internal/apperrors"
	"github.com/country-insights/country_insights_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sourceName appears in error messages and drives the external-source
// failure classification.
const sourceName = "open.er-api.com"

// Client fetches the current exchange rate table from the Open ER API.
type Client struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
}

// NewClient creates a rate client. Every fetch is bounded by timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		url:        url,
		timeout:    timeout,
	}
}

type ratesPayload struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// FetchRates performs a single bounded request against the rate source.
// A response without a non-empty rates mapping is a structural-validity
// failure and is classified the same as any other upstream failure.
// There are no retries.
func (c *Client) FetchRates(ctx context.Context) (domain.RateTable, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.RateTable{}, apperrors.NewSourceUnavailable(sourceName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.RateTable{}, apperrors.NewSourceTimeout(sourceName, err)
		}
		return domain.RateTable{}, apperrors.NewSourceUnavailable(sourceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RateTable{}, apperrors.NewSourceUnavailable(sourceName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.RateTable{}, apperrors.NewSourceTimeout(sourceName, err)
		}
		return domain.RateTable{}, apperrors.NewSourceUnavailable(sourceName, fmt.Errorf("invalid response body: %w", err))
	}

	if len(payload.Rates) == 0 {
		return domain.RateTable{}, apperrors.NewSourceUnavailable(sourceName, errors.New("response has no rates"))
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[code] = decimal.NewFromFloat(rate)
	}
	return domain.RateTable{
		BaseCode: payload.BaseCode,
		Rates:    rates,
	}, nil
}
