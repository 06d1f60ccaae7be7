package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/country-insights/country_insights_app/internal/apperrors"
	"github.com/country-insights/country_insights_app/internal/core/domain"
)

// sourceName appears in error messages and drives the external-source
// failure classification.
const sourceName = "restcountries.com"

// Client fetches country metadata from the REST Countries API.
type Client struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
}

// NewClient creates a metadata client. Every fetch is bounded by timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		url:        url,
		timeout:    timeout,
	}
}

type currencyPayload struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type countryPayload struct {
	Name       string            `json:"name"`
	Capital    *string           `json:"capital"`
	Region     *string           `json:"region"`
	Population int64             `json:"population"`
	Flag       *string           `json:"flag"`
	Currencies []currencyPayload `json:"currencies"`
}

// FetchCountries performs a single bounded request against the metadata
// source. It returns the ordered country list, or an
// apperrors.SourceError: Timeout when the bound elapsed, otherwise
// unavailable (transport failure, non-2xx status, or undecodable body).
// There are no retries.
func (c *Client) FetchCountries(ctx context.Context) ([]domain.RawCountry, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperrors.NewSourceUnavailable(sourceName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewSourceTimeout(sourceName, err)
		}
		return nil, apperrors.NewSourceUnavailable(sourceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewSourceUnavailable(sourceName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload []countryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewSourceTimeout(sourceName, err)
		}
		return nil, apperrors.NewSourceUnavailable(sourceName, fmt.Errorf("invalid response body: %w", err))
	}

	countries := make([]domain.RawCountry, len(payload))
	for i, p := range payload {
		currencies := make([]domain.CurrencyDescriptor, len(p.Currencies))
		for j, cur := range p.Currencies {
			currencies[j] = domain.CurrencyDescriptor{
				Code:   cur.Code,
				Name:   cur.Name,
				Symbol: cur.Symbol,
			}
		}
		countries[i] = domain.RawCountry{
			Name:       p.Name,
			Capital:    p.Capital,
			Region:     p.Region,
			Population: p.Population,
			FlagURL:    p.Flag,
			Currencies: currencies,
		}
	}
	return countries, nil
}
