package dto

import "time"

// RefreshResult is the outcome of a successful refresh run.
type RefreshResult struct {
	TotalCountries  int64     `json:"total_countries"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// RefreshResponse is the wire shape returned by POST /countries/refresh.
type RefreshResponse struct {
	Message         string `json:"message"`
	TotalCountries  int64  `json:"total_countries"`
	LastRefreshedAt string `json:"last_refreshed_at"`
}

// ToRefreshResponse converts a refresh result to its wire shape.
func ToRefreshResponse(r *RefreshResult) RefreshResponse {
	return RefreshResponse{
		Message:         "Countries data refreshed successfully",
		TotalCountries:  r.TotalCountries,
		LastRefreshedAt: r.LastRefreshedAt.UTC().Format(time.RFC3339Nano),
	}
}
