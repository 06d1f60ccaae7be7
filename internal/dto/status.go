package dto

import "time"

// StatusResponse is the wire shape returned by GET /status.
// LastRefreshedAt is null before the first successful refresh.
type StatusResponse struct {
	TotalCountries  int64   `json:"total_countries"`
	LastRefreshedAt *string `json:"last_refreshed_at"`
}

// NewStatusResponse builds a StatusResponse from the country count and the
// optional status timestamp.
func NewStatusResponse(total int64, refreshedAt *time.Time) StatusResponse {
	resp := StatusResponse{TotalCountries: total}
	if refreshedAt != nil {
		s := refreshedAt.UTC().Format(time.RFC3339Nano)
		resp.LastRefreshedAt = &s
	}
	return resp
}
