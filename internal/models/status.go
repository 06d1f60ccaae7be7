package models

import "time"

// SystemStatus is the single-row system_status table. The id column is
// constrained to 1 so the upsert always targets the same row.
type SystemStatus struct {
	ID              int16     `json:"id"`
	LastRefreshedAt time.Time `json:"lastRefreshedAt"`
}
