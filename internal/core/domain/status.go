package domain

import "time"

// SystemStatus is the singleton record holding the timestamp of the most
// recent successful refresh. It is created on the first refresh and
// overwritten on every subsequent one, never deleted.
type SystemStatus struct {
	LastRefreshedAt time.Time
}
