package models

import "time"

// SystemStats is a derived snapshot assembled from independent count queries.
// It is recomputed on every request and never persisted. The counts are not
// taken atomically, so concurrent writes may skew a snapshot.
type SystemStats struct {
	TotalUsers        int64     `json:"total_users"`
	ActiveSessions    int64     `json:"active_sessions"`
	TotalStatusChecks int64     `json:"total_status_checks"`
	WebUsers          int64     `json:"web_users"`
	MobileUsers       int64     `json:"mobile_users"`
	LastUpdated       time.Time `json:"last_updated"`
}
