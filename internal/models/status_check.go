package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck represents a document in the status_checks collection.
// Records are append-only: once inserted they are never updated or deleted.
// The struct intentionally has no _id mapping, so reads never leak the
// storage-internal identifier.
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`                   // Generated UUID
	ClientName string    `json:"client_name" bson:"client_name"` // Reporting client
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`     // Creation time, UTC
	Status     string    `json:"status" bson:"status"`
	Platform   string    `json:"platform" bson:"platform"`
	Version    string    `json:"version,omitempty" bson:"version,omitempty"`
}

// NewStatusCheck builds a StatusCheck with a generated id and timestamp,
// applying defaults for the optional fields.
func NewStatusCheck(clientName string, platform, version *string) StatusCheck {
	check := StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
		Status:     StatusActive,
		Platform:   PlatformWeb,
		Version:    DefaultVersion,
	}
	if platform != nil && *platform != "" {
		check.Platform = *platform
	}
	if version != nil && *version != "" {
		check.Version = *version
	}
	return check
}
