package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a document in the users collection. Email is unique across
// the collection; last_active is the only field mutated after creation.
type User struct {
	ID         string    `json:"id" bson:"id"` // Generated UUID
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"` // Unique
	Platform   string    `json:"platform" bson:"platform"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	LastActive time.Time `json:"last_active" bson:"last_active"`
	IsActive   bool      `json:"is_active" bson:"is_active"`
}

// NewUser builds a User with generated id and timestamps. New users are
// active and default to the web platform.
func NewUser(name, email string, platform *string) User {
	now := time.Now().UTC()
	user := User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Platform:   PlatformWeb,
		CreatedAt:  now,
		LastActive: now,
		IsActive:   true,
	}
	if platform != nil && *platform != "" {
		user.Platform = *platform
	}
	return user
}
