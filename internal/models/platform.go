package models

// Platform values recognized by the API.
const (
	PlatformWeb    = "web"
	PlatformMobile = "mobile"
)

// Defaults applied when a create request omits optional fields.
const (
	StatusActive   = "active"
	DefaultVersion = "1.0.0"
)
