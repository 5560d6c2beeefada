package handlers

import "net/http"

// RootResponse is the service banner.
// swagger:model RootResponse
type RootResponse struct {
	// Service name
	// default: Web-Mobile Connect API
	Message string `json:"message"`

	// API version
	// default: 1.0.0
	Version string `json:"version"`

	// Service status
	// default: active
	Status string `json:"status"`
}

// NewRootHandler returns an HTTP handler for the service banner.
// @Summary Service banner
// @Description Returns the service name, version and status
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.RootResponse "Service banner"
// @Router / [get]
func NewRootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Message: "Web-Mobile Connect API",
			Version: version,
			Status:  "active",
		})
	}
}
