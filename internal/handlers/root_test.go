package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootHandler(t *testing.T) {
	handler := NewRootHandler("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp RootResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Web-Mobile Connect API", resp.Message)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "active", resp.Status)
}
