//go:build integration

package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests expect the API server to be running, e.g. via `go run ./cmd/api`
// with AUTO_MIGRATE=true. Override the address with API_BASE_URL.
func apiBaseURL() string {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

type apiClient struct {
	t     *testing.T
	http  *http.Client
	token string
}

func newAPIClient(t *testing.T) *apiClient {
	return &apiClient{t: t, http: &http.Client{Timeout: 10 * time.Second}}
}

func (c *apiClient) call(method, path string, payload any) (int, map[string]any) {
	c.t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(c.t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, apiBaseURL()+path, &body)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	result := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func (c *apiClient) register(name string) string {
	c.t.Helper()
	code, body := c.call("POST", "/api/auth/register", map[string]string{
		"full_name": name,
		"email":     uuid.NewString()[:8] + "@example.com",
		"password":  "password123",
	})
	require.Equal(c.t, http.StatusCreated, code, body)
	c.token = body["token"].(string)
	return body["user"].(map[string]any)["id"].(string)
}

func TestEndToEndCaseFlow(t *testing.T) {
	reporter := newAPIClient(t)
	reporter.register("Reporter A")

	witness := newAPIClient(t)
	witness.register("Witness B")

	var caseID string
	t.Run("Reporter files a case", func(t *testing.T) {
		code, body := reporter.call("POST", "/api/missing-persons", map[string]any{
			"full_name":            "Jane Doe",
			"age":                  34,
			"gender":               "female",
			"last_seen_location":   "Harbor Street",
			"last_seen_date":       time.Now().AddDate(0, 0, -3).Format("2006-01-02"),
			"contact_name":         "John Doe",
			"contact_phone":        "+15550100",
			"contact_relationship": "brother",
		})
		require.Equal(t, http.StatusCreated, code, body)

		data := body["data"].(map[string]any)
		caseID = data["id"].(string)
		assert.Regexp(t, `^MP\d{4}\d{6}$`, data["case_number"])
		assert.Equal(t, "missing", data["status"])
	})
	require.NotEmpty(t, caseID)

	t.Run("Witness comments and reporter is notified", func(t *testing.T) {
		_, before := reporter.call("GET", "/api/notifications/unread-count", nil)

		code, body := witness.call("POST", "/api/comments", map[string]any{
			"missing_person_id": caseID,
			"comment":           "I think I saw her near the station.",
		})
		require.Equal(t, http.StatusCreated, code, body)

		_, after := reporter.call("GET", "/api/notifications/unread-count", nil)
		assert.Equal(t, before["count"].(float64)+1, after["count"])

		code, body = reporter.call("GET", "/api/notifications", nil)
		require.Equal(t, http.StatusOK, code)
		found := false
		for _, item := range body["data"].([]any) {
			n := item.(map[string]any)
			if n["type"] == "comment" && n["is_read"] == false {
				found = true
			}
		}
		assert.True(t, found, "expected an unread comment notification")
	})

	t.Run("Witness marks the case found", func(t *testing.T) {
		code, body := witness.call("PUT", "/api/missing-persons/"+caseID+"/status", map[string]any{
			"status":         "found",
			"found_location": "Central Station",
			"update_note":    "Found safe",
		})
		require.Equal(t, http.StatusOK, code, body)

		data := body["data"].(map[string]any)
		assert.Equal(t, "found", data["status"])
		assert.NotNil(t, data["found_date"])
	})

	t.Run("Reporter sees the found case", func(t *testing.T) {
		code, body := reporter.call("GET", "/api/missing-persons/"+caseID, nil)
		require.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "found", data["status"])
		assert.Equal(t, "Central Station", data["found_location"])

		code, body = reporter.call("GET", "/api/missing-persons/"+caseID+"/status", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, body["data"], 1)
	})

	t.Run("Non-admin cannot delete", func(t *testing.T) {
		code, _ := reporter.call("DELETE", "/api/missing-persons/"+caseID, nil)
		assert.Equal(t, http.StatusForbidden, code)
	})
}

func TestEndToEndLocationFlow(t *testing.T) {
	user := newAPIClient(t)
	user.register("Tracked User")

	captured := time.Now().UTC().Truncate(time.Second)
	fix := map[string]any{"latitude": -6.2, "longitude": 106.8, "accuracy": 10, "captured_at": captured}

	code, body := user.call("POST", "/api/location/update", fix)
	require.Equal(t, http.StatusOK, code, body)

	// Replaying the same fix must not duplicate history.
	code, _ = user.call("POST", "/api/location/update", fix)
	require.Equal(t, http.StatusOK, code)

	code, _ = user.call("POST", "/api/location/update", map[string]any{"latitude": 91, "longitude": 0})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = user.call("GET", "/api/location/history", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["history"], 1)

	code, _ = user.call("GET", "/api/location/users", nil)
	assert.Equal(t, http.StatusForbidden, code)
}
