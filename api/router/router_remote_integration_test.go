package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	config "github.com/tbeaudouin05/stripe-facade/api/config"
)

// Remote HTTP integration tests against a deployed facade. They run only when
// INTEGRATION_BASE_URL is configured.

func remoteBaseURL(t *testing.T) string {
	t.Helper()
	cfg, err := config.LoadConfig()
	if err != nil || cfg.IntegrationBaseURL == "" {
		t.Skip("INTEGRATION_BASE_URL not configured")
	}
	return cfg.IntegrationBaseURL
}

func TestCreateSubscriptionHTTP_Remote_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	base := remoteBaseURL(t)

	payload := map[string]any{"customer_id": "cus_unknown", "plan_id": "plan_unknown", "quantity": 0}
	b, _ := json.Marshal(payload)
	resp, err := http.Post(base+"/v1/subscriptions", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", resp.StatusCode)
	}
}

func TestCreatePlanHTTP_Remote_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	base := remoteBaseURL(t)

	payload := map[string]any{"name": "Remote Test Plan", "amount": 4500, "interval": "fortnight", "interval_count": 1}
	b, _ := json.Marshal(payload)
	resp, err := http.Post(base+"/v1/plans", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Fatalf("expected failure status for invalid interval, got %d", resp.StatusCode)
	}
}
