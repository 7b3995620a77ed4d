package routes

import (
	"net/http"
	"testing"
)

func TestUpdateNotificationsRejectsUnknownAction(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/notifications",
		`{"action": "delete-all"}`, signTestToken())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "VALIDATION_ERROR")
}

func TestUpdateNotificationsRejectsMissingAction(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/notifications", `{}`, signTestToken())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing action, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "VALIDATION_ERROR")
}
