package routes

import (
	"net/http"
	"testing"
)

func TestContainsProfanity(t *testing.T) {
	cases := []struct {
		comment string
		want    bool
	}{
		{"Kamar bersih dan nyaman, recommended!", false},
		{"dasar ANJING tempat ini", true},
		{"what the Fuck is this place", true},
		{"pemiliknya bangsat banget", true},
		{"tempat yang bagus", false},
	}
	for _, c := range cases {
		if got := containsProfanity(c.comment); got != c.want {
			t.Errorf("containsProfanity(%q) = %v, want %v", c.comment, got, c.want)
		}
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews",
		`{"kosId": 1, "rating": 6}`, signTestToken())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating 6, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "VALIDATION_ERROR")
}

func TestCreateReviewRejectsShortComment(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews",
		`{"kosId": 1, "rating": 4, "comment": "   ok   "}`, signTestToken())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short comment, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "VALIDATION_ERROR")
}

func TestCreateReviewCountsCommentLengthInRunes(t *testing.T) {
	app := newTestApp(t)

	// 5 runes but 10 bytes: must still be too short.
	resp := doJSON(t, app, http.MethodPost, "/api/reviews",
		`{"kosId": 1, "rating": 4, "comment": "ééééé"}`, signTestToken())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 5-rune comment, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "VALIDATION_ERROR")
}

func TestCreateReviewRejectsProfanity(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews",
		`{"kosId": 1, "rating": 4, "comment": "pemiliknya bangsat banget sih"}`, signTestToken())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for profane comment, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "VALIDATION_ERROR")
}
