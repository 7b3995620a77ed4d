package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"ngekos-server/utils"
)

// newTestApp wires the handlers whose failure paths do not touch the
// database, behind a real JWT verifier. The app must be built before
// it can serve requests directly.
func newTestApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()
	app.Validator = validator.New()

	verifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	auth := verifier.Verify(func() interface{} { return new(utils.AccessToken) })

	app.Get("/api/auth/me", auth, Me)
	app.Get("/api/kos", ListKos)
	app.Post("/api/bookings", auth, CreateBooking)
	app.Post("/api/reviews", auth, CreateReview)
	app.Put("/api/notifications", auth, UpdateNotifications)
	app.Post("/api/upload", auth, UploadImage)

	if err := app.Build(); err != nil {
		t.Fatalf("building test app: %v", err)
	}
	return app
}

func signTestToken() string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), utils.TokenLifetime)
	token, _ := signer.Sign(utils.AccessToken{ID: 1, Username: "budi", Email: "budi@example.com", Role: "user"})
	return string(token)
}

func doJSON(t *testing.T, app *iris.Application, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func assertEnvelopeError(t *testing.T, body, wantCode string) {
	t.Helper()
	if !strings.Contains(body, `"success":false`) {
		t.Errorf("expected error envelope, got %s", body)
	}
	if !strings.Contains(body, wantCode) {
		t.Errorf("expected error code %s, got %s", wantCode, body)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestMeAnswersFromClaims(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", "", signTestToken())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	body := resp.Body.String()
	for _, want := range []string{`"success":true`, `"username":"budi"`, `"email":"budi@example.com"`, `"role":"user"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in body %s", want, body)
		}
	}
}
