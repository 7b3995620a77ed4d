package routes

import (
	"net/http"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"ngekos-server/storage"
	"ngekos-server/utils"
)

// newAuthTestApp mirrors the production token lifecycle: a revocation
// check on /me but not on /logout, backed by an in-process redis.
func newAuthTestApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	mr := miniredis.RunT(t)
	storage.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	app := iris.New()
	app.Validator = validator.New()

	verifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	auth := verifier.Verify(func() interface{} { return new(utils.AccessToken) })

	app.Get("/api/auth/me", auth, utils.TokenNotRevokedMiddleware, Me)
	app.Post("/api/auth/logout", auth, Logout)

	if err := app.Build(); err != nil {
		t.Fatalf("building test app: %v", err)
	}
	return app
}

func TestLogoutIsIdempotent(t *testing.T) {
	app := newAuthTestApp(t)
	token := signTestToken()

	for i := 1; i <= 2; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", "", token)
		if resp.Code != http.StatusOK {
			t.Fatalf("logout call %d: expected 200, got %d: %s", i, resp.Code, resp.Body.String())
		}
	}
}

func TestLogoutRevokesTokenForProtectedRoutes(t *testing.T) {
	app := newAuthTestApp(t)
	token := signTestToken()

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", "", token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 before logout, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, app, http.MethodPost, "/api/auth/logout", "", token)
	if resp.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", "", token)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "AUTHENTICATION_ERROR")
}
