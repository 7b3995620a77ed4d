package utils

import (
	"context"
	"crypto/rand"
	"os"
	"time"

	"github.com/kataras/iris/v12/middleware/jwt"

	"ngekos-server/storage"
)

var bgContext = context.Background()

// TokenLifetime is the access token validity window.
const TokenLifetime = 7 * 24 * time.Hour

// AccessToken carries enough identity that protected routes never
// re-query the store for the caller.
type AccessToken struct {
	ID       uint   `json:"ID"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func CreateToken(id uint, username, email, role string) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), TokenLifetime)

	claims := AccessToken{
		ID:       id,
		Username: username,
		Email:    email,
		Role:     role,
	}

	token, err := signer.Sign(claims)
	if err != nil {
		return "", err
	}

	return string(token), nil
}

// RevokeToken blocklists a still-valid token in Redis until it would
// have expired anyway.
func RevokeToken(token string) error {
	return storage.Redis.Set(bgContext, revokedKey(token), "true", TokenLifetime).Err()
}

func IsTokenRevoked(token string) bool {
	val, err := storage.Redis.Get(bgContext, revokedKey(token)).Result()
	return err == nil && val == "true"
}

func revokedKey(token string) string {
	return "revoked:" + token
}

// GenerateShortToken returns a URL-safe random hex string (n bytes, 2n chars).
func GenerateShortToken(n int) string {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	const hex = "0123456789abcdef"
	out := make([]byte, n*2)
	for i, v := range b {
		out[i*2] = hex[v>>4]
		out[i*2+1] = hex[v&0x0f]
	}
	return string(out)
}
