package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// TokenNotRevokedMiddleware rejects tokens that were blocklisted by a
// logout. Runs after the JWT verifier.
func TokenNotRevokedMiddleware(ctx iris.Context) {
	token := jwt.GetVerifiedToken(ctx)
	if token != nil && IsTokenRevoked(string(token.Token)) {
		CreateAuthenticationError("Token has been revoked", ctx)
		return
	}
	ctx.Next()
}
