package api

import (
	"context"

	"github.com/rpupo63/ai-portfolio-site/auth"
)

type keyType string

const claimsKey keyType = "claims"

// ctxWithClaims stores the verified token claims for downstream handlers
func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ctxGetClaims returns nil when the request was not authenticated
func ctxGetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}
