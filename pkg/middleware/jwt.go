package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"krishi/pkg/auth/token"
	"krishi/pkg/envelope"
)

const identityKey = "identity"

// JWT reads "Authorization: Bearer <token>" and stores the verified identity on
// the context. Missing, malformed, expired or badly signed tokens get the same
// 401 envelope.
func JWT(tokens *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return envelope.Error(c, "Unauthorized", http.StatusUnauthorized)
			}
			id, err := tokens.Verify(raw)
			if err != nil {
				return envelope.Error(c, "Unauthorized", http.StatusUnauthorized)
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity JWT stored, if any.
func IdentityFrom(c echo.Context) (token.Identity, bool) {
	id, ok := c.Get(identityKey).(token.Identity)
	return id, ok
}

func bearer(h string) (string, bool) {
	scheme, raw, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}
