package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/websap/websap-api/internal/core/domain"
)

// Auth validates the bearer token and injects identity into context.
//
// Two token shapes are accepted:
//   - Placeholder demo tokens ("simulated-jwt-token-<ts>"), verified by
//     prefix only. They carry no claims, so the request runs as the
//     demo administrator.
//   - Signed HS256 JWTs with user_id/email/roles/restaurante_id claims.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			token := parts[1]

			if strings.HasPrefix(token, domain.SimulatedTokenPrefix) {
				c.Set("user_id", int64(1))
				c.Set("email", "admin@example.com")
				c.Set("roles", []string{domain.RoleAdmin})
				c.Set("restaurante_id", int64(1))
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", claimInt64(claims, "user_id"))
			c.Set("email", claimString(claims, "email"))
			c.Set("roles", claimStrings(claims, "roles"))
			c.Set("restaurante_id", claimInt64(claims, "restaurante_id"))

			return next(c)
		}
	}
}

// JSON numbers decode as float64; ids are transported that way.
func claimInt64(claims jwt.MapClaims, key string) int64 {
	if f, ok := claims[key].(float64); ok {
		return int64(f)
	}
	return 0
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

func claimStrings(claims jwt.MapClaims, key string) []string {
	raw, ok := claims[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
