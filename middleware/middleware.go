package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Claims is the admin session token payload.
type Claims struct {
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// AdminGuard signs and verifies the admin session token. There is a single
// admin identity; the only claim that matters is isAdmin.
type AdminGuard struct {
	secret []byte
	ttl    time.Duration
}

func NewAdminGuard(secret []byte, ttl time.Duration) *AdminGuard {
	return &AdminGuard{secret: secret, ttl: ttl}
}

// IssueToken mints a signed admin token.
func (g *AdminGuard) IssueToken() (string, error) {
	now := time.Now()
	claims := Claims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// TTL is the token lifetime, exposed so the login handler can set a
// matching cookie expiry.
func (g *AdminGuard) TTL() time.Duration { return g.ttl }

// ValidateToken parses and verifies a raw token string.
func (g *AdminGuard) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireAdmin guards administrative routes. The token is read from the
// "token" cookie the login handler sets, with an Authorization Bearer
// header as fallback for API clients.
func (g *AdminGuard) RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		claims, err := g.ValidateToken(tokenString)
		if err != nil || !claims.IsAdmin {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next(w, r, ps)
	}
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	return ""
}
