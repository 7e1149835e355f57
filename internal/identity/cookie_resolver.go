package identity

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookie = "vb_session"

type sessionClaims struct {
	jwt.RegisteredClaims
}

// CookieResolver stores the active conversation id inside a server-signed
// session cookie, so no server-side binding state survives between requests.
type CookieResolver struct {
	secret []byte
	ttl    time.Duration
}

func NewCookieResolver(secret string, ttl time.Duration) *CookieResolver {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CookieResolver{secret: []byte(secret), ttl: ttl}
}

func (c *CookieResolver) Active(r *http.Request) (string, bool) {
	ck, err := r.Cookie(sessionCookie)
	if err != nil || ck.Value == "" {
		return "", false
	}

	claims := &sessionClaims{}
	tok, err := jwt.ParseWithClaims(ck.Value, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || tok == nil || !tok.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func (c *CookieResolver) Bind(w http.ResponseWriter, _ *http.Request, conversationID string) {
	now := time.Now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   conversationID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
