package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/student-admin-panel/pkg/config"
)

const tokenClaim = "tok"

// CookieStore keeps the upstream bearer token inside a locally signed JWT
// cookie, so the persisted value cannot be tampered with client-side.
type CookieStore struct {
	name   string
	secret []byte
	ttl    time.Duration
}

// NewCookieStore constructs the cookie-backed store.
func NewCookieStore(cfg config.SessionConfig) *CookieStore {
	return &CookieStore{
		name:   cfg.CookieName,
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// Token extracts the upstream token from the session cookie.
func (s *CookieStore) Token(c *gin.Context) string {
	raw, err := c.Cookie(s.name)
	if err != nil || raw == "" {
		return ""
	}

	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ""
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	token, _ := claims[tokenClaim].(string)
	return token
}

// Login wraps the token in a signed cookie that survives browser restarts.
func (s *CookieStore) Login(c *gin.Context, token string) error {
	claims := jwt.MapClaims{
		tokenClaim: token,
		"iat":      time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}

	c.SetCookie(s.name, signed, int(s.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Logout expires the session cookie.
func (s *CookieStore) Logout(c *gin.Context) {
	c.SetCookie(s.name, "", -1, "/", "", false, true)
}
