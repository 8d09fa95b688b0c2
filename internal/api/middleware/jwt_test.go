package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/foliochat/foliochat/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub, email string, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newTestRouter(secret string, captured *models.CallerIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(secret), func(c *gin.Context) {
		if v, ok := c.Get(CallerKey); ok {
			*captured = v.(models.CallerIdentity)
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthValidToken(t *testing.T) {
	var caller models.CallerIdentity
	r := newTestRouter(testSecret, &caller)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u1", "u1@example.com", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if caller.UserID != "u1" || caller.Email != "u1@example.com" {
		t.Errorf("caller = %+v", caller)
	}
}

func TestJWTAuthRejects(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"empty bearer":   "Bearer ",
		"wrong secret":   "Bearer " + signToken(t, "other-secret", "u1", "u1@example.com", time.Hour),
		"expired":        "Bearer " + signToken(t, testSecret, "u1", "u1@example.com", -time.Hour),
		"no subject":     "Bearer " + signToken(t, testSecret, "", "u1@example.com", time.Hour),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			var caller models.CallerIdentity
			r := newTestRouter(testSecret, &caller)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if caller.UserID != "" {
				t.Error("handler ran for rejected request")
			}
		})
	}
}
