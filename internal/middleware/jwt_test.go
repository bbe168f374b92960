package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", JWTAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"member_id": MemberID(c)})
	})
	return r
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	r := newRouter([]byte("test-secret"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthRejectsBadToken(t *testing.T) {
	r := newRouter([]byte("test-secret"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthAcceptsSignedToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := NewToken(secret, 42, "Coach")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	r := newRouter(secret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if want := `"member_id":42`; !strings.Contains(w.Body.String(), want) {
		t.Fatalf("body %q missing %q", w.Body.String(), want)
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	token, err := NewToken([]byte("other-secret"), 42, "Coach")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	r := newRouter([]byte("test-secret"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
