package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/charapedia/charapedia-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

func newAuthTestRouter(jwtManager *jwt.Manager) (*gin.Engine, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.Use(JWTAuth(jwtManager))
	r.GET("/me", func(c *gin.Context) {
		p := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "level": p.Level})
	})
	return r, w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	mgr := jwt.NewManager("test-secret", time.Hour)
	token, err := mgr.GenerateToken(42, "tester", 1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r, w := newAuthTestRouter(mgr)
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	mgr := jwt.NewManager("test-secret", time.Hour)

	r, w := newAuthTestRouter(mgr)
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	mgr := jwt.NewManager("test-secret", time.Hour)

	r, w := newAuthTestRouter(mgr)
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Token abcdef")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	other := jwt.NewManager("other-secret", time.Hour)
	token, _ := other.GenerateToken(42, "tester", 1)

	mgr := jwt.NewManager("test-secret", time.Hour)
	r, w := newAuthTestRouter(mgr)
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestOptionalJWTAuth_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	mgr := jwt.NewManager("test-secret", time.Hour)
	r.Use(OptionalJWTAuth(mgr))
	r.GET("/test", func(c *gin.Context) {
		if GetPrincipal(c) != nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestGetPrincipal_Admin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("userID", uint64(7))
	c.Set("nickname", "mod")
	c.Set("level", domain.AdminLevel)

	p := GetPrincipal(c)
	if p == nil {
		t.Fatal("expected principal")
	}
	if !p.IsAdmin() {
		t.Errorf("expected admin principal, level=%d", p.Level)
	}
}
