package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serveAdminRequest(t *testing.T, level int, setLevel bool) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	if setLevel {
		r.Use(func(c *gin.Context) {
			c.Set("level", level)
			c.Next()
		})
	}
	r.Use(RequireAdmin())
	r.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req, _ := http.NewRequest("GET", "/admin", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRequireAdmin_Allowed(t *testing.T) {
	if code := serveAdminRequest(t, 10, true); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
}

func TestRequireAdmin_Denied(t *testing.T) {
	if code := serveAdminRequest(t, 5, true); code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}
}

func TestRequireAdmin_Anonymous(t *testing.T) {
	if code := serveAdminRequest(t, 0, false); code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}
}
