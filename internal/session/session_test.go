package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rr.Result().Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatalf("no %s cookie set", CookieName)
	return nil
}

func TestIssue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	sid := Issue(c)
	if _, err := uuid.Parse(sid); err != nil {
		t.Fatalf("expected uuid session id, got %q: %v", sid, err)
	}

	ck := setCookie(t, rr)
	if ck.Value != sid {
		t.Fatalf("cookie value %q does not match issued id %q", ck.Value, sid)
	}
	if ck.MaxAge != 24*60*60 {
		t.Fatalf("unexpected max-age: %d", ck.MaxAge)
	}
	if !ck.HttpOnly || !ck.Secure || ck.Path != "/" {
		t.Fatalf("unexpected cookie attributes: %+v", ck)
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected lax same-site, got %v", ck.SameSite)
	}
}

func TestCurrent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := Current(c); ok {
		t.Fatalf("expected no session without cookie")
	}

	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "sid-1"})
	sid, ok := Current(c)
	if !ok || sid != "sid-1" {
		t.Fatalf("unexpected session: %q ok=%v", sid, ok)
	}
}

func TestClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	Clear(c)
	ck := setCookie(t, rr)
	if ck.Value != "" {
		t.Fatalf("expected empty cookie value, got %q", ck.Value)
	}
	if ck.MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got max-age %d", ck.MaxAge)
	}
}
