// Package session binds opaque session identifiers to the session_id
// cookie. The cookie value for a registered user is the same identifier the
// credential store holds, so identity round-trips with no server-side state.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CookieName = "session_id"

const maxAgeSeconds = 24 * 60 * 60

// Issue mints a fresh session identifier, attaches it to the response and
// returns it for reuse (sign-up stores it alongside the account).
func Issue(c *gin.Context) string {
	sid := uuid.NewString()
	set(c, sid, maxAgeSeconds)
	return sid
}

// Bind attaches an existing identifier to the response (sign-in).
func Bind(c *gin.Context, sid string) {
	set(c, sid, maxAgeSeconds)
}

// Current inspects the inbound cookie.
func Current(c *gin.Context) (string, bool) {
	sid, err := c.Cookie(CookieName)
	if err != nil || sid == "" {
		return "", false
	}
	return sid, true
}

// Clear overwrites the cookie with an empty value and immediate expiry.
func Clear(c *gin.Context) {
	set(c, "", -1)
}

func set(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", true, true)
}
