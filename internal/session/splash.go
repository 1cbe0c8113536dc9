// Package session holds the one piece of client session state the app
// keeps: whether the intro splash has been shown this browsing session.
package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const splashCookie = "rd_splash"

// SplashSeen reports whether this browsing session already saw the splash
// screen. The first call marks it seen by issuing a session-scoped cookie
// (no Max-Age, so it dies with the session).
func SplashSeen(c echo.Context) bool {
	if _, err := c.Cookie(splashCookie); err == nil {
		return true
	}

	c.SetCookie(&http.Cookie{
		Name:     splashCookie,
		Value:    uuid.NewString(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return false
}
