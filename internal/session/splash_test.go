package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplashSeen_FirstVisitSetsCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.False(t, SplashSeen(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, splashCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.Equal(t, 0, cookies[0].MaxAge, "session-scoped, no Max-Age")
}

func TestSplashSeen_RepeatVisit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: splashCookie, Value: "abc"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.True(t, SplashSeen(c))
	assert.Empty(t, rec.Result().Cookies(), "no new cookie issued")
}
