package token

import (
	"net/http"
)

// CookieSetter writes and clears the access token cookie. The token
// travels both in the response body and as a cookie so browser and API
// clients share one login surface.
type CookieSetter struct {
	path     string
	httpOnly bool
	secure   bool
	sameSite http.SameSite
}

// NewCookieSetter creates a cookie setter scoped to the site root
func NewCookieSetter(httpOnly, secure bool) *CookieSetter {
	return &CookieSetter{
		path:     "/",
		httpOnly: httpOnly,
		secure:   secure,
		sameSite: http.SameSiteLaxMode,
	}
}

// SetAccessCookie writes the access token cookie with the token's expiry
func (c *CookieSetter) SetAccessCookie(w http.ResponseWriter, value TokenValue) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenName,
		Path:     c.path,
		Value:    value.Token,
		Expires:  value.Expiry,
		HttpOnly: c.httpOnly,
		Secure:   c.secure,
		SameSite: c.sameSite,
	})
}

// ClearAccessCookie expires the access token cookie immediately
func (c *CookieSetter) ClearAccessCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenName,
		Path:     c.path,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: c.httpOnly,
		Secure:   c.secure,
	})
}
