package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SetAuthCookies sets access and refresh tokens as HttpOnly cookies.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, accessToken, accessMaxAge, "/", "", false, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, refreshMaxAge, "/", "", false, true)
}

// ClearAuthCookies clears access and refresh token cookies.
func ClearAuthCookies(c *gin.Context) {
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", false, true)
}

// GetTokenFromCookie retrieves a token from a cookie, returning "" when unset.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
