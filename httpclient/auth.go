package httpclient

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ParthKapoor-dev/better-axios/logger"
)

// SetAuthToken stores the bearer credential attached to subsequent requests.
// Tokens that parse as JWTs have their expiry recorded so requests carrying
// an expired token can be flagged in the logs.
func (c *Client) SetAuthToken(token string) {
	c.authMu.Lock()
	c.token = token
	c.tokenExp = jwtExpiry(token)
	c.authMu.Unlock()
	c.log.Debug("auth token updated", logger.Fields("token_set", token != ""))
}

// ClearAuthToken clears the stored credential. Subsequent requests carry no
// auth header.
func (c *Client) ClearAuthToken() {
	c.authMu.Lock()
	c.token = ""
	c.tokenExp = time.Time{}
	c.authMu.Unlock()
	c.log.Debug("auth token cleared")
}

// AuthToken returns the currently stored credential, or "" when unset.
func (c *Client) AuthToken() string {
	c.authMu.RLock()
	defer c.authMu.RUnlock()
	return c.token
}

// authState snapshots the token and its recorded expiry in one read.
func (c *Client) authState() (string, time.Time) {
	c.authMu.RLock()
	defer c.authMu.RUnlock()
	return c.token, c.tokenExp
}

// jwtExpiry returns the exp claim of a JWT-shaped token without verifying
// its signature. Opaque tokens yield the zero time.
func jwtExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
