package pesapal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Layouts seen in expiryDate. Values without a zone are read as UTC.
var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var errNoExpiry = errors.New("token has no expiry date")

// ExpiresAt parses ExpiryDate.
func (t Token) ExpiresAt() (time.Time, error) {
	v := strings.TrimSpace(t.ExpiryDate)
	if v == "" {
		return time.Time{}, errNoExpiry
	}
	for _, layout := range expiryLayouts {
		if ts, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised expiry date %q", v)
}

// expiredAt reports whether now is strictly after the expiry instant. An
// expiry that cannot be parsed counts as expired.
func (t Token) expiredAt(now time.Time) bool {
	exp, err := t.ExpiresAt()
	if err != nil {
		return true
	}
	return now.After(exp)
}

// HasToken reports whether a non-empty token is cached.
func (c *Client) HasToken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != nil && c.token.Token != ""
}

// Token returns a copy of the cached token, or nil.
func (c *Client) Token() *Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil {
		return nil
	}
	t := *c.token
	return &t
}

// EnsureValidToken fetches a token when none is cached or the cached one has
// expired. A cached, unexpired token is reported as success without a fetch.
func (c *Client) EnsureValidToken(ctx context.Context) TokenStatus {
	c.mu.Lock()
	cached := c.token
	c.mu.Unlock()

	if cached != nil && cached.Token != "" && !cached.expiredAt(c.now()) {
		return TokenStatus{Success: true}
	}
	if cached != nil && cached.Token != "" {
		c.logger.Printf("[pesapal][token] cached token expired expiry=%s", cached.ExpiryDate)
	}

	res := c.RequestToken(ctx)
	if !res.Success {
		return TokenStatus{Err: res.Err}
	}
	return TokenStatus{Success: true, MadeNewToken: true}
}

// RequestToken exchanges the consumer key and secret for a bearer token and
// caches it. A response without a token is a failure even when it carries no
// error member.
func (c *Client) RequestToken(ctx context.Context) Result {
	payload := map[string]string{
		"consumer_key":    c.cfg.ConsumerKey,
		"consumer_secret": c.cfg.ConsumerSecret,
	}
	c.logger.Printf("[pesapal][token] request start")

	raw, err := c.do(ctx, http.MethodPost, pathRequestToken, payload, "")
	if err != nil {
		c.logger.Printf("[pesapal][token] request failed err=%v", err)
		return Result{Err: errorMessage(err)}
	}

	var tok Token
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &tok); err != nil {
			c.logger.Printf("[pesapal][token] decode failed err=%v", err)
			return Result{Err: fmt.Sprintf("decode token response: %v", err)}
		}
	}

	switch {
	case tok.Error.Present():
		c.logger.Printf("[pesapal][token] gateway error err=%s", tok.Error.Error())
		return Result{Err: tok.Error.Error()}
	case tok.Token != "":
		c.mu.Lock()
		c.token = &tok
		c.mu.Unlock()
		c.logger.Printf("[pesapal][token] request success expiry=%s", tok.ExpiryDate)
		return Result{Success: true}
	default:
		c.mu.Lock()
		c.token = nil
		c.mu.Unlock()
		c.logger.Printf("[pesapal][token] no token in response")
		return Result{Err: errUnknownToken}
	}
}

// bearer ensures a valid token and returns its value for the Authorization
// header. ok is false when no usable token could be obtained.
func (c *Client) bearer(ctx context.Context) (string, bool) {
	status := c.EnsureValidToken(ctx)
	if !status.Success {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil || c.token.Token == "" {
		return "", false
	}
	return c.token.Token, true
}
