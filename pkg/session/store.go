// Package session persists conversation.State between requests of one
// browser session.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"guidechat/internal/conversation"
	"guidechat/pkg/utils"
)

// Store loads and saves the conversation state of the request's session.
// A missing, tampered or expired session loads as a fresh state.
type Store interface {
	Load(c *gin.Context) conversation.State
	Save(c *gin.Context, state conversation.State) error
	// Reset discards the previous session and stores state as a new one.
	Reset(c *gin.Context, state conversation.State) error
}

type CookieOptions struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// cookieJar is the cookie handling shared by both stores.
type cookieJar struct {
	signer *utils.Signer
	opts   CookieOptions
}

func (j cookieJar) read(c *gin.Context) (*utils.SessionClaims, bool) {
	raw, err := c.Cookie(j.opts.Name)
	if err != nil || raw == "" {
		return nil, false
	}
	claims, err := j.signer.ValidateToken(raw)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// maxCookieBytes is the per-cookie limit browsers enforce; larger
// Set-Cookie headers are silently dropped.
const maxCookieBytes = 4096

func (j cookieJar) write(c *gin.Context, claims utils.SessionClaims) error {
	token, err := j.signer.CreateToken(claims, j.opts.TTL)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     j.opts.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(j.opts.TTL.Seconds()),
		Secure:   j.opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if size := len(cookie.String()); size > maxCookieBytes {
		return fmt.Errorf("%w: %d bytes", utils.ErrSessionTooLarge, size)
	}
	http.SetCookie(c.Writer, cookie)
	return nil
}
