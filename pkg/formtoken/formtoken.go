// Package formtoken issues and verifies anti-forgery tokens for the booking
// form.
//
// A token is bound to the visitor session and carries an expiry:
//
//	base64url(expiresUnix) + "." + base64url(HMAC-SHA256(secret, sessionID|expiresUnix))
//
// Verification recomputes the MAC for the presented session, so a token stolen
// from one session does not verify for another.
package formtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrTokenInvalid is returned for malformed or forged tokens.
	ErrTokenInvalid = errors.New("formtoken: token invalid")

	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("formtoken: token expired")
)

// Issuer issues and verifies session-bound form tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates an Issuer with the given secret and token lifetime.
func New(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// NewWithClock creates an Issuer with an injectable clock for tests.
func NewWithClock(secret string, ttl time.Duration, now func() time.Time) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue creates a new token bound to sessionID.
func (i *Issuer) Issue(sessionID string) string {
	expires := i.now().Add(i.ttl).Unix()
	exp := strconv.FormatInt(expires, 10)
	mac := i.sign(sessionID, exp)
	return base64.RawURLEncoding.EncodeToString([]byte(exp)) + "." + base64.RawURLEncoding.EncodeToString(mac)
}

// Verify checks that token was issued for sessionID and has not expired.
func (i *Issuer) Verify(sessionID, token string) error {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return ErrTokenInvalid
	}

	expBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return fmt.Errorf("%w: bad expiry encoding", ErrTokenInvalid)
	}
	mac, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("%w: bad signature encoding", ErrTokenInvalid)
	}

	exp := string(expBytes)
	if !hmac.Equal(mac, i.sign(sessionID, exp)) {
		return ErrTokenInvalid
	}

	expires, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad expiry value", ErrTokenInvalid)
	}
	if i.now().Unix() > expires {
		return ErrTokenExpired
	}
	return nil
}

func (i *Issuer) sign(sessionID, exp string) []byte {
	h := hmac.New(sha256.New, i.secret)
	h.Write([]byte(sessionID))
	h.Write([]byte{'|'})
	h.Write([]byte(exp))
	return h.Sum(nil)
}
