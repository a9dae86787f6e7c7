package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sajid85/village-mart-customer-frontend/models"
)

// TokenCookie is the well-known key the bearer token is persisted under.
const TokenCookie = "token"

const tokenCookieMaxAge = int(30 * 24 * time.Hour / time.Second)

// SessionState is the client's resolved authentication state.
type SessionState string

const (
	SessionUnknown       SessionState = "unknown"
	SessionChecking      SessionState = "checking"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

// Session is the resolved authentication state for one request. There is no
// terminal state: it is re-evaluated on every page that depends on auth.
type Session struct {
	State SessionState
	Token string
	User  *models.User
}

func (s *Session) LoggedIn() bool {
	return s.State == SessionAuthenticated
}

// ProfileFetcher is the slice of the backend client the session layer needs.
type ProfileFetcher interface {
	GetProfile(ctx context.Context, token string) (*models.User, error)
}

// SessionService resolves, establishes and tears down sessions. It is
// constructed once at app start and injected into every controller; nothing
// else reads the token cookie.
type SessionService struct {
	api ProfileFetcher
}

func NewSessionService(api ProfileFetcher) *SessionService {
	return &SessionService{api: api}
}

// Resolve walks the state machine for the current request:
// unknown → checking → authenticated | anonymous. A missing cookie resolves
// to anonymous without any profile fetch; a rejected profile fetch resolves
// to anonymous and clears the stored token.
func (s *SessionService) Resolve(c *gin.Context) *Session {
	sess := &Session{State: SessionUnknown}

	token, err := c.Cookie(TokenCookie)
	if err != nil || token == "" {
		sess.State = SessionAnonymous
		return sess
	}

	sess.Token = token
	sess.State = SessionChecking

	// The backend signs its tokens; we cannot verify them, but a readable
	// expired claim saves a doomed round trip.
	if tokenExpired(token) {
		log.Printf("[session] stored token expired, clearing")
		s.Clear(c)
		sess.Token = ""
		sess.State = SessionAnonymous
		return sess
	}

	user, err := s.api.GetProfile(c.Request.Context(), token)
	if err != nil {
		log.Printf("[session] profile check failed: %v", err)
		s.Clear(c)
		sess.Token = ""
		sess.State = SessionAnonymous
		return sess
	}

	sess.User = user
	sess.State = SessionAuthenticated
	return sess
}

// Establish stores a freshly issued token and validates it immediately, the
// same check every later page load performs. A token the backend rejects is
// discarded rather than persisted.
func (s *SessionService) Establish(c *gin.Context, token string) (*Session, error) {
	user, err := s.api.GetProfile(c.Request.Context(), token)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	c.SetCookie(TokenCookie, token, tokenCookieMaxAge, "/", "", false, true)
	return &Session{State: SessionAuthenticated, Token: token, User: user}, nil
}

// Clear removes the stored token. Any state moves to anonymous on logout.
func (s *SessionService) Clear(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
}

// tokenExpired reports whether the token is a parseable JWT whose expiry
// has passed. Opaque tokens go to the backend as-is.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// SessionFromContext returns the session stored by the auth middleware.
func SessionFromContext(c *gin.Context) *Session {
	if v, exists := c.Get("session"); exists {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	return &Session{State: SessionAnonymous}
}
