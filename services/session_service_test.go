package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajid85/village-mart-customer-frontend/models"
)

type fakeProfileFetcher struct {
	calls int
	user  *models.User
	err   error
}

func (f *fakeProfileFetcher) GetProfile(ctx context.Context, token string) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func sessionTestContext(t *testing.T, cookie string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != "" {
		c.Request.AddCookie(&http.Cookie{Name: TokenCookie, Value: cookie})
	}
	return c, rec
}

func TestResolveNoCookieIsAnonymousWithoutProfileFetch(t *testing.T) {
	fake := &fakeProfileFetcher{}
	svc := NewSessionService(fake)
	c, _ := sessionTestContext(t, "")

	sess := svc.Resolve(c)

	assert.Equal(t, SessionAnonymous, sess.State)
	assert.False(t, sess.LoggedIn())
	assert.Zero(t, fake.calls)
}

func TestResolveValidTokenIsAuthenticated(t *testing.T) {
	fake := &fakeProfileFetcher{user: &models.User{ID: "u1", FirstName: "Aysha", LastName: "Rahman"}}
	svc := NewSessionService(fake)
	c, _ := sessionTestContext(t, "opaque-token")

	sess := svc.Resolve(c)

	assert.Equal(t, SessionAuthenticated, sess.State)
	assert.True(t, sess.LoggedIn())
	assert.Equal(t, "opaque-token", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "Aysha Rahman", sess.User.FullName())
	assert.Equal(t, 1, fake.calls)
}

func TestResolveRejectedTokenClearsCookie(t *testing.T) {
	fake := &fakeProfileFetcher{err: &APIError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}}
	svc := NewSessionService(fake)
	c, rec := sessionTestContext(t, "stale-token")

	sess := svc.Resolve(c)

	assert.Equal(t, SessionAnonymous, sess.State)
	assert.Empty(t, sess.Token)
	assert.Nil(t, sess.User)

	cleared := clearedCookie(rec.Result().Cookies())
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestResolveExpiredTokenSkipsBackendRoundTrip(t *testing.T) {
	fake := &fakeProfileFetcher{user: &models.User{ID: "u1"}}
	svc := NewSessionService(fake)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	c, rec := sessionTestContext(t, signed)
	sess := svc.Resolve(c)

	assert.Equal(t, SessionAnonymous, sess.State)
	assert.Zero(t, fake.calls)
	require.NotNil(t, clearedCookie(rec.Result().Cookies()))
}

func TestEstablishRejectedTokenIsNotPersisted(t *testing.T) {
	fake := &fakeProfileFetcher{err: &APIError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}}
	svc := NewSessionService(fake)
	c, rec := sessionTestContext(t, "")

	sess, err := svc.Establish(c, "bad-token")

	require.Error(t, err)
	assert.Nil(t, sess)
	assert.Empty(t, rec.Result().Cookies())
}

func TestEstablishValidTokenSetsCookie(t *testing.T) {
	fake := &fakeProfileFetcher{user: &models.User{ID: "u1"}}
	svc := NewSessionService(fake)
	c, rec := sessionTestContext(t, "")

	sess, err := svc.Establish(c, "tok-123")

	require.NoError(t, err)
	assert.True(t, sess.LoggedIn())

	var stored *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == TokenCookie {
			stored = ck
		}
	}
	require.NotNil(t, stored)
	assert.Equal(t, "tok-123", stored.Value)
	assert.True(t, stored.HttpOnly)
}

func clearedCookie(cookies []*http.Cookie) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == TokenCookie && ck.MaxAge < 0 {
			return ck
		}
	}
	return nil
}
