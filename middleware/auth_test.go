package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajid85/village-mart-customer-frontend/models"
	"github.com/sajid85/village-mart-customer-frontend/services"
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

func protectedRouter(fake *fakeProfileFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := services.NewSessionService(fake)

	router := gin.New()
	router.GET("/dashboard", RequireAuth(sessions), func(c *gin.Context) {
		sess := services.SessionFromContext(c)
		c.String(http.StatusOK, "hello %s", sess.User.FirstName)
	})
	return router
}

func TestRequireAuthRedirectsAnonymousWithoutProfileFetch(t *testing.T) {
	fake := &fakeProfileFetcher{}
	router := protectedRouter(fake)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, fake.calls)
}

func TestRequireAuthRedirectsOnRejectedToken(t *testing.T) {
	fake := &fakeProfileFetcher{err: &services.APIError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}}
	router := protectedRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: services.TokenCookie, Value: "stale-token"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, 1, fake.calls)
}

func TestRequireAuthPassesSessionToHandler(t *testing.T) {
	fake := &fakeProfileFetcher{user: &models.User{ID: "u1", FirstName: "Aysha"}}
	router := protectedRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: services.TokenCookie, Value: "tok-123"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello Aysha", rec.Body.String())
}

func TestOptionalAuthDoesNotRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fake := &fakeProfileFetcher{}
	sessions := services.NewSessionService(fake)

	router := gin.New()
	router.GET("/", OptionalAuth(sessions), func(c *gin.Context) {
		sess := services.SessionFromContext(c)
		c.String(http.StatusOK, "logged_in=%v", sess.LoggedIn())
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "logged_in=false", rec.Body.String())
	assert.Zero(t, fake.calls)
}
