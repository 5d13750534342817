package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recruitment-portal-backend/config"
	"recruitment-portal-backend/internal/delivery/http/middleware"
	v1 "recruitment-portal-backend/internal/delivery/http/v1"
	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
	"recruitment-portal-backend/pkg/token"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, reg *domain.Registration) (bool, error) {
	args := m.Called(ctx, reg)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAuthUsecase) CurrentAccount(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// fakeSubject stands in for the auth middleware and binds a token subject
// to the request context.
func fakeSubject(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), domain.KeyUsername, username)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func newAuthRouter(uc domain.AuthUsecase, username string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	public := r.Group("")
	protected := r.Group("")
	protected.Use(fakeSubject(username))
	tokens := token.NewService("test-secret", time.Hour)
	v1.NewAuthHandler(public, protected, uc, tokens, &config.Config{TokenTTLMinutes: 60})
	return r
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc := new(MockAuthUsecase)
	uc.On("Login", mock.Anything, domain.Credentials{Username: "ghost", Password: "Abc12345!"}).
		Return(nil, apperror.CredentialMismatch("wrong username or password"))
	uc.On("Login", mock.Anything, domain.Credentials{Username: "alice", Password: "wrong-pass"}).
		Return(nil, apperror.CredentialMismatch("wrong username or password"))

	router := newAuthRouter(uc, "")
	unknown := postLogin(router, `{"username": "ghost", "password": "Abc12345!"}`)
	badPass := postLogin(router, `{"username": "alice", "password": "wrong-pass"}`)

	// A failed login must not reveal whether the username exists: both
	// failures answer with the same status and the same body.
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, badPass.Code)
	assert.Equal(t, unknown.Body.String(), badPass.Body.String())
	assert.Contains(t, unknown.Body.String(), "wrong username or password")
	assert.Contains(t, unknown.Body.String(), `"error_kind":"credential_mismatch"`)
}

func TestLoginIssuesTokenAndCookie(t *testing.T) {
	uc := new(MockAuthUsecase)
	uc.On("Login", mock.Anything, domain.Credentials{Username: "alice", Password: "Abc12345!"}).
		Return(&domain.Account{PersonID: 7, Username: "alice", RoleID: domain.RoleApplicant}, nil)

	router := newAuthRouter(uc, "")
	w := postLogin(router, `{"username": "alice", "password": "Abc12345!"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	cookies := w.Result().Cookies()
	var authCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "auth_token" {
			authCookie = c
		}
	}
	if assert.NotNil(t, authCookie) {
		assert.True(t, authCookie.HttpOnly)
		assert.NotEmpty(t, authCookie.Value)
	}
}

func TestMe(t *testing.T) {
	t.Run("Should return the stored account for the token subject", func(t *testing.T) {
		uc := new(MockAuthUsecase)
		uc.On("CurrentAccount", mock.Anything, "alice").
			Return(&domain.Account{PersonID: 7, Username: "alice", RoleID: domain.RoleApplicant}, nil)

		router := newAuthRouter(uc, "alice")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("Should answer NotFound when the subject no longer exists", func(t *testing.T) {
		uc := new(MockAuthUsecase)
		uc.On("CurrentAccount", mock.Anything, "ghost").
			Return(nil, apperror.NotFound("that user does not exist"))

		router := newAuthRouter(uc, "ghost")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
