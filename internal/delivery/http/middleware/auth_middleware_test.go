package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

func newTestAuthMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	tokenSvc, err := auth.NewJWTService(&config.Config{
		Token: &config.TokenConfig{
			SigningKey: testSigningKey,
			TTL:        time.Hour,
			Issuer:     "accounts-test",
		},
	})
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func issueTestToken(t *testing.T, m *AuthMiddleware, userID uuid.UUID, role entity.Role) string {
	t.Helper()

	token, err := m.tokenSvc.Issue(userID, "alice@example.com", role)
	require.NoError(t, err)

	return token
}

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	m := newTestAuthMiddleware(t)
	userID := uuid.New()
	token := issueTestToken(t, m, userID, entity.RoleStandard)

	c, rec := newAuthTestContext("Bearer " + token)

	var seenUserID uuid.UUID
	var seenEmail string
	var seenRole entity.Role
	next := func(c echo.Context) error {
		seenUserID = c.Get(ContextKeyUserID).(uuid.UUID)
		seenEmail = c.Get(ContextKeyEmail).(string)
		seenRole = c.Get(ContextKeyRole).(entity.Role)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenUserID)
	assert.Equal(t, "alice@example.com", seenEmail)
	assert.Equal(t, entity.RoleStandard, seenRole)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_GarbageToken(t *testing.T) {
	m := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext("Bearer not.a.token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := newTestAuthMiddleware(t)

	t.Run("matching role passes", func(t *testing.T) {
		token := issueTestToken(t, m, uuid.New(), entity.RolePremium)
		c, rec := newAuthTestContext("Bearer " + token)

		chain := m.Authenticate(m.RequireRole(entity.RolePremium)(okHandler))
		require.NoError(t, chain(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		token := issueTestToken(t, m, uuid.New(), entity.RoleStandard)
		c, rec := newAuthTestContext("Bearer " + token)

		chain := m.Authenticate(m.RequireRole(entity.RolePremium)(okHandler))
		require.NoError(t, chain(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		c, rec := newAuthTestContext("")

		require.NoError(t, m.RequireRole(entity.RolePremium)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
