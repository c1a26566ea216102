package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts/internal/delivery/http/validator"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *mockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		Name:      "Alice",
		Role:      entity.RoleStandard,
		CreatedAt: time.Now(),
	}
}

func TestUserHandler_Register_Success(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	user := newTestUser()
	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Email == "alice@example.com" && input.Password == "correct horse battery staple"
	})).Return(&usecase.RegisterOutput{User: user}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"correct horse battery staple","name":"Alice"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
	uc.AssertExpectations(t)
}

func TestUserHandler_Register_InvalidBody(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", `{not json`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_MissingEmailFailsValidation(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"password":"secret"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_DuplicateEmailPropagates(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrDuplicateEmail)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"secret"}`)

	err := h.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	user := newTestUser()
	uc.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
		return input.Email == "alice@example.com"
	})).Return(&usecase.LoginOutput{User: user, Token: "signed.jwt.token"}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"correct horse battery staple"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	assert.NotContains(t, rec.Body.String(), "password")
	uc.AssertExpectations(t)
}

func TestUserHandler_Login_AuthenticationFailurePropagates(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAuthenticationFailed)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	err := h.Login(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
