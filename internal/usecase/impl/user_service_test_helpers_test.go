package impl

import (
	"context"
	"io"
	"log/slog"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Hand-written testify mocks for the service's collaborators ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	var user *entity.User
	if v := args.Get(0); v != nil {
		user = v.(*entity.User)
	}

	return user, args.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Verify(password, storedHash string) (bool, error) {
	args := m.Called(password, storedHash)

	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID, email string, role entity.Role) (string, error) {
	args := m.Called(userID, email, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)

	var claims *service.Claims
	if v := args.Get(0); v != nil {
		claims = v.(*service.Claims)
	}

	return claims, args.Error(1)
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestUserService() userServiceFixtures {
	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}
