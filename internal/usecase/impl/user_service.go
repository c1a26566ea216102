// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is a valid bcrypt hash of a random throwaway string.
// When login hits an unknown email, the hasher still runs one comparison
// against it so the unknown-email and wrong-password paths cost the same.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: uniqueness check,
// password hashing, persistence. The store's unique constraint remains the
// backstop for the race between the existence check and the save.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("registration input is missing or incomplete")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	exists, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to check email uniqueness", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}
	if exists {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		// A hasher rejection is a caller problem (empty/oversized password).
		srv.log(ctx).Warn("Failed to hash password during registration", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrInvalidRequest) {
			return nil, err
		}

		return nil, domainerrors.ErrInvalidRequest.WrapMessage("password could not be processed")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		Role:         entity.RoleStandard,
	}

	if err := srv.userRepo.Save(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to save user during registration", slog.String("email", input.Email), slog.Any("error", err))

		// A unique violation from the store means a concurrent registration
		// won the race; surface it exactly like the pre-check conflict.
		return nil, errors.Wrap(err, "failed to save user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the supplied credentials and, on success, issues a signed
// identity token. Unknown email and wrong password are deliberately
// indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("login input is missing or incomplete")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn one hash comparison so this path is not observably
			// cheaper than a wrong password.
			_, _ = srv.hasher.Verify(input.Password, dummyPasswordHash)

			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("login failed")
		}

		srv.log(ctx).Error("Failed to load user during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		// A hash the hasher cannot parse is data corruption, not a bad login.
		srv.log(ctx).Error("Stored password hash failed verification", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue identity token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue identity token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		User:  user,
		Token: token,
	}, nil
}
