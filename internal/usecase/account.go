package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/auth"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
)

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(u *domain.User) (string, error)
	Verify(token string) (domain.Identity, error)
}

// AccountUseCase defines registration, sign-in and profile lookup.
type AccountUseCase interface {
	Register(ctx context.Context, cmd RegisterCommand) (*Session, error)

	// Login checks credentials. With adminOnly, non-admin accounts get ErrForbidden.
	Login(ctx context.Context, email, password string, adminOnly bool) (*Session, error)

	Me(ctx context.Context, userID string) (*domain.User, error)

	// Verify resolves a session token to the identity it carries.
	Verify(token string) (domain.Identity, error)
}

// RegisterCommand carries a sign-up form.
type RegisterCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.Role
}

// Session is a signed-in user and their token.
type Session struct {
	User  *domain.User
	Token string
}

type accountUseCase struct {
	users  domain.UserRepository
	tokens TokenIssuer
	log    *logger.Logger
}

// NewAccountUseCase creates an AccountUseCase.
func NewAccountUseCase(users domain.UserRepository, tokens TokenIssuer, log *logger.Logger) AccountUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &accountUseCase{
		users:  users,
		tokens: tokens,
		log:    log.WithComponent("accounts"),
	}
}

func (uc *accountUseCase) Register(ctx context.Context, cmd RegisterCommand) (*Session, error) {
	cmd.Email = normalizeEmail(cmd.Email)
	if cmd.Role == "" {
		cmd.Role = domain.RoleUser
	}
	if err := validateRegistration(cmd); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	u := &domain.User{
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		PasswordHash: hash,
		Role:         cmd.Role,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, storageFailure(ctx, uc.log, "create user", err)
	}

	uc.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("account registered")
	return uc.session(u)
}

func (uc *accountUseCase) Login(ctx context.Context, email, password string, adminOnly bool) (*Session, error) {
	u, err := uc.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, storageFailure(ctx, uc.log, "get user", err)
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	if adminOnly && !u.IsAdmin() {
		uc.log.Warn().Str("user_id", u.ID).Msg("non-admin attempted admin sign-in")
		return nil, domain.ErrForbidden
	}

	return uc.session(u)
}

func (uc *accountUseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageFailure(ctx, uc.log, "get user", err)
	}
	return u, nil
}

func (uc *accountUseCase) Verify(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return uc.tokens.Verify(token)
}

func (uc *accountUseCase) session(u *domain.User) (*Session, error) {
	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(cmd RegisterCommand) error {
	var errs domain.ValidationErrors

	if strings.TrimSpace(cmd.FirstName) == "" {
		errs.Add("firstName", "First Name is required")
	}
	if strings.TrimSpace(cmd.LastName) == "" {
		errs.Add("lastName", "Last Name is required")
	}
	if cmd.Email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(cmd.Email); err != nil {
		errs.Add("email", "Email must be a valid email address")
	}
	if len(cmd.Password) < auth.MinPasswordLength {
		errs.Add("password", fmt.Sprintf("Password with %d or more characters required", auth.MinPasswordLength))
	}
	if cmd.Role != domain.RoleUser && cmd.Role != domain.RoleAdmin {
		errs.Add("role", "Role must be user or admin")
	}

	return errs.Err()
}
