package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

// AuthUseCase отвечает за регистрацию, вход и выход, а также за проверку прав.
// Состояние сессии хранится в SessionRepository, аутентифицированный пользователь
// передаётся в методы явно через *domain.Principal.
type AuthUseCase struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	hasher      PasswordHasher
	sessionTTL  time.Duration
	logger      logger.Logger
}

func NewAuthUC(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	hasher PasswordHasher,
	sessionTTL time.Duration,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Register создаёт пользователя и сразу открывает для него сессию.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*LoginRes, error) {
	const op = "AuthUseCase.Register"

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password1 == "" {
		return nil, e.Wrap(op, e.ErrCredentialsRequired)
	}

	if req.Password1 != req.Password2 {
		return nil, e.Wrap(op, e.ErrPasswordsMismatch)
	}

	exists, err := a.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if exists {
		return nil, e.Wrap(op, e.ErrUsernameTaken)
	}

	user, err := a.createUser(ctx, username, strings.TrimSpace(req.Email), req.Password1, false)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	sessionID, err := a.openSession(ctx, user.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.logger.Infof("user %q registered", user.Username)

	return NewLoginRes(sessionID, user), nil
}

// Login проверяет пароль и открывает новую сессию.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	user, err := a.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if !a.hasher.Compare(user.PasswordHash, req.Password) {
		a.logger.Warnf("failed login attempt for %q", user.Username)
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	sessionID, err := a.openSession(ctx, user.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewLoginRes(sessionID, user), nil
}

// Logout закрывает сессию. Запрос без сессии тоже считается успешным.
func (a *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	const op = "AuthUseCase.Logout"

	if sessionID == "" {
		return nil
	}

	if err := a.sessionRepo.Delete(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Authenticate восстанавливает пользователя по идентификатору сессии.
func (a *AuthUseCase) Authenticate(ctx context.Context, sessionID string) (*domain.Principal, error) {
	const op = "AuthUseCase.Authenticate"

	if sessionID == "" {
		return nil, e.Wrap(op, e.ErrNotLoggedIn)
	}

	userID, err := a.sessionRepo.GetUserID(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			// пользователь удалён, а сессия осталась
			return nil, e.Wrap(op, e.ErrNotLoggedIn)
		}
		return nil, e.Wrap(op, err)
	}

	return domain.NewPrincipal(user), nil
}

func (a *AuthUseCase) CurrentUser(ctx context.Context, principal *domain.Principal) (*domain.User, error) {
	const op = "AuthUseCase.CurrentUser"

	if !principal.IsAuthenticated() {
		return nil, e.Wrap(op, e.ErrNotLoggedIn)
	}

	user, err := a.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// ListUsers требует входа и права auth.view_user.
func (a *AuthUseCase) ListUsers(ctx context.Context, principal *domain.Principal) ([]domain.User, error) {
	const op = "AuthUseCase.ListUsers"

	if !principal.IsAuthenticated() {
		return nil, e.Wrap(op, e.ErrNotLoggedIn)
	}

	if !principal.HasPermission(domain.PermViewUser) {
		return nil, e.Wrap(op, e.ErrInsufficientRights)
	}

	users, err := a.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return users, nil
}

// CreateSuperuser заводит администратора со всеми правами. Используется из CLI.
func (a *AuthUseCase) CreateSuperuser(ctx context.Context, username, email, password string) (*domain.User, error) {
	const op = "AuthUseCase.CreateSuperuser"

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, e.Wrap(op, e.ErrCredentialsRequired)
	}

	user, err := a.createUser(ctx, username, strings.TrimSpace(email), password, true)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

func (a *AuthUseCase) createUser(ctx context.Context, username, email, password string, superuser bool) (*domain.User, error) {
	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(username, email, hash)
	user.IsSuperuser = superuser

	return a.userRepo.Create(ctx, user)
}

func (a *AuthUseCase) openSession(ctx context.Context, userID int64) (string, error) {
	sessionID := uuid.NewString()
	if err := a.sessionRepo.Create(ctx, sessionID, userID, a.sessionTTL); err != nil {
		return "", err
	}

	return sessionID, nil
}
