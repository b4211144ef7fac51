package auth

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/salon-booking/internal/domain"
	adminRepo "github.com/m04kA/salon-booking/internal/infra/storage/admin"
	"github.com/m04kA/salon-booking/internal/service/auth/models"
	"github.com/m04kA/salon-booking/pkg/jwtauth"
)

// Service сервис входа, регистрации и выхода администраторов
type Service struct {
	adminRepo      AdminRepository
	tokens         TokenIssuer
	revocations    RevocationStore
	minPasswordLen int
	hashCost       int
	logger         Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(
	adminRepo AdminRepository,
	tokens TokenIssuer,
	revocations RevocationStore,
	minPasswordLen int,
	logger Logger,
) *Service {
	return &Service{
		adminRepo:      adminRepo,
		tokens:         tokens,
		revocations:    revocations,
		minPasswordLen: minPasswordLen,
		hashCost:       bcrypt.DefaultCost,
		logger:         logger,
	}
}

// Login проверяет учетные данные и выпускает токен.
// Неподтвержденная учетная запись отличается от неверного пароля.
func (s *Service) Login(ctx context.Context, req *models.CredentialsRequest) (*models.LoginResponse, error) {
	username := req.NormalizedUsername()
	s.logger.Info("Login: attempt for username=%s", username)

	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	// 1. Ищем администратора
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: username=%s not found", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get admin username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: failed to get admin: %v", ErrInternal, err)
	}

	// 2. Проверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", username)
		return nil, ErrInvalidCredentials
	}

	// 3. Неподтвержденным вход запрещен
	if !admin.Confirmed {
		s.logger.Warn("Login: username=%s is not confirmed", username)
		return nil, ErrAccountNotConfirmed
	}

	// 4. Выпускаем токен
	token, claims, err := s.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		s.logger.Error("Login: failed to issue token for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: username=%s signed in, token id=%s", username, claims.ID)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      *models.FromDomainAdmin(admin),
	}, nil
}

// Register создает неподтвержденную учетную запись администратора
func (s *Service) Register(ctx context.Context, req *models.CredentialsRequest) (*models.AdminResponse, error) {
	username := req.NormalizedUsername()
	s.logger.Info("Register: registering username=%s", username)

	if n := utf8.RuneCountInString(username); n < domain.MinUsernameLength || n > domain.MaxUsernameLength {
		s.logger.Warn("Register: invalid username length=%d", n)
		return nil, fmt.Errorf("%w: username must be between %d and %d characters",
			ErrInvalidInput, domain.MinUsernameLength, domain.MaxUsernameLength)
	}
	if utf8.RuneCountInString(req.Password) < s.minPasswordLen {
		s.logger.Warn("Register: password too short for username=%s", username)
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, s.minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		// bcrypt отказывает паролям длиннее 72 байт
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password is too long", ErrInvalidInput)
		}
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	created, err := s.adminRepo.Create(ctx, &domain.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Confirmed:    false,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrDuplicateUsername) {
			s.logger.Warn("Register: username=%s already taken", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created admin id=%s (unconfirmed)", created.ID)
	return models.FromDomainAdmin(created), nil
}

// Logout отзывает токен до истечения его срока действия
func (s *Service) Logout(ctx context.Context, claims *jwtauth.Claims) error {
	if claims == nil || claims.ID == "" {
		return fmt.Errorf("%w: missing token id", ErrInvalidInput)
	}
	s.logger.Info("Logout: revoking token id=%s for username=%s", claims.ID, claims.Username)

	if claims.ExpiresAt == nil {
		return fmt.Errorf("%w: token has no expiry", ErrInvalidInput)
	}

	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		s.logger.Error("Logout: failed to revoke token id=%s: %v", claims.ID, err)
		return fmt.Errorf("%w: failed to revoke token: %v", ErrInternal, err)
	}

	return nil
}
