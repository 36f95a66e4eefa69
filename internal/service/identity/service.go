package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	accountRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/account"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/identity/models"
)

// Service провайдер идентификации: регистрация, вход, выход, проверка сессии
type Service struct {
	accounts   AccountRepository
	profiles   ProfileRepository
	sessions   SessionStore
	txManager  TransactionManager
	tokens     *TokenIssuer
	bcryptCost int
	logger     Logger
}

func NewService(
	accounts AccountRepository,
	profiles ProfileRepository,
	sessions SessionStore,
	txManager TransactionManager,
	tokens *TokenIssuer,
	bcryptCost int,
	logger Logger,
) *Service {
	return &Service{
		accounts:   accounts,
		profiles:   profiles,
		sessions:   sessions,
		txManager:  txManager,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// SignUp создает учетную запись и профиль в одной транзакции
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.IdentityResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.Password) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	fullName := strings.TrimSpace(req.FullName)
	if utf8.RuneCountInString(fullName) > domain.MaxFullNameLength {
		return nil, fmt.Errorf("%w: full name is too long", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password is too long", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: hash password: %v", ErrStore, err)
	}

	var account *domain.Account
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.accounts.Create(txCtx, &domain.Account{
			Email:        email,
			PasswordHash: string(hash),
			FullName:     fullName,
		})
		if err != nil {
			return err
		}

		if _, err := s.profiles.Upsert(txCtx, &domain.Profile{
			UserID:   created.ID,
			FullName: fullName,
			Email:    email,
		}); err != nil {
			return err
		}

		account = created
		return nil
	})
	if err != nil {
		if errors.Is(err, accountRepo.ErrEmailTaken) {
			s.logger.Warn("SignUp: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("SignUp: failed to register email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignUp: %v", ErrStore, err)
	}

	s.logger.Info("SignUp: registered user=%s", account.ID)
	resp := models.FromDomainIdentity(domain.Identity{ID: account.ID, Email: account.Email})
	return &resp, nil
}

// SignIn проверяет пароль и выдает токен
// Отметка last_login_at best-effort: ошибка только логируется
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SessionResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("SignIn: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn: %v", ErrStore, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("SignIn: wrong password for user=%s", account.ID)
		return nil, ErrInvalidCredentials
	}

	session, err := s.tokens.Issue(domain.Identity{ID: account.ID, Email: account.Email})
	if err != nil {
		s.logger.Error("SignIn: failed to issue token for user=%s: %v", account.ID, err)
		return nil, fmt.Errorf("%w: SignIn: %v", ErrStore, err)
	}

	if err := s.profiles.TouchLastLogin(ctx, account.ID); err != nil {
		s.logger.Warn("SignIn: failed to update last login for user=%s: %v", account.ID, err)
	}

	s.logger.Info("SignIn: user=%s signed in, token=%s", account.ID, session.TokenID)
	return models.FromDomainSession(session), nil
}

// GetSession проверяет токен и его отзыв
func (s *Service) GetSession(ctx context.Context, rawToken string) (*domain.Session, error) {
	if rawToken == "" {
		return nil, ErrNoSession
	}

	session, err := s.tokens.Parse(rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	revoked, err := s.sessions.IsRevoked(ctx, session.TokenID)
	if err != nil {
		s.logger.Error("GetSession: session store error for token=%s: %v", session.TokenID, err)
		return nil, fmt.Errorf("%w: GetSession: %v", ErrStore, err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", ErrNoSession)
	}

	return session, nil
}

// SignOut отзывает токен до его истечения
func (s *Service) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return ErrNoSession
	}

	if err := s.sessions.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		s.logger.Error("SignOut: failed to revoke token=%s: %v", session.TokenID, err)
		return fmt.Errorf("%w: SignOut: %v", ErrStore, err)
	}

	s.logger.Info("SignOut: user=%s signed out, token=%s", session.User.ID, session.TokenID)
	return nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	return email, nil
}
