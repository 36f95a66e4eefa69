package identity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/sessionstore"
	accountRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/account"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/identity/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

const testSecret = "test-secret-0123456789"

type fakeAccounts struct {
	mu       sync.Mutex
	byEmail  map[string]*domain.Account
	getError error
}

func (f *fakeAccounts) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[account.Email]; ok {
		return nil, accountRepo.ErrEmailTaken
	}
	account.ID = uuid.New()
	f.byEmail[account.Email] = account
	return account, nil
}

func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getError != nil {
		return nil, f.getError
	}
	account, ok := f.byEmail[email]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return account, nil
}

type fakeProfiles struct {
	upserted []*domain.Profile
	touchErr error
	touched  int
}

func (f *fakeProfiles) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	f.upserted = append(f.upserted, profile)
	return profile, nil
}

func (f *fakeProfiles) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	f.touched++
	return f.touchErr
}

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(t *testing.T) (*Service, *fakeAccounts, *fakeProfiles, *TokenIssuer) {
	t.Helper()
	accounts := &fakeAccounts{byEmail: map[string]*domain.Account{}}
	profiles := &fakeProfiles{}
	issuer := NewTokenIssuer(testSecret, "hotel-booking-service", time.Hour)
	svc := NewService(accounts, profiles, sessionstore.NewMemoryStore(), passThroughTx{}, issuer, bcrypt.MinCost, logger.NewNop())
	return svc, accounts, profiles, issuer
}

func TestService_FullSessionLifecycle(t *testing.T) {
	svc, _, profiles, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, &models.SignUpRequest{Email: " Asha@Example.com ", Password: "secret1", FullName: "Asha Rao"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	require.Len(t, profiles.upserted, 1)
	assert.Equal(t, "Asha Rao", profiles.upserted[0].FullName)
	assert.False(t, profiles.upserted[0].IsAdmin)

	signedIn, err := svc.SignIn(ctx, &models.SignInRequest{Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", signedIn.TokenType)
	assert.Equal(t, user.ID, signedIn.User.ID)
	assert.Equal(t, 1, profiles.touched)

	session, err := svc.GetSession(ctx, signedIn.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", session.User.Email)

	require.NoError(t, svc.SignOut(ctx, session))

	_, err = svc.GetSession(ctx, signedIn.AccessToken)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestService_SignUp_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.SignUpRequest{Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SignUp(ctx, &models.SignUpRequest{Email: "a@example.com", Password: "12345"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SignUp(ctx, &models.SignUpRequest{Email: "a@example.com", Password: "123456"})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, &models.SignUpRequest{Email: "A@example.com", Password: "123456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_SignIn_Failures(t *testing.T) {
	svc, accounts, profiles, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.SignUpRequest{Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, &models.SignInRequest{Email: "asha@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, &models.SignInRequest{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	profiles.touchErr = errors.New("profiles table locked")
	_, err = svc.SignIn(ctx, &models.SignInRequest{Email: "asha@example.com", Password: "secret1"})
	assert.NoError(t, err, "last login bookkeeping never fails sign in")

	accounts.getError = errors.New("connection refused")
	_, err = svc.SignIn(ctx, &models.SignInRequest{Email: "asha@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrStore)
}

func TestService_GetSession_RejectsBadTokens(t *testing.T) {
	svc, _, _, issuer := newTestService(t)
	ctx := context.Background()
	user := domain.Identity{ID: uuid.New(), Email: "asha@example.com"}

	_, err := svc.GetSession(ctx, "")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.GetSession(ctx, "garbage.token.value")
	assert.ErrorIs(t, err, ErrNoSession)

	foreign, err := NewTokenIssuer("another-secret-9876543210", "hotel-booking-service", time.Hour).Issue(user)
	require.NoError(t, err)
	_, err = svc.GetSession(ctx, foreign.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	otherIssuer, err := NewTokenIssuer(testSecret, "someone-else", time.Hour).Issue(user)
	require.NoError(t, err)
	_, err = svc.GetSession(ctx, otherIssuer.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := issuer.Issue(user)
	require.NoError(t, err)
	issuer.now = time.Now
	_, err = svc.GetSession(ctx, expired.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}
