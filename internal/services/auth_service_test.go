package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

func tokenConfig() *config.Config {
	return &config.Config{
		AuthStrategy:  config.StrategyToken,
		JWTSecret:     "test-secret",
		TokenExpiry:   time.Hour,
		SessionExpiry: time.Hour,
		SessionCookie: "clinic_session",
	}
}

func sessionConfig() *config.Config {
	cfg := tokenConfig()
	cfg.AuthStrategy = config.StrategySession
	return cfg
}

func testUser(password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &models.User{
		ID:       uuid.New(),
		Name:     "Dr. Sarah Bennett",
		Email:    "s.bennett@clinic.local",
		Password: string(hash),
		Role:     models.RoleDoctor,
	}
}

func TestAuthServiceLoginToken(t *testing.T) {
	user := testUser("password123")

	tests := []struct {
		name          string
		req           dto.LoginRequest
		setupMock     func(*MockUserRepository, *MockTokenRepository)
		expectedError error
	}{
		{
			name: "successful login issues a token",
			req:  dto.LoginRequest{Email: user.Email, Password: "password123"},
			setupMock: func(mUsers *MockUserRepository, mTokens *MockTokenRepository) {
				mUsers.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
				mTokens.On("Create", mock.Anything, mock.AnythingOfType("*models.AccessToken")).Return(nil)
			},
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: user.Email, Password: "wrong-password"},
			setupMock: func(mUsers *MockUserRepository, mTokens *MockTokenRepository) {
				mUsers.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@clinic.local", Password: "password123"},
			setupMock: func(mUsers *MockUserRepository, mTokens *MockTokenRepository) {
				mUsers.On("FindByEmail", mock.Anything, "nobody@clinic.local").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(MockUserRepository)
			mTokens := new(MockTokenRepository)
			mSessions := new(MockSessionRepository)
			tt.setupMock(mUsers, mTokens)

			service := NewAuthService(mUsers, mTokens, mSessions, tokenConfig())
			got, credential, err := service.Login(context.Background(), &tt.req, "")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
				assert.Empty(t, credential)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.Email, got.Email)
				assert.NotEmpty(t, credential)
			}

			mUsers.AssertExpectations(t)
			mTokens.AssertExpectations(t)
		})
	}
}

func TestAuthServiceLoginValidatesBody(t *testing.T) {
	service := NewAuthService(new(MockUserRepository), new(MockTokenRepository), new(MockSessionRepository), tokenConfig())

	_, _, err := service.Login(context.Background(), &dto.LoginRequest{Email: "not-an-email"}, "")

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

func TestAuthServiceLoginSessionRegeneratesID(t *testing.T) {
	user := testUser("password123")

	mUsers := new(MockUserRepository)
	mSessions := new(MockSessionRepository)
	mUsers.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	mSessions.On("Delete", mock.Anything, "stale-session-id").Return(nil)
	mSessions.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	service := NewAuthService(mUsers, new(MockTokenRepository), mSessions, sessionConfig())
	_, credential, err := service.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "password123"}, "stale-session-id")

	require.NoError(t, err)
	assert.Len(t, credential, 64)
	assert.NotEqual(t, "stale-session-id", credential)
	mSessions.AssertExpectations(t)
}

func TestAuthServiceResolveToken(t *testing.T) {
	user := testUser("password123")
	cfg := tokenConfig()

	// Issue a real token first so the resolve path sees a valid signature.
	mUsers := new(MockUserRepository)
	mTokens := new(MockTokenRepository)
	mUsers.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	var stored models.AccessToken
	mTokens.On("Create", mock.Anything, mock.AnythingOfType("*models.AccessToken")).Run(func(args mock.Arguments) {
		stored = *args.Get(1).(*models.AccessToken)
	}).Return(nil)

	service := NewAuthService(mUsers, mTokens, new(MockSessionRepository), cfg)
	_, token, err := service.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "password123"}, "")
	require.NoError(t, err)

	t.Run("live token resolves to its user", func(t *testing.T) {
		mTokens.On("FindByHash", mock.Anything, stored.TokenHash).Return(&stored, nil).Once()
		mUsers.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

		got, err := service.ResolveToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		revoked := stored
		revoked.Revoked = true
		mTokens.On("FindByHash", mock.Anything, stored.TokenHash).Return(&revoked, nil).Once()

		_, err := service.ResolveToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		mTokens.On("FindByHash", mock.Anything, stored.TokenHash).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := service.ResolveToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("garbage token never reaches storage", func(t *testing.T) {
		_, err := service.ResolveToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("empty token is rejected", func(t *testing.T) {
		_, err := service.ResolveToken(context.Background(), "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestAuthServiceResolveSession(t *testing.T) {
	user := testUser("password123")

	t.Run("live session resolves to its user", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mSessions := new(MockSessionRepository)
		mSessions.On("FindByID", mock.Anything, "live-id").Return(&models.Session{
			ID: "live-id", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		mUsers.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		service := NewAuthService(mUsers, new(MockTokenRepository), mSessions, sessionConfig())
		got, err := service.ResolveSession(context.Background(), "live-id")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("expired session is removed and rejected", func(t *testing.T) {
		mSessions := new(MockSessionRepository)
		mSessions.On("FindByID", mock.Anything, "expired-id").Return(&models.Session{
			ID: "expired-id", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
		mSessions.On("Delete", mock.Anything, "expired-id").Return(nil)

		service := NewAuthService(new(MockUserRepository), new(MockTokenRepository), mSessions, sessionConfig())
		_, err := service.ResolveSession(context.Background(), "expired-id")
		assert.ErrorIs(t, err, ErrUnauthenticated)
		mSessions.AssertExpectations(t)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	t.Run("token mode revokes the presenting token only", func(t *testing.T) {
		mTokens := new(MockTokenRepository)
		mTokens.On("Revoke", mock.Anything, mock.AnythingOfType("string")).Return(int64(1), nil)

		service := NewAuthService(new(MockUserRepository), mTokens, new(MockSessionRepository), tokenConfig())
		err := service.Logout(context.Background(), "some-signed-token")
		assert.NoError(t, err)
		mTokens.AssertExpectations(t)
	})

	t.Run("session mode deletes the session row", func(t *testing.T) {
		mSessions := new(MockSessionRepository)
		mSessions.On("Delete", mock.Anything, "session-id").Return(nil)

		service := NewAuthService(new(MockUserRepository), new(MockTokenRepository), mSessions, sessionConfig())
		err := service.Logout(context.Background(), "session-id")
		assert.NoError(t, err)
		mSessions.AssertExpectations(t)
	})
}
