package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// dummyHash keeps the bcrypt comparison in the login path even when the
// email is unknown, so both failure modes take comparable time.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("placeholder-password"), bcrypt.DefaultCost)
	return h
}()

// AuthService owns the login/logout lifecycle. The strategy (bearer token
// or cookie session) is fixed at startup via config and never mixed.
type AuthService struct {
	users    repository.UserRepository
	tokens   repository.TokenRepository
	sessions repository.SessionRepository
	cfg      *config.Config
}

func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, sessions repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, tokens: tokens, sessions: sessions, cfg: cfg}
}

// Login checks the credentials and issues a fresh credential: a bearer
// token in token mode, a regenerated session id in session mode.
// presentedSession is the session id the login request arrived with, if
// any; it is destroyed before a new one is issued.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, presentedSession string) (*models.User, string, error) {
	err := validation.Apply(ctx,
		validation.Required("email", &req.Email, "The email field is required"),
		validation.Email("email", &req.Email, "The email must be a valid email address"),
		validation.Required("password", &req.Password, "The password field is required"),
	)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	var credential string
	if s.cfg.AuthStrategy == config.StrategySession {
		credential, err = s.issueSession(ctx, user, presentedSession)
	} else {
		credential, err = s.issueToken(ctx, user)
	}
	if err != nil {
		return nil, "", err
	}

	return user, credential, nil
}

// Logout invalidates the presenting credential only. In token mode other
// live tokens for the same user stay valid.
func (s *AuthService) Logout(ctx context.Context, credential string) error {
	if s.cfg.AuthStrategy == config.StrategySession {
		return s.sessions.Delete(ctx, credential)
	}
	_, err := s.tokens.Revoke(ctx, hashToken(credential))
	return err
}

// ResolveToken maps a bearer token to its user. Signature, allow-list
// membership, revocation and expiry all gate the result; every failure
// collapses to ErrUnauthenticated.
func (s *AuthService) ResolveToken(ctx context.Context, raw string) (*models.User, error) {
	if raw == "" {
		return nil, ErrUnauthenticated
	}

	_, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, ErrUnauthenticated
	}

	stored, err := s.tokens.FindByHash(ctx, hashToken(raw))
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// ResolveSession maps a session cookie to its user. Expired rows are
// removed on sight.
func (s *AuthService) ResolveSession(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, id)
		return nil, ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

func (s *AuthService) issueToken(ctx context.Context, user *models.User) (string, error) {
	jti := uuid.New()
	expiresAt := time.Now().Add(s.cfg.TokenExpiry)

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"jti":   jti.String(),
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	record := models.AccessToken{
		ID:        jti,
		UserID:    user.ID,
		TokenHash: hashToken(signed),
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.Create(ctx, &record); err != nil {
		return "", fmt.Errorf("failed to store access token: %w", err)
	}

	return signed, nil
}

func (s *AuthService) issueSession(ctx context.Context, user *models.User, presented string) (string, error) {
	// Regenerate: whatever session id came with the login request dies here.
	if presented != "" {
		_ = s.sessions.Delete(ctx, presented)
	}

	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	session := models.Session{
		ID:        id,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.cfg.SessionExpiry),
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return id, nil
}

func newSessionID() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
