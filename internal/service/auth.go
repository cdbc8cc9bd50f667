package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yunxiao-dev/teachboard/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL   = 24 * time.Hour
	loginCodeTTL = 5 * time.Minute

	purposeSession   = "session"
	purposeLoginCode = "login_code"
)

// AuthService handles user registration, login, session tokens, and role
// resolution for the access guard.
type AuthService struct {
	users      domain.UserRepository
	roles      domain.RoleRepository
	jwtSecret  []byte
	bcryptCost int

	// Login codes are single use. Exchanged code IDs are held until their
	// expiry so a replayed callback URL cannot mint a second session.
	mu        sync.Mutex
	usedCodes map[string]time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, roles domain.RoleRepository, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		roles:      roles,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
		usedCodes:  make(map[string]time.Time),
	}
}

// Register creates a new user account after validating inputs.
func (s *AuthService) Register(ctx context.Context, email, displayName, password string) (*domain.User, error) {
	if email == "" || displayName == "" || password == "" {
		return nil, fmt.Errorf("%w: email, display name, and password are required", domain.ErrInvalidInput)
	}

	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a short-lived login code. The code
// is exchanged for a session token at the auth callback, mirroring a
// provider code-exchange flow.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	code, err := s.sign(user.ID, purposeLoginCode, loginCodeTTL)
	if err != nil {
		return "", fmt.Errorf("mint login code: %w", err)
	}
	return code, nil
}

// ExchangeCode validates a login code and returns a session token for the
// same user. Codes with the wrong purpose claim or past their expiry are
// rejected with ErrUnauthorized, and every code is accepted at most once.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	userID, jti, err := s.verify(code, purposeLoginCode)
	if err != nil {
		return "", err
	}

	if !s.markCodeUsed(jti) {
		return "", domain.ErrUnauthorized
	}

	// Make sure the account still exists before issuing a session.
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return "", domain.ErrUnauthorized
	}

	token, err := s.sign(userID, purposeSession, sessionTTL)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// ValidateToken parses and validates a session token string.
// Returns the user ID from the sub claim.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	userID, _, err := s.verify(tokenString, purposeSession)
	return userID, err
}

// markCodeUsed records a login code ID and reports whether this was its
// first use. Expired entries are pruned on the way through.
func (s *AuthService) markCodeUsed(jti string) bool {
	if jti == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, expiry := range s.usedCodes {
		if expiry.Before(now) {
			delete(s.usedCodes, id)
		}
	}

	if _, used := s.usedCodes[jti]; used {
		return false
	}
	s.usedCodes[jti] = now.Add(loginCodeTTL)
	return true
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Role returns the role mapped to the user, defaulting to RoleUser when no
// mapping exists.
func (s *AuthService) Role(ctx context.Context, userID int64) (string, error) {
	role, err := s.roles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RoleUser, nil
		}
		return "", fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

// IsAdmin reports whether the user holds the admin role. Any role lookup
// failure counts as not-admin: absence of proof must never grant access.
func (s *AuthService) IsAdmin(ctx context.Context, userID int64) bool {
	role, err := s.Role(ctx, userID)
	if err != nil {
		slog.Error("role lookup failed, denying admin access", "user_id", userID, "error", err)
		return false
	}
	return role == domain.RoleAdmin
}

// EnsureAdmin idempotently creates the admin account and assigns it the
// admin role. Called once at startup from configuration.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, displayName, password string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("look up admin account: %w", err)
		}
		user, err = s.Register(ctx, email, displayName, password)
		if err != nil {
			return fmt.Errorf("create admin account: %w", err)
		}
		slog.Info("admin account created", "email", email)
	}

	if err := s.roles.Assign(ctx, user.ID, domain.RoleAdmin); err != nil {
		return fmt.Errorf("assign admin role: %w", err)
	}
	return nil
}

func (s *AuthService) sign(userID int64, purpose string, ttl time.Duration) (string, error) {
	jti := make([]byte, 16)
	if _, err := rand.Read(jti); err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     strconv.FormatInt(userID, 10),
		"jti":     hex.EncodeToString(jti),
		"purpose": purpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) verify(tokenString, purpose string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", domain.ErrUnauthorized
	}

	if p, _ := claims["purpose"].(string); p != purpose {
		return 0, "", domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, "", domain.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, "", domain.ErrUnauthorized
	}

	jti, _ := claims["jti"].(string)
	return userID, jti, nil
}
