// Package auth issues and validates the canvas's session tokens and
// authenticates the built-in demo users.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

var (
	// ErrInvalidCredentials is returned when email or password is wrong
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for expired or malformed tokens
	ErrInvalidToken = errors.New("invalid token")
)

// Claims represents the canvas session token payload
type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// demoUser pairs a demo identity with its password hash
type demoUser struct {
	user         models.User
	passwordHash []byte
}

// Manager issues session tokens and authenticates demo users
type Manager struct {
	secret   []byte
	lifetime time.Duration
	logger   *zap.Logger
	users    map[string]demoUser
}

// NewManager creates an auth manager with the built-in demo roster
func NewManager(secret string, lifetime time.Duration, logger *zap.Logger) *Manager {
	m := &Manager{
		secret:   []byte(secret),
		lifetime: lifetime,
		logger:   logger,
		users:    make(map[string]demoUser),
	}
	m.seedDemoUsers()
	return m
}

// seedDemoUsers registers the fixed demo roster. Every demo account
// shares the same well-known password.
func (m *Manager) seedDemoUsers() {
	roster := []struct {
		email string
		name  string
		role  models.UserRole
	}{
		{"admin@cloudcanvas.io", "Avery Admin", models.RoleAdmin},
		{"ciso@cloudcanvas.io", "Casey Chen", models.RoleCISO},
		{"cfo@cloudcanvas.io", "Frankie Okafor", models.RoleCFO},
		{"cto@cloudcanvas.io", "Taylor Novak", models.RoleCTO},
		{"analyst@cloudcanvas.io", "Alex Rivera", models.RoleAnalyst},
		{"viewer@cloudcanvas.io", "Vic Laurent", models.RoleViewer},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		m.logger.Error("Failed to hash demo password", zap.Error(err))
		return
	}

	for _, r := range roster {
		m.users[r.email] = demoUser{
			user: models.User{
				ID:          uuid.New().String(),
				Email:       r.email,
				Name:        r.name,
				Role:        r.role,
				Permissions: permissionsFor(r.role),
			},
			passwordHash: hash,
		}
	}
}

// permissionsFor maps a role to its permission set
func permissionsFor(role models.UserRole) []string {
	switch role {
	case models.RoleAdmin:
		return []string{"read", "write", "remediate", "provision", "admin"}
	case models.RoleCISO, models.RoleCTO:
		return []string{"read", "write", "remediate"}
	case models.RoleCFO:
		return []string{"read", "write"}
	case models.RoleAnalyst:
		return []string{"read", "remediate"}
	default:
		return []string{"read"}
	}
}

// Authenticate verifies a demo user's credentials
func (m *Manager) Authenticate(email, password string) (models.User, error) {
	entry, ok := m.users[strings.ToLower(email)]
	if !ok {
		// Burn a comparison so missing users cost the same as bad passwords
		bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000"), []byte(password))
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user := entry.user
	user.LastLogin = time.Now().UTC().Format(time.RFC3339)
	return user, nil
}

// IssueToken creates a signed session token for the user
func (m *Manager) IssueToken(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
