package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"hotel-desk/models"
)

// ErrBadCredentials is returned for an empty username; there is no password
// check for non-admin users, so it is the only way Login can refuse.
var ErrBadCredentials = errors.New("invalid credentials or username empty")

// AuthService implements the login gate. Exactly one credential pair grants
// admin; any other non-empty username yields a regular session and guest
// entry yields a "Guest" session. This is an illustrative placeholder, not a
// security boundary.
type AuthService struct {
	adminUser string
	adminHash []byte

	mu       sync.RWMutex
	sessions map[string]models.User
}

// NewAuthService hashes the configured admin password once so logins go
// through a bcrypt comparison rather than a plain string match.
func NewAuthService(adminUser, adminPass string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AuthService{
		adminUser: adminUser,
		adminHash: hash,
		sessions:  make(map[string]models.User),
	}, nil
}

// Login starts a session. The fixed admin pair gives an admin session; any
// other non-empty username gives a regular one regardless of password.
func (a *AuthService) Login(username, password string) (string, models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", models.User{}, ErrBadCredentials
	}
	user := models.User{Username: username}
	if username == a.adminUser && bcrypt.CompareHashAndPassword(a.adminHash, []byte(password)) == nil {
		user.IsAdmin = true
	}
	return a.startSession(user)
}

// Guest starts a non-admin session without credentials.
func (a *AuthService) Guest() (string, models.User, error) {
	return a.startSession(models.User{Username: "Guest"})
}

// Lookup resolves a bearer token to its session user.
func (a *AuthService) Lookup(token string) (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	user, ok := a.sessions[token]
	return user, ok
}

func (a *AuthService) startSession(user models.User) (string, models.User, error) {
	token, err := generateTokenHex(32)
	if err != nil {
		return "", models.User{}, fmt.Errorf("generate session token: %w", err)
	}
	a.mu.Lock()
	a.sessions[token] = user
	a.mu.Unlock()
	return token, user, nil
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
