package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"curalink-client/src/models"
	"curalink-client/src/store"

	"github.com/sirupsen/logrus"
)

const (
	storeKeyToken = "token"
	storeKeyUser  = "user"
)

// AuthAPI is the credential-exchange surface of the backend client.
type AuthAPI interface {
	Login(ctx context.Context, email, password string, role models.Role) (models.Identity, string, error)
	LoginWithGoogle(ctx context.Context, credential string, role models.Role) (models.Identity, string, error)
	Register(ctx context.Context, name, email, password string, role models.Role) (string, error)
}

// TokenSink receives the session token so outbound requests can carry it.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// Manager is the single source of truth for who is logged in. One
// instance exists per running client and is injected into consumers.
type Manager struct {
	auth   AuthAPI
	tokens TokenSink
	store  store.Store
	logger *logrus.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewManager creates a session manager over the given collaborators.
func NewManager(auth AuthAPI, tokens TokenSink, st store.Store, log *logrus.Logger) *Manager {
	return &Manager{
		auth:   auth,
		tokens: tokens,
		store:  st,
		logger: log,
	}
}

// Restore loads a persisted session at process start. Missing or
// corrupt state is discarded and leaves the manager logged out;
// corruption is never fatal.
func (m *Manager) Restore(ctx context.Context) error {
	token, tokenErr := m.store.Get(ctx, storeKeyToken)
	rawUser, userErr := m.store.Get(ctx, storeKeyUser)
	if tokenErr != nil || userErr != nil {
		// Half a session is as good as none.
		if tokenErr == nil || userErr == nil {
			m.logger.Warn("Discarding partial persisted session")
		}
		m.discard(ctx)
		return nil
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(rawUser), &identity); err != nil {
		m.logger.WithError(err).Warn("Discarding corrupt persisted session")
		m.discard(ctx)
		return nil
	}
	if token == "" || identity.Email == "" {
		m.logger.Warn("Discarding structurally invalid persisted session")
		m.discard(ctx)
		return nil
	}

	m.mu.Lock()
	m.session = models.Session{Identity: &identity, Token: token}
	m.mu.Unlock()
	m.tokens.SetToken(token)

	m.logger.WithFields(logrus.Fields{
		"email": identity.Email,
		"role":  identity.Role,
	}).Info("Restored session")
	return nil
}

// Login exchanges email/password credentials for a session and returns
// the identity together with the dashboard it should land on.
func (m *Manager) Login(ctx context.Context, email, password string, role models.Role) (models.Identity, models.Route, error) {
	if !role.Valid() {
		return models.Identity{}, models.RouteLanding, models.NewValidationError("role", "unknown account role")
	}
	if strings.TrimSpace(email) == "" {
		return models.Identity{}, models.RouteLanding, models.NewValidationError("email", "email is required")
	}
	if password == "" {
		return models.Identity{}, models.RouteLanding, models.NewValidationError("password", "password is required")
	}

	identity, token, err := m.auth.Login(ctx, email, password, role)
	if err != nil {
		return models.Identity{}, models.RouteLanding, err
	}
	m.establish(ctx, identity, token)
	return identity, identity.Role.DashboardRoute(), nil
}

// LoginWithGoogle exchanges an opaque federated credential for a
// session. The requested role is only a hint; the granted role comes
// back from the backend.
func (m *Manager) LoginWithGoogle(ctx context.Context, credential string, role models.Role) (models.Identity, models.Route, error) {
	if !role.Valid() {
		return models.Identity{}, models.RouteLanding, models.NewValidationError("role", "unknown account role")
	}
	if credential == "" {
		return models.Identity{}, models.RouteLanding, models.NewValidationError("credential", "missing federated credential")
	}

	identity, token, err := m.auth.LoginWithGoogle(ctx, credential, role)
	if err != nil {
		return models.Identity{}, models.RouteLanding, err
	}
	m.establish(ctx, identity, token)
	return identity, identity.Role.DashboardRoute(), nil
}

// Register creates a new account. Password policy is enforced locally
// before anything reaches the network; success does not log in.
func (m *Manager) Register(ctx context.Context, name, email, password string, role models.Role) (string, error) {
	if !role.Valid() {
		return "", models.NewValidationError("role", "unknown account role")
	}
	if strings.TrimSpace(name) == "" {
		return "", models.NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(email) == "" {
		return "", models.NewValidationError("email", "email is required")
	}
	if err := checkPasswordPolicy(password); err != nil {
		return "", err
	}
	return m.auth.Register(ctx, name, email, password, role)
}

// Logout clears persisted and in-memory session state unconditionally.
// Safe to call when already logged out.
func (m *Manager) Logout(ctx context.Context) {
	m.discard(ctx)
	m.logger.Info("Logged out")
}

// IsAuthenticated reports whether both an identity and a token are
// held. Route guards must use this rather than checking identity alone.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Authenticated()
}

// Identity returns a copy of the current identity, or nil when logged out.
func (m *Manager) Identity() *models.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.Identity == nil {
		return nil
	}
	identity := *m.session.Identity
	return &identity
}

// Token returns the current credential token, empty when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

func (m *Manager) establish(ctx context.Context, identity models.Identity, token string) {
	rawUser, err := json.Marshal(identity)
	if err == nil {
		if err := m.store.Set(ctx, storeKeyToken, token); err != nil {
			m.logger.WithError(err).Warn("Failed to persist session token")
		}
		if err := m.store.Set(ctx, storeKeyUser, string(rawUser)); err != nil {
			m.logger.WithError(err).Warn("Failed to persist session identity")
		}
	} else {
		m.logger.WithError(err).Warn("Failed to encode session identity")
	}

	m.mu.Lock()
	m.session = models.Session{Identity: &identity, Token: token}
	m.mu.Unlock()
	m.tokens.SetToken(token)

	m.logger.WithFields(logrus.Fields{
		"email": identity.Email,
		"role":  identity.Role,
	}).Info("Logged in")
}

func (m *Manager) discard(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.WithError(err).Warn("Failed to clear persisted session")
	}
	m.mu.Lock()
	m.session = models.Session{}
	m.mu.Unlock()
	m.tokens.ClearToken()
}
