package session

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"curalink-client/src/models"
	"curalink-client/src/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	identity    models.Identity
	token       string
	registerMsg string
	err         error
	calls       int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string, role models.Role) (models.Identity, string, error) {
	f.calls++
	if f.err != nil {
		return models.Identity{}, "", f.err
	}
	return f.identity, f.token, nil
}

func (f *fakeAuth) LoginWithGoogle(ctx context.Context, credential string, role models.Role) (models.Identity, string, error) {
	f.calls++
	if f.err != nil {
		return models.Identity{}, "", f.err
	}
	return f.identity, f.token, nil
}

func (f *fakeAuth) Register(ctx context.Context, name, email, password string, role models.Role) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.registerMsg, nil
}

type fakeTokens struct {
	token string
}

func (f *fakeTokens) SetToken(token string) { f.token = token }
func (f *fakeTokens) ClearToken()           { f.token = "" }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestManager(t *testing.T, auth *fakeAuth) (*Manager, store.Store, *fakeTokens) {
	t.Helper()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	tokens := &fakeTokens{}
	return NewManager(auth, tokens, st, quietLogger()), st, tokens
}

func TestAuthPredicateAcrossTransitions(t *testing.T) {
	auth := &fakeAuth{
		identity: models.Identity{Name: "Ada", Email: "ada@example.com", Role: models.RolePatient},
		token:    "tok",
	}
	m, _, tokens := newTestManager(t, auth)
	ctx := context.Background()

	assert.False(t, m.IsAuthenticated())

	_, _, err := m.Login(ctx, "ada@example.com", "Secret1!", models.RolePatient)
	require.NoError(t, err)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "tok", tokens.token)

	m.Logout(ctx)
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, tokens.token)
	assert.Nil(t, m.Identity())

	// Logging out twice leaves the same logged-out state.
	m.Logout(ctx)
	assert.False(t, m.IsAuthenticated())
}

func TestLoginRestoreRoundTrip(t *testing.T) {
	auth := &fakeAuth{
		identity: models.Identity{Name: "Ada", Email: "ada@example.com", Role: models.RoleResearcher},
		token:    "tok",
	}
	st := store.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	first := NewManager(auth, &fakeTokens{}, st, quietLogger())
	identity, route, err := first.Login(ctx, "ada@example.com", "Secret1!", models.RoleResearcher)
	require.NoError(t, err)
	assert.Equal(t, models.RouteResearcherDashboard, route)

	// A fresh process over the same store sees the same session.
	tokens := &fakeTokens{}
	second := NewManager(auth, tokens, st, quietLogger())
	require.NoError(t, second.Restore(ctx))
	assert.True(t, second.IsAuthenticated())
	require.NotNil(t, second.Identity())
	assert.Equal(t, identity, *second.Identity())
	assert.Equal(t, "tok", second.Token())
	assert.Equal(t, "tok", tokens.token)
}

func TestRestoreDiscardsIdentityWithoutToken(t *testing.T) {
	m, st, _ := newTestManager(t, &fakeAuth{})
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "user", `{"name":"Ada","email":"ada@example.com","role":"patient"}`))

	require.NoError(t, m.Restore(ctx))
	assert.False(t, m.IsAuthenticated())

	_, err := st.Get(ctx, "user")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRestoreDiscardsCorruptIdentity(t *testing.T) {
	m, st, tokens := newTestManager(t, &fakeAuth{})
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "token", "tok"))
	require.NoError(t, st.Set(ctx, "user", "{not json"))

	require.NoError(t, m.Restore(ctx))
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, tokens.token)

	_, err := st.Get(ctx, "token")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRestoreEmptyStore(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeAuth{})

	require.NoError(t, m.Restore(context.Background()))
	assert.False(t, m.IsAuthenticated())
}

func TestLoginFailureLeavesLoggedOut(t *testing.T) {
	auth := &fakeAuth{err: models.NewAuthenticationError(401, "Invalid credentials")}
	m, st, _ := newTestManager(t, auth)
	ctx := context.Background()

	_, route, err := m.Login(ctx, "ada@example.com", "wrong", models.RolePatient)
	var authErr *models.AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Invalid credentials", authErr.Error())
	assert.Equal(t, models.RouteLanding, route)
	assert.False(t, m.IsAuthenticated())

	_, getErr := st.Get(ctx, "token")
	assert.ErrorIs(t, getErr, store.ErrNotFound)
}

func TestRedirectFollowsGrantedRole(t *testing.T) {
	tests := []struct {
		name        string
		grantedRole string
		want        models.Route
	}{
		{"researcher", "researcher", models.RouteResearcherDashboard},
		{"patient", "patient", models.RoutePatientDashboard},
		{"unknown role falls back to patient", "admin", models.RoutePatientDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{
				identity: models.Identity{Name: "Ada", Email: "ada@example.com", Role: models.Role(tt.grantedRole)},
				token:    "tok",
			}
			m, _, _ := newTestManager(t, auth)

			// The requested role is only a hint; the backend's granted
			// role decides the redirect.
			_, route, err := m.LoginWithGoogle(context.Background(), "credential", models.RolePatient)
			require.NoError(t, err)
			assert.Equal(t, tt.want, route)
		})
	}
}

func TestLoginLocalValidation(t *testing.T) {
	auth := &fakeAuth{}
	m, _, _ := newTestManager(t, auth)
	ctx := context.Background()

	var validationErr *models.ValidationError

	_, _, err := m.Login(ctx, "ada@example.com", "pw", models.Role("admin"))
	require.True(t, errors.As(err, &validationErr))

	_, _, err = m.Login(ctx, "", "pw", models.RolePatient)
	require.True(t, errors.As(err, &validationErr))

	_, _, err = m.LoginWithGoogle(ctx, "", models.RolePatient)
	require.True(t, errors.As(err, &validationErr))

	// None of these reached the backend.
	assert.Zero(t, auth.calls)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Secret1!", true},
		{"too short", "Ab1!", false},
		{"no digit", "Secretss!", false},
		{"no special", "Secret123", false},
		{"no letter", "12345678!", false},
		{"disallowed character", "Secret1! ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{registerMsg: "Registration successful"}
			m, _, _ := newTestManager(t, auth)

			msg, err := m.Register(context.Background(), "Ada", "ada@example.com", tt.password, models.RolePatient)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, "Registration successful", msg)
				assert.Equal(t, 1, auth.calls)
			} else {
				var validationErr *models.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Zero(t, auth.calls)
			}
		})
	}
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	auth := &fakeAuth{registerMsg: "Registration successful"}
	m, _, _ := newTestManager(t, auth)

	_, err := m.Register(context.Background(), "Ada", "ada@example.com", "Secret1!", models.RolePatient)
	require.NoError(t, err)
	assert.False(t, m.IsAuthenticated())
}
