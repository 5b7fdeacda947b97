package api

import (
	"context"

	"curalink-client/src/models"
	"curalink-client/src/schemas"
)

// Login exchanges email/password credentials for a session. The role
// is sent along so the backend can route the login to the right portal.
func (c *Client) Login(ctx context.Context, email, password string, role models.Role) (models.Identity, string, error) {
	return c.exchange(ctx, "/api/auth/login", schemas.LoginRequest{
		Email:    email,
		Password: password,
		Role:     string(role),
	})
}

// LoginWithGoogle exchanges an opaque federated credential for a
// session. The credential is untrusted input here; the backend
// validates it and is the final arbiter of the granted role.
func (c *Client) LoginWithGoogle(ctx context.Context, credential string, role models.Role) (models.Identity, string, error) {
	return c.exchange(ctx, "/api/auth/google", schemas.GoogleAuthRequest{
		Token: credential,
		Role:  string(role),
	})
}

// Register creates a new account. It does not log the user in; the
// backend's confirmation message is returned for display.
func (c *Client) Register(ctx context.Context, name, email, password string, role models.Role) (string, error) {
	var result schemas.AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(schemas.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     string(role),
		}).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		c.logger.WithError(err).Error("Registration request failed")
		return "", models.NewAuthenticationError(0, "")
	}
	if resp.IsError() {
		return "", models.NewAuthenticationError(resp.StatusCode(), remoteMessage(resp))
	}
	return result.Message, nil
}

func (c *Client) exchange(ctx context.Context, path string, body interface{}) (models.Identity, string, error) {
	var result schemas.AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		c.logger.WithError(err).WithField("path", path).Error("Credential exchange failed")
		return models.Identity{}, "", models.NewAuthenticationError(0, "")
	}
	if resp.IsError() {
		return models.Identity{}, "", models.NewAuthenticationError(resp.StatusCode(), remoteMessage(resp))
	}

	identity := models.Identity{
		Name:  result.User.Name,
		Email: result.User.Email,
		Role:  models.Role(result.User.Role),
	}
	return identity, result.Token, nil
}
