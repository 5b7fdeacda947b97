package api

import (
	"encoding/json"
	"sync"

	"curalink-client/src/config"
	"curalink-client/src/schemas"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client talks to the CuraLink backend. A single instance is shared by
// the session manager and the resource controllers; the session token
// is attached to every request once set.
type Client struct {
	http   *resty.Client
	logger *logrus.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a backend client from the given configuration.
func NewClient(cfg config.Config, log *logrus.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c := &Client{
		http:   httpClient,
		logger: log,
	}

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.New().String())
		if token := c.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	return c
}

// SetToken attaches the session token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the session token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently attached session token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// remoteMessage decodes the backend's {message} error body. An empty
// string means the body was not decodable and callers should fall back
// to a generic message.
func remoteMessage(resp *resty.Response) string {
	var body schemas.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return ""
	}
	return body.Message
}
