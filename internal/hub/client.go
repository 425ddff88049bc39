package hub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/terminal/internal/common"
	"github.com/thand-io/terminal/internal/models"
)

const DEFAULT_TIMEOUT = 30 * time.Second

// SessionStore is where remembered sessions are written to and removed from
type SessionStore interface {
	SaveSession(session models.Session) error
	RemoveSession() error
}

// Client talks to the hub api to create, validate and revoke sessions
type Client struct {
	client *resty.Client
	store  SessionStore
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func NewClient(apiUrl string, timeout time.Duration, store SessionStore) *Client {

	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(apiUrl, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", common.GetUserAgent()).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader("X-Request-Id", uuid.New().String())
			return nil
		})

	return &Client{
		client: client,
		store:  store,
	}
}

// CreateSession exchanges credentials for a session. A rejected exchange
// returns an empty session and no error; transport failures are returned.
// When save is set the session is remembered in the local store.
func (c *Client) CreateSession(ctx context.Context, email string, password string, save bool) (models.Session, error) {

	var session models.Session
	var failure errorResponse

	res, err := c.client.R().
		SetContext(ctx).
		SetBody(loginRequest{
			Email:    email,
			Password: password,
			Remember: true,
		}).
		SetResult(&session).
		SetError(&failure).
		Post("/login")

	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if res.StatusCode() != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": res.StatusCode(),
			"detail": failure.Detail,
		}).Warnln("Hub rejected session request")
		return nil, nil
	}

	if !session.IsValid() {
		logrus.Warnln("Hub returned an empty session")
		return nil, nil
	}

	if save && c.store != nil {
		if err := c.store.SaveSession(session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
	}

	return session, nil
}

// Login validates the session against the hub. An unauthorized session is
// also removed from the local store so it is not reused on the next start.
func (c *Client) Login(ctx context.Context, session models.Session) (models.LoginStatus, error) {

	if !session.IsValid() {
		return models.LoginStatusFailed, nil
	}

	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", session.AuthorizationHeader()).
		Get("/terminal/user")

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return models.LoginStatusIndeterminate, err
		}
		logrus.WithError(err).Warnln("No response from hub")
		return models.LoginStatusIndeterminate, nil
	}

	logrus.WithFields(logrus.Fields{
		"status": res.StatusCode(),
		"uuid":   session.UUID(),
	}).Debugln("Hub login response")

	switch res.StatusCode() {
	case http.StatusOK:
		return models.LoginStatusSuccess, nil
	case http.StatusUnauthorized:
		if c.store != nil {
			if err := c.store.RemoveSession(); err != nil {
				return models.LoginStatusFailed, fmt.Errorf("failed to remove session: %w", err)
			}
		}
		return models.LoginStatusFailed, nil
	default:
		return models.LoginStatusIndeterminate, nil
	}
}

// Logout revokes the session on the hub and forgets the local copy. The
// local copy is removed even when the hub cannot be reached.
func (c *Client) Logout(ctx context.Context, session models.Session) error {

	var revokeErr error

	if session.IsValid() {
		res, err := c.client.R().
			SetContext(ctx).
			SetHeader("Authorization", session.AuthorizationHeader()).
			Get("/logout")

		if err != nil {
			revokeErr = fmt.Errorf("failed to revoke session: %w", err)
		} else if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusUnauthorized {
			revokeErr = fmt.Errorf("failed to revoke session: unexpected status %d", res.StatusCode())
		}
	}

	if c.store != nil {
		if err := c.store.RemoveSession(); err != nil {
			return errors.Join(revokeErr, fmt.Errorf("failed to remove session: %w", err))
		}
	}

	return revokeErr
}
