// ABOUTME: Google Calendar client: OAuth flow, token refresh and authenticated service construction.
// ABOUTME: The token lives in a JSON file and is written back whenever it is refreshed.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/harperreed/lifedash/internal/logging"
)

const (
	DefaultRedirectURL = "http://localhost:8000/api/calendar/oauth/callback"
	DefaultTimeZone    = "Europe/Lisbon"
	DefaultDays        = 7
	MaxResults         = 50

	stateTTL = 10 * time.Minute
)

var (
	ErrNotConfigured   = errors.New("google oauth credentials not configured, set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET")
	ErrUnauthenticated = errors.New("not authenticated with Google Calendar, visit /api/calendar/auth to connect")
	ErrInvalidState    = errors.New("unknown or expired oauth state")
)

// UpstreamError wraps a failure reported by the Google Calendar API.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "Google Calendar API error: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Config holds calendar client settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenPath    string
	TimeZone     string

	// Endpoint overrides the Calendar API base URL.
	Endpoint string
	// OAuthEndpoint overrides Google's authorization and token URLs.
	OAuthEndpoint *oauth2.Endpoint
	// HTTPClient is the base client for OAuth and API requests.
	HTTPClient *http.Client
}

// Status reports whether a usable token is on file.
type Status struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

// Client talks to Google Calendar on behalf of the single configured user.
type Client struct {
	cfg    Config
	oauth  *oauth2.Config
	tokens *TokenStore
	loc    *time.Location
	now    func() time.Time

	mu     sync.Mutex
	states map[string]time.Time
}

// New creates a calendar client. It does not touch the network.
func New(cfg Config) *Client {
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = DefaultRedirectURL
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = DefaultTimeZone
	}

	endpoint := google.Endpoint
	if cfg.OAuthEndpoint != nil {
		endpoint = *cfg.OAuthEndpoint
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logging.Warn().Err(err).Str("timezone", cfg.TimeZone).Msg("unknown calendar timezone, using UTC")
		loc = time.UTC
	}

	return &Client{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{gcal.CalendarScope},
			Endpoint:     endpoint,
		},
		tokens: NewTokenStore(cfg.TokenPath),
		loc:    loc,
		now:    time.Now,
		states: make(map[string]time.Time),
	}
}

// SetClock overrides the time source.
func (c *Client) SetClock(now func() time.Time) {
	c.now = now
}

// Configured reports whether OAuth client credentials are set.
func (c *Client) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

// Location returns the zone used for timed events.
func (c *Client) Location() *time.Location {
	return c.loc
}

// Status checks whether a valid (or refreshable) token is stored.
func (c *Client) Status(ctx context.Context) Status {
	if _, err := c.tokenSource(ctx); err != nil {
		return Status{Connected: false, Message: "Google Calendar not connected. Visit /api/calendar/auth to connect."}
	}
	return Status{Connected: true, Message: "Google Calendar is connected"}
}

// AuthURL starts the consent flow, requesting offline access so a refresh token is issued.
func (c *Client) AuthURL() (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	state := uuid.New().String()
	c.mu.Lock()
	c.pruneStates()
	c.states[state] = c.now().Add(stateTTL)
	c.mu.Unlock()

	return c.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	), nil
}

// Exchange trades an authorization code for a token and stores it.
func (c *Client) Exchange(ctx context.Context, code, state string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if !c.consumeState(state) {
		return ErrInvalidState
	}

	tok, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return &UpstreamError{Err: fmt.Errorf("exchange authorization code: %w", err)}
	}
	if err := c.tokens.Save(tok); err != nil {
		return fmt.Errorf("save calendar token: %w", err)
	}
	return nil
}

// Disconnect forgets the stored token.
func (c *Client) Disconnect() error {
	return c.tokens.Delete()
}

func (c *Client) consumeState(state string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires, ok := c.states[state]
	delete(c.states, state)
	return ok && c.now().Before(expires)
}

// pruneStates drops expired states. Caller holds c.mu.
func (c *Client) pruneStates() {
	now := c.now()
	for s, expires := range c.states {
		if !now.Before(expires) {
			delete(c.states, s)
		}
	}
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	if c.cfg.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, c.cfg.HTTPClient)
}

// tokenSource loads the stored token, refreshing and persisting it when expired.
func (c *Client) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	stored, err := c.tokens.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Ctx(ctx).Warn().Err(err).Msg("unusable calendar token")
		}
		return nil, ErrUnauthenticated
	}

	if !stored.Valid() && stored.RefreshToken == "" {
		return nil, ErrUnauthenticated
	}

	fresh, err := c.oauth.TokenSource(c.withHTTPClient(ctx), stored).Token()
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("calendar token refresh failed")
		return nil, refreshError(err)
	}

	if fresh.AccessToken != stored.AccessToken {
		if fresh.RefreshToken == "" {
			fresh.RefreshToken = stored.RefreshToken
		}
		if err := c.tokens.Save(fresh); err != nil {
			logging.Ctx(ctx).Error().Err(err).Msg("persist refreshed calendar token")
		}
	}
	return oauth2.StaticTokenSource(fresh), nil
}

// refreshError reports a revoked or rejected grant as ErrUnauthenticated.
// Outages and transport failures stay upstream errors.
func refreshError(err error) error {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return &UpstreamError{Err: err}
	}
	switch re.ErrorCode {
	case "invalid_grant", "unauthorized_client", "invalid_client":
		return ErrUnauthenticated
	}
	if re.Response != nil {
		switch re.Response.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return ErrUnauthenticated
		}
	}
	return &UpstreamError{Err: err}
}

func (c *Client) service(ctx context.Context) (*gcal.Service, error) {
	ts, err := c.tokenSource(ctx)
	if err != nil {
		return nil, err
	}

	opts := []option.ClientOption{option.WithHTTPClient(oauth2.NewClient(c.withHTTPClient(ctx), ts))}
	if c.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.cfg.Endpoint))
	}

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return svc, nil
}
