package gsx

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/danmuck/gsxws/internal/protocol"
	"github.com/rs/zerolog/log"
)

// EndpointTemplate is filled with host, region, region.
const EndpointTemplate = "https://gsx%s.apple.com/wsdl/%sAsp/gsx-%sAsp.wsdl"

// Hosts maps an environment to its host label.
var Hosts = map[string]string{
	"pr": "ws2",
	"it": "wsit",
	"ut": "wsut",
}

var Regions = []string{"am", "emea", "apac", "la"}

// Session is an authenticated GSX session.
type Session struct {
	Token     string
	Locale    string
	CreatedAt time.Time
}

// Credentials carries the authentication request and session placement.
type Credentials struct {
	UserID      string
	Password    string
	SoldTo      string
	Language    string
	Timezone    string
	Environment string
	Region      string
}

func (c Credentials) withDefaults() Credentials {
	if c.Language == "" {
		c.Language = "en"
	}
	if c.Timezone == "" {
		c.Timezone = "CEST"
	}
	if c.Environment == "" {
		c.Environment = "ut"
	}
	if c.Region == "" {
		c.Region = "emea"
	}
	return c
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("%w: missing user_id", ErrInvalidCredentials)
	}
	if c.Password == "" {
		return fmt.Errorf("%w: missing password", ErrInvalidCredentials)
	}
	if strings.TrimSpace(c.SoldTo) == "" {
		return fmt.Errorf("%w: missing sold_to", ErrInvalidCredentials)
	}
	return nil
}

// EndpointURL builds the service URL for an environment and region.
func EndpointURL(env, region string) (string, error) {
	host, ok := Hosts[env]
	if !ok {
		return "", fmt.Errorf("%w: environment %q should be one of pr,it,ut", ErrConfiguration, env)
	}
	if !slices.Contains(Regions, region) {
		return "", fmt.Errorf("%w: region %q should be one of %s", ErrConfiguration, region, strings.Join(Regions, ","))
	}
	return fmt.Sprintf(EndpointTemplate, host, region, region), nil
}

// Init binds the transport to the endpoint for env and region. Any active
// session is dropped.
func (c *Client) Init(env, region string) error {
	url, err := EndpointURL(env, region)
	if err != nil {
		return err
	}
	if c.endpointOverride != "" {
		url = c.endpointOverride
	}
	t, err := c.dial(url)
	if err != nil {
		return fmt.Errorf("%w: bind %s: %w", ErrConfiguration, url, err)
	}

	c.mu.Lock()
	c.transport = t
	c.endpoint = url
	c.session = nil
	c.mu.Unlock()

	log.Info().Str("environment", env).Str("region", region).Str("endpoint", url).Msg("gsx init")
	return nil
}

// Connect initializes the client and authenticates. On success the returned
// session becomes active for every envelope built afterwards.
func (c *Client) Connect(ctx context.Context, creds Credentials) (Session, error) {
	creds = creds.withDefaults()
	if err := creds.Validate(); err != nil {
		return Session{}, err
	}
	if err := c.Init(creds.Environment, creds.Region); err != nil {
		return Session{}, err
	}

	b := Operations[OpAuthenticate]
	body := protocol.NewMap().
		Set("userId", protocol.String(creds.UserID)).
		Set("password", protocol.String(creds.Password)).
		Set("languageCode", protocol.String(creds.Language)).
		Set("userTimeZone", protocol.String(creds.Timezone)).
		Set("serviceAccountNo", protocol.String(creds.SoldTo))
	res, err := c.Invoke(ctx, OpAuthenticate, c.Build(b.EnvelopeType, body), b.ResultField)
	if err != nil {
		return Session{}, err
	}
	token := strings.TrimSpace(res.Text())
	if token == "" {
		return Session{}, ErrNoSessionToken
	}

	c.mu.Lock()
	sess := Session{Token: token, Locale: c.locale, CreatedAt: c.now()}
	c.session = &sess
	c.mu.Unlock()

	log.Info().Str("user", creds.UserID).Str("sold_to", creds.SoldTo).Msg("gsx session established")
	return sess, nil
}

// Logout ends the remote session. The local session is cleared even when
// the remote call fails.
func (c *Client) Logout(ctx context.Context) error {
	if _, ok := c.Session(); !ok {
		return ErrNotConnected
	}
	b := Operations[OpLogout]
	env := c.Build(b.EnvelopeType, nil)

	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()

	_, err := c.Invoke(ctx, OpLogout, env, b.ResultField)
	if err != nil {
		log.Warn().Err(err).Msg("gsx logout failed; local session cleared")
		return err
	}
	log.Info().Msg("gsx session closed")
	return nil
}
