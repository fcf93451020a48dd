package gsx

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/danmuck/gsxws/internal/protocol"
	"github.com/danmuck/gsxws/internal/protocol/soap"
	"github.com/danmuck/gsxws/internal/reference"
)

const DefaultLocale = "en_US"

// Transport executes one remote operation and returns the response element.
// Remote faults are returned as errors implementing FaultCode/FaultString.
type Transport interface {
	Call(ctx context.Context, op Operation, env *Envelope) (*protocol.Node, error)
}

// Dialer binds a Transport to an endpoint URL.
type Dialer func(endpoint string) (Transport, error)

// SOAPDialer returns a Dialer producing HTTP SOAP transports.
func SOAPDialer(opts ...soap.Option) Dialer {
	return func(endpoint string) (Transport, error) {
		t, err := soap.New(endpoint, opts...)
		if err != nil {
			return nil, err
		}
		return soapTransport{t: t}, nil
	}
}

type soapTransport struct {
	t *soap.Transport
}

func (s soapTransport) Call(ctx context.Context, op Operation, env *Envelope) (*protocol.Node, error) {
	return s.t.Call(ctx, soap.Request{
		Operation: string(op),
		Session:   env.Session,
		Body:      env.Body,
	})
}

// Client owns one transport binding and at most one session.
type Client struct {
	dial             Dialer
	locales          reference.Locales
	endpointOverride string
	now              func() time.Time

	mu        sync.RWMutex
	transport Transport
	endpoint  string
	session   *Session
	locale    string
	formats   protocol.Formats
}

type Option func(*Client)

func WithDialer(d Dialer) Option {
	return func(c *Client) {
		if d != nil {
			c.dial = d
		}
	}
}

func WithLocales(l reference.Locales) Option {
	return func(c *Client) {
		if l != nil {
			c.locales = l
		}
	}
}

func WithLocale(locale string) Option {
	return func(c *Client) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithEndpoint replaces the templated endpoint URL. Init still validates
// environment and region.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpointOverride = url
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func New(opts ...Option) (*Client, error) {
	c := &Client{
		dial:   SOAPDialer(),
		now:    time.Now,
		locale: DefaultLocale,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.locales == nil {
		c.locales = reference.DefaultLocales()
	}
	formats, err := c.locales.Formats(c.locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	c.formats = formats
	return c, nil
}

// Locale returns the active locale.
func (c *Client) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// Endpoint returns the URL bound by the last Init, or "".
func (c *Client) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// Session returns a copy of the active session.
func (c *Client) Session() (Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

func (c *Client) marshal(p Payload) (*protocol.Map, error) {
	c.mu.RLock()
	formats := c.formats
	c.mu.RUnlock()
	m, err := protocol.MarshalMap(p, formats)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return m, nil
}
