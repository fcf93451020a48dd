package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/gsxws/internal/protocol"
	"github.com/rs/zerolog/log"
)

const maxResponseBytes = 64 << 20

// Config holds transport defaults.
type Config struct {
	Namespace string
	Timeout   time.Duration
	UserAgent string
	TLS       TLSConfig
}

func DefaultConfig() Config {
	return Config{
		Namespace: DefaultNamespace,
		Timeout:   60 * time.Second,
		UserAgent: "gsxws",
	}
}

type Option func(*Transport)

// WithHTTPClient replaces the default client. Config.TLS is ignored when a
// client is supplied.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) {
		if c != nil {
			t.client = c
		}
	}
}

func WithConfig(cfg Config) Option {
	return func(t *Transport) {
		if cfg.Namespace != "" {
			t.cfg.Namespace = cfg.Namespace
		}
		if cfg.Timeout > 0 {
			t.cfg.Timeout = cfg.Timeout
		}
		if cfg.UserAgent != "" {
			t.cfg.UserAgent = cfg.UserAgent
		}
		if !cfg.TLS.IsZero() {
			t.cfg.TLS = cfg.TLS
		}
	}
}

// Transport posts SOAP envelopes to a single endpoint.
type Transport struct {
	endpoint string
	cfg      Config
	client   *http.Client
}

func New(endpoint string, opts ...Option) (*Transport, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}
	t := &Transport{endpoint: endpoint, cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(t)
	}
	if t.client == nil {
		client, err := newHTTPClient(t.cfg)
		if err != nil {
			return nil, err
		}
		t.client = client
	}
	return t, nil
}

func newHTTPClient(cfg Config) (*http.Client, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.TLS.IsZero() {
		return client, nil
	}
	tlsCfg, err := cfg.TLS.ClientConfig()
	if err != nil {
		return nil, err
	}
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.TLSClientConfig = tlsCfg
	client.Transport = tr
	return client, nil
}

func (t *Transport) Endpoint() string {
	return t.endpoint
}

// Call performs one request/response exchange. Remote faults come back as
// *Fault; HTTP errors without a fault body as ErrHTTPStatus.
func (t *Transport) Call(ctx context.Context, req Request) (*protocol.Node, error) {
	var payload bytes.Buffer
	if err := EncodeEnvelope(&payload, t.cfg.Namespace, req); err != nil {
		return nil, fmt.Errorf("soap: encode %s: %w", req.Operation, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, &payload)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("SOAPAction", `"`+req.Operation+`"`)
	httpReq.Header.Set("User-Agent", t.cfg.UserAgent)

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("soap: %s: %w", req.Operation, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("operation", req.Operation).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("soap call")

	node, err := DecodeEnvelope(io.LimitReader(resp.Body, maxResponseBytes))
	var fault *Fault
	if errors.As(err, &fault) {
		return nil, fault
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s %d", ErrHTTPStatus, req.Operation, resp.StatusCode)
	}
	if err != nil {
		return nil, fmt.Errorf("soap: decode %s: %w", req.Operation, err)
	}
	return node, nil
}
