package gsx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danmuck/gsxws/internal/observability"
	"github.com/danmuck/gsxws/internal/protocol"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Envelope is one outbound call: a typed body plus session metadata.
type Envelope struct {
	ID   string
	Type string
	// Session is the token of the session active at build time, or "".
	Session string
	Body    *protocol.Map
}

// Payload is a loosely typed request body. Values are marshalled with the
// client's locale formats; see protocol.Marshal.
type Payload map[string]any

// Result is a normalized response and its coercion report.
type Result struct {
	protocol.Value
	Report protocol.Report
}

// Build creates an envelope of envType around body, stamped with the active
// session token.
func (c *Client) Build(envType string, body *protocol.Map) *Envelope {
	if body == nil {
		body = protocol.NewMap()
	}
	env := &Envelope{
		ID:   uuid.NewString(),
		Type: envType,
		Body: body,
	}
	c.mu.RLock()
	if c.session != nil {
		env.Session = c.session.Token
	}
	c.mu.RUnlock()
	return env
}

// Invoke calls op with env and normalizes the response. When resultField is
// set, only that field is returned; it is looked up among the response's
// children first, then anywhere below them. Remote faults come back as
// *Error.
func (c *Client) Invoke(ctx context.Context, op Operation, env *Envelope, resultField string) (*Result, error) {
	c.mu.RLock()
	t := c.transport
	c.mu.RUnlock()
	if t == nil {
		return nil, ErrNotInitialized
	}

	start := time.Now()
	node, err := t.Call(ctx, op, env)
	if err != nil {
		mapped := MapFault(err)
		outcome := observability.OutcomeError
		var gerr *Error
		if errors.As(mapped, &gerr) {
			outcome = observability.OutcomeFault
			observability.RecordFault(string(op), gerr.Code)
		}
		observability.RecordRemoteCall(string(op), outcome, time.Since(start))
		log.Warn().
			Str("operation", string(op)).
			Str("envelope", env.ID).
			Err(mapped).
			Msg("gsx call failed")
		return nil, mapped
	}
	observability.RecordRemoteCall(string(op), observability.OutcomeOK, time.Since(start))

	value, rep := protocol.Normalize(node)
	if !rep.OK() {
		observability.RecordCoercionFailures(string(op), len(rep.Fields))
		log.Warn().
			Str("operation", string(op)).
			Int("fields", len(rep.Fields)).
			Err(rep.Err()).
			Msg("gsx response kept raw values")
	}
	log.Debug().
		Str("operation", string(op)).
		Str("envelope", env.ID).
		Str("type", env.Type).
		Msg("gsx call")

	if resultField == "" {
		return &Result{Value: value, Report: rep}, nil
	}
	field, ok := value.Get(resultField)
	if !ok {
		field, ok = findValue(value, resultField)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrResultMissing, op, resultField)
	}
	return &Result{Value: field, Report: rep}, nil
}

// call runs op through its table entry.
func (c *Client) call(ctx context.Context, op Operation, body *protocol.Map) (*Result, error) {
	b, ok := op.Binding()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	return c.Invoke(ctx, op, c.Build(b.EnvelopeType, body), b.ResultField)
}

// findValue searches maps and lists depth-first for key.
func findValue(v protocol.Value, key string) (protocol.Value, bool) {
	switch v.Kind() {
	case protocol.KindMap:
		m, _ := v.Map()
		if found, ok := m.Get(key); ok {
			return found, true
		}
		for _, k := range m.Keys() {
			child, _ := m.Get(k)
			if found, ok := findValue(child, key); ok {
				return found, true
			}
		}
	case protocol.KindList:
		for _, item := range v.Items() {
			if found, ok := findValue(item, key); ok {
				return found, true
			}
		}
	}
	return protocol.Value{}, false
}
