package gsx

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/danmuck/gsxws/internal/protocol"
)

type recordedCall struct {
	op  Operation
	env *Envelope
}

// fakeTransport answers each operation with a canned response element.
type fakeTransport struct {
	mu        sync.Mutex
	responses map[Operation]string
	errs      map[Operation]error
	calls     []recordedCall
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		responses: map[Operation]string{
			OpAuthenticate: `<AuthenticateResponse><userSessionId>tok-1</userSessionId><operationId>op-1</operationId></AuthenticateResponse>`,
		},
		errs: map[Operation]error{},
	}
}

func (f *fakeTransport) Call(_ context.Context, op Operation, env *Envelope) (*protocol.Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{op: op, env: env})
	if err := f.errs[op]; err != nil {
		return nil, err
	}
	doc, ok := f.responses[op]
	if !ok {
		doc = "<" + string(op) + "Response/>"
	}
	return protocol.ParseNode(strings.NewReader(doc))
}

func (f *fakeTransport) last(t *testing.T) recordedCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatalf("no calls recorded")
	}
	return f.calls[len(f.calls)-1]
}

func newTestClient(t *testing.T, f *fakeTransport, opts ...Option) *Client {
	t.Helper()
	dial := WithDialer(func(string) (Transport, error) { return f, nil })
	c, err := New(append([]Option{dial}, opts...)...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func connectTestClient(t *testing.T, f *fakeTransport, opts ...Option) *Client {
	t.Helper()
	c := newTestClient(t, f, opts...)
	_, err := c.Connect(context.Background(), Credentials{
		UserID:   "tech@example.com",
		Password: "secret",
		SoldTo:   "0000123456",
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	return c
}

func bodyText(t *testing.T, env *Envelope, path ...string) string {
	t.Helper()
	v := protocol.MapOf(env.Body)
	for _, key := range path {
		next, ok := v.Get(key)
		if !ok {
			t.Fatalf("envelope body missing %s", strings.Join(path, "."))
		}
		v = next
	}
	return v.Text()
}
