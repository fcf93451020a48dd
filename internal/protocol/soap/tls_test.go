package soap

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danmuck/gsxws/internal/testutil/testlog"
	"github.com/danmuck/gsxws/internal/testutil/tlstest"
)

func TestTLSConfigValidate(t *testing.T) {
	testlog.Start(t)
	if err := (TLSConfig{CertFile: "client.crt"}).Validate(); !errors.Is(err, ErrTLSKeyFileRequired) {
		t.Fatalf("expected ErrTLSKeyFileRequired, got %v", err)
	}
	if err := (TLSConfig{KeyFile: "client.key"}).Validate(); !errors.Is(err, ErrTLSCertFileRequired) {
		t.Fatalf("expected ErrTLSCertFileRequired, got %v", err)
	}
	if err := (TLSConfig{}).Validate(); err != nil {
		t.Fatalf("zero config must be valid: %v", err)
	}
	if _, err := New("https://127.0.0.1", WithConfig(Config{TLS: TLSConfig{CAFile: "/nonexistent/ca.crt"}})); err == nil {
		t.Fatalf("expected missing ca bundle error")
	}
}

func TestTransportMutualTLS(t *testing.T) {
	testlog.Start(t)
	ca := tlstest.NewAuthority(t, "gsx-test-ca")
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.TLS.PeerCertificates) == 0 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = io.WriteString(w, warrantyResponse)
	}))
	srv.TLS = ca.ServerConfig(t)
	srv.StartTLS()
	defer srv.Close()

	certPath, keyPath := ca.IssueClientCert(t, "gsx-client")
	tr, err := New(srv.URL, WithConfig(Config{TLS: TLSConfig{
		CAFile:   ca.CAFile(),
		CertFile: certPath,
		KeyFile:  keyPath,
	}}))
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	node, err := tr.Call(context.Background(), Request{Operation: "WarrantyStatus", Session: "tok"})
	if err != nil {
		t.Fatalf("mtls call: %v", err)
	}
	if node.Find("serialNumber") == nil {
		t.Fatalf("expected warranty info in response")
	}

	anon, err := New(srv.URL, WithConfig(Config{TLS: TLSConfig{CAFile: ca.CAFile()}}))
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	if _, err := anon.Call(context.Background(), Request{Operation: "WarrantyStatus"}); err == nil {
		t.Fatalf("expected handshake failure without client certificate")
	}
}
