package observability

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/gsxws/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(remoteCalls.WithLabelValues("WarrantyStatus", OutcomeOK))
	RecordRemoteCall("WarrantyStatus", OutcomeOK, 12*time.Millisecond)
	if got := testutil.ToFloat64(remoteCalls.WithLabelValues("WarrantyStatus", OutcomeOK)); got != before+1 {
		t.Fatalf("unexpected call count: %v", got)
	}

	RecordFault("Logout", "10001")
	if got := testutil.ToFloat64(remoteFaults.WithLabelValues("Logout", "10001")); got < 1 {
		t.Fatalf("unexpected fault count: %v", got)
	}

	base := testutil.ToFloat64(coercionFailures.WithLabelValues("RepairDetails"))
	RecordCoercionFailures("RepairDetails", 0)
	RecordCoercionFailures("RepairDetails", 2)
	if got := testutil.ToFloat64(coercionFailures.WithLabelValues("RepairDetails")); got != base+2 {
		t.Fatalf("unexpected coercion failures: %v", got)
	}
}

func TestServeExposesCollectors(t *testing.T) {
	testlog.Start(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := Serve(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	RecordRemoteCall("RepairStatus", OutcomeOK, time.Millisecond)

	resp, err := http.Get("http://" + addr.String() + "/metrics")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `gsxws_remote_calls_total{operation="RepairStatus",outcome="ok"}`) {
		t.Fatalf("scrape lacks remote call counter:\n%s", body)
	}

	if _, err := Serve(ctx, "256.0.0.1:bad"); err == nil {
		t.Fatalf("expected listen error")
	}
}
