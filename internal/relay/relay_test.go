package relay

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/danmuck/gutters"
	"github.com/danmuck/gutters/internal/testutil/testlog"
)

func TestConfigValidate(t *testing.T) {
	testlog.Start(t)
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if err := (Config{ListenAddr: ":9400"}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if err := (Config{Name: "relay.test"}).Validate(); err == nil {
		t.Fatalf("expected error for missing listen addr")
	}
}

func TestServeRendezvousAndEcho(t *testing.T) {
	testlog.Start(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Name = "relay.test"
	cfg.Echo = true
	svc := NewService(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- svc.Serve(ctx, ln)
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	payload := 42.0
	if err := gutters.ThrowAndWait(conn, &payload); err != nil {
		t.Fatalf("throw and wait: %v", err)
	}
	var echoed float64
	if err := gutters.PickUp(conn, &echoed); err != nil {
		t.Fatalf("pick up echo: %v", err)
	}
	if echoed != 42.0 {
		t.Fatalf("unexpected echo: %v", echoed)
	}

	// Counters land just after the bytes the client already observed, so
	// poll briefly instead of asserting immediately.
	waitForStats(t, svc, func(s Stats) bool {
		return s.LogsPickedUp == 1 && s.LogsEchoed == 1
	})

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("serve did not stop on cancel")
	}
}

func TestServeMultipleLogsSequentially(t *testing.T) {
	testlog.Start(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Name = "relay.test"
	svc := NewService(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = svc.Serve(ctx, ln)
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 3; i++ {
		payload := float64(i) + 0.5
		if err := gutters.ThrowAndWait(conn, &payload); err != nil {
			t.Fatalf("throw %d: %v", i, err)
		}
	}
	waitForStats(t, svc, func(s Stats) bool {
		return s.LogsPickedUp == 3
	})
}

func waitForStats(t *testing.T, svc *Service, ok func(Stats) bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		if ok(svc.SnapshotStats()) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("stats condition not reached: %+v", svc.SnapshotStats())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAdminRouterStats(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultConfig()
	cfg.Name = "relay.admin-test"
	svc := NewService(cfg)
	r := svc.adminRouter()
	if r == nil {
		t.Fatalf("expected admin router")
	}
	routes := r.Routes()
	want := map[string]bool{"/healthz": false, "/stats": false, "/metrics": false}
	for _, route := range routes {
		if _, ok := want[route.Path]; ok {
			want[route.Path] = true
		}
	}
	for path, seen := range want {
		if !seen {
			t.Fatalf("admin route missing: %s", path)
		}
	}
}
