package monitor

import (
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ippctl/ippctl/internal/ipp"
)

// fakeFetcher returns canned statuses and counts calls.
type fakeFetcher struct {
	mu     sync.Mutex
	calls  int
	status Status
}

func (f *fakeFetcher) Fetch() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	s := f.status
	s.CheckedAt = time.Now()
	return s
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestPollerCachesLatestStatus(t *testing.T) {
	fetcher := &fakeFetcher{status: Status{Reachable: true}}
	poller := NewPoller(fetcher, time.Hour) // Only the immediate fetch fires

	poller.Start()
	defer poller.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if status, ok := poller.Last(); ok {
			if !status.Reachable {
				t.Error("cached status should be reachable")
			}
			if status.CheckedAt.IsZero() {
				t.Error("CheckedAt should be set")
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("poller never produced a status")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPollerLastBeforeStart(t *testing.T) {
	poller := NewPoller(&fakeFetcher{}, time.Hour)

	if _, ok := poller.Last(); ok {
		t.Error("Last() should report no status before the first fetch")
	}
}

func TestPollerRefresh(t *testing.T) {
	fetcher := &fakeFetcher{status: Status{Reachable: false, Err: "connection refused"}}
	poller := NewPoller(fetcher, time.Hour)

	status := poller.Refresh()
	if status.Reachable {
		t.Error("Refresh() should return the fetched status")
	}
	if status.Err != "connection refused" {
		t.Errorf("Err = %q, want connection refused", status.Err)
	}

	cached, ok := poller.Last()
	if !ok {
		t.Fatal("Refresh() should populate the cache")
	}
	if cached.Err != status.Err {
		t.Error("cached status should match the refresh result")
	}
}

func TestPollerTicks(t *testing.T) {
	fetcher := &fakeFetcher{status: Status{Reachable: true}}
	poller := NewPoller(fetcher, 20*time.Millisecond)

	poller.Start()
	time.Sleep(120 * time.Millisecond)
	poller.Stop()

	if calls := fetcher.callCount(); calls < 3 {
		t.Errorf("fetcher called %d times, want at least 3", calls)
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	poller := NewPoller(&fakeFetcher{}, time.Hour)
	poller.Start()

	poller.Stop()
	poller.Stop() // Must not panic or block
}

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// IPP endpoints typically reject bare GETs; any answer means up
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("failed to parse server URL: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("failed to split host/port: %v", err)
	}
	port, _ := strconv.Atoi(portStr)

	fetcher := NewHTTPFetcher(ipp.Endpoint{Host: host, Port: port, BasePath: "/"})
	status := fetcher.Fetch()

	if !status.Reachable {
		t.Errorf("Fetch() = %+v, want reachable", status)
	}
	if status.Latency <= 0 {
		t.Error("Latency should be positive")
	}

	server.Close()
	status = fetcher.Fetch()
	if status.Reachable {
		t.Error("Fetch() should report unreachable after server close")
	}
	if status.Err == "" {
		t.Error("Err should describe the probe failure")
	}
}
