package monitor

import (
	"net/http"
	"time"

	"github.com/ippctl/ippctl/internal/ipp"
)

// DefaultProbeTimeout bounds a single reachability probe.
const DefaultProbeTimeout = 5 * time.Second

// Status is a snapshot of the printer's reachability at a point in time.
type Status struct {
	Reachable bool
	Latency   time.Duration
	CheckedAt time.Time
	Err       string // Probe failure description, empty when reachable
}

// Fetcher produces one status snapshot per call.
type Fetcher interface {
	Fetch() Status
}

// HTTPFetcher probes the printer's IPP endpoint with a plain HTTP request.
// Any HTTP response, including an error status, counts as reachable; IPP
// endpoints routinely reject bare GETs but answering at all proves the
// service is up.
type HTTPFetcher struct {
	Endpoint ipp.Endpoint
	Client   *http.Client
}

// NewHTTPFetcher creates a fetcher for the given endpoint with the default
// probe timeout.
func NewHTTPFetcher(endpoint ipp.Endpoint) *HTTPFetcher {
	return &HTTPFetcher{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: DefaultProbeTimeout},
	}
}

// Fetch performs one probe.
func (f *HTTPFetcher) Fetch() Status {
	start := time.Now()

	resp, err := f.Client.Get(f.Endpoint.URL())
	status := Status{
		Latency:   time.Since(start),
		CheckedAt: time.Now(),
	}
	if err != nil {
		status.Err = err.Error()
		return status
	}
	defer func() { _ = resp.Body.Close() }()

	status.Reachable = true
	return status
}
