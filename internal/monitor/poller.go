package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ippctl/ippctl/internal/logging"
)

// Poller runs a Fetcher on a fixed interval and caches the latest Status.
// It fetches once immediately on Start so readers never wait a full interval
// for the first snapshot.
type Poller struct {
	fetcher  Fetcher
	interval time.Duration

	mu   sync.RWMutex
	last Status
	seen bool

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewPoller creates a poller; it does not start polling until Start is called.
func NewPoller(fetcher Fetcher, interval time.Duration) *Poller {
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop in a goroutine.
func (p *Poller) Start() {
	go p.run()
}

// Stop terminates the polling loop and waits for it to exit. Safe to call
// more than once.
func (p *Poller) Stop() {
	p.once.Do(func() { close(p.stop) })
	<-p.done
}

// Last returns the most recent status. ok is false until the first fetch
// has completed.
func (p *Poller) Last() (status Status, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last, p.seen
}

// Refresh performs a fetch immediately, updates the cache, and returns the
// result. Callers use this right after a control operation instead of
// waiting for the next tick.
func (p *Poller) Refresh() Status {
	status := p.fetcher.Fetch()

	p.mu.Lock()
	p.last = status
	p.seen = true
	p.mu.Unlock()

	logging.Debug("printer status refreshed",
		zap.Bool("reachable", status.Reachable),
		zap.Duration("latency", status.Latency),
		zap.String("error", status.Err),
	)

	return status
}

func (p *Poller) run() {
	defer close(p.done)

	p.Refresh()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.Refresh()
		case <-p.stop:
			return
		}
	}
}
