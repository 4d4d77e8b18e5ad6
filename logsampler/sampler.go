/*
Package logsampler suppresses repeated log events from hot paths. Device
tree walks hit the same failing instance over and over (a phantom device
that no longer resolves, a property the caller cannot read); logging every
occurrence drowns the interesting lines. A sampler lets the first event
through, counts the repeats, and surfaces the count when the site goes
quiet.
*/
package logsampler

import (
	"sync"
	"sync/atomic"
	"time"
)

// SummaryReporter receives the suppressed-event counts. Keeps the sampler
// decoupled from any logging library.
type SummaryReporter interface {
	LogSummary(key string, suppressed int64)
}

// Sampler decides whether a log event should be written. The key is a
// stable identifier for the log site, a device instance id works well.
type Sampler interface {
	// ShouldLog reports whether the event should be written and how many
	// events were suppressed for this key since the last one written.
	ShouldLog(key string) (bool, int64)
	// Flush reports a summary of all currently suppressed events.
	Flush()
	// Close stops background reporting and flushes one last time.
	Close()
}

type siteState struct {
	count    atomic.Int64
	lastSeen atomic.Int64
	lastLog  atomic.Int64
}

// DeduplicatingSampler logs each key at most once per quiet window and
// counts the rest. Safe for concurrent use.
type DeduplicatingSampler struct {
	window   int64
	logs     sync.Map
	stopCh   chan struct{}
	stopOnce sync.Once
	reporter SummaryReporter
}

// NewDeduplicatingSampler creates a sampler with the given quiet window.
// A nil reporter disables summaries, ShouldLog still returns the counts.
func NewDeduplicatingSampler(window time.Duration, reporter SummaryReporter) *DeduplicatingSampler {
	s := &DeduplicatingSampler{
		window:   int64(window),
		stopCh:   make(chan struct{}),
		reporter: reporter,
	}
	if s.reporter != nil {
		go s.reportLoop()
	}
	return s
}

// ShouldLog implements Sampler.
func (s *DeduplicatingSampler) ShouldLog(key string) (bool, int64) {
	now := time.Now().UnixNano()
	val, _ := s.logs.LoadOrStore(key, &siteState{})
	site := val.(*siteState)
	site.lastSeen.Store(now)

	lastLog := site.lastLog.Load()
	if now-lastLog > s.window {
		if site.lastLog.CompareAndSwap(lastLog, now) {
			return true, site.count.Swap(0)
		}
	}
	site.count.Add(1)
	return false, 0
}

// Flush implements Sampler.
func (s *DeduplicatingSampler) Flush() {
	s.flush()
}

func (s *DeduplicatingSampler) flush() {
	if s.reporter == nil {
		return
	}
	s.logs.Range(func(key, value any) bool {
		site := value.(*siteState)
		if suppressed := site.count.Swap(0); suppressed > 0 {
			s.reporter.LogSummary(key.(string), suppressed)
		}
		s.logs.Delete(key)
		return true
	})
}

// reportLoop periodically reports and drops sites that went quiet, so the
// map does not grow with every device id ever seen.
func (s *DeduplicatingSampler) reportLoop() {
	interval := max(time.Duration(s.window*3), 10*time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now().UnixNano()
			s.logs.Range(func(key, value any) bool {
				site := value.(*siteState)
				if now-site.lastSeen.Load() > int64(interval) {
					if suppressed := site.count.Swap(0); suppressed > 0 {
						s.reporter.LogSummary(key.(string), suppressed)
					}
					s.logs.Delete(key)
				}
				return true
			})
		case <-s.stopCh:
			return
		}
	}
}

// Close implements Sampler.
func (s *DeduplicatingSampler) Close() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.flush()
	})
}
