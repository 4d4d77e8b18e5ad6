package logsampler_test

import (
	"sync"
	"testing"
	"time"

	sampler "github.com/tekert/golang-cfgmgr/logsampler"
)

type recordingReporter struct {
	mu        sync.Mutex
	summaries map[string]int64
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{summaries: make(map[string]int64)}
}

func (r *recordingReporter) LogSummary(key string, suppressed int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries[key] += suppressed
}

func (r *recordingReporter) get(key string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summaries[key]
}

func TestDeduplicatingSampler(t *testing.T) {
	t.Run("LogsFirstAndSuppressesSecond", func(t *testing.T) {
		s := sampler.NewDeduplicatingSampler(100*time.Millisecond, nil)
		defer s.Close()

		if should, _ := s.ShouldLog("key1"); !should {
			t.Fatal("first log should pass")
		}
		if should, _ := s.ShouldLog("key1"); should {
			t.Fatal("second log within window should be suppressed")
		}
	})

	t.Run("LogsAfterWindowAndReportsSuppressed", func(t *testing.T) {
		s := sampler.NewDeduplicatingSampler(100*time.Millisecond, nil)
		defer s.Close()

		s.ShouldLog("key1")
		for range 5 {
			s.ShouldLog("key1")
		}

		time.Sleep(110 * time.Millisecond)

		should, suppressed := s.ShouldLog("key1")
		if !should {
			t.Fatal("log after window should pass")
		}
		if suppressed != 5 {
			t.Fatalf("expected 5 suppressed logs, got %d", suppressed)
		}
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		s := sampler.NewDeduplicatingSampler(time.Minute, nil)
		defer s.Close()

		if should, _ := s.ShouldLog("key1"); !should {
			t.Fatal("first log of key1 should pass")
		}
		if should, _ := s.ShouldLog("key2"); !should {
			t.Fatal("first log of key2 should pass")
		}
		if should, _ := s.ShouldLog("key1"); should {
			t.Fatal("repeat of key1 should be suppressed")
		}
	})

	t.Run("CloseFlushesSummaries", func(t *testing.T) {
		r := newRecordingReporter()
		s := sampler.NewDeduplicatingSampler(time.Minute, r)

		s.ShouldLog("key1")
		for range 3 {
			s.ShouldLog("key1")
		}
		s.Close()

		if got := r.get("key1"); got != 3 {
			t.Fatalf("expected flush to report 3 suppressed logs, got %d", got)
		}
	})

	t.Run("FlushResetsCounts", func(t *testing.T) {
		r := newRecordingReporter()
		s := sampler.NewDeduplicatingSampler(time.Minute, r)
		defer s.Close()

		s.ShouldLog("key1")
		s.ShouldLog("key1")
		s.Flush()
		s.Flush()

		if got := r.get("key1"); got != 1 {
			t.Fatalf("expected a single suppressed log reported once, got %d", got)
		}
	})

	t.Run("ConcurrentUse", func(t *testing.T) {
		s := sampler.NewDeduplicatingSampler(time.Minute, nil)
		defer s.Close()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 1000 {
					s.ShouldLog("shared")
				}
			}()
		}
		wg.Wait()
	})
}
