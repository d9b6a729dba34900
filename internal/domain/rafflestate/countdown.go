package rafflestate

import (
	"strconv"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync"
)

// Scheduler runs at most one countdown per raffle identity. Starting a
// countdown for a raffle that already has one replaces it, so a re-displayed
// view never stacks timers, and stopped countdowns never tick again.
type Scheduler struct {
	interval time.Duration
	now      func() int64

	timers *xsync.MapOf[string, *countdown]
}

type countdown struct {
	stop chan struct{}
	once sync.Once
}

func (c *countdown) halt() {
	c.once.Do(func() { close(c.stop) })
}

func NewScheduler() *Scheduler {
	return newScheduler(time.Second, func() int64 { return time.Now().UnixNano() })
}

func newScheduler(interval time.Duration, now func() int64) *Scheduler {
	return &Scheduler{
		interval: interval,
		now:      now,
		timers:   xsync.NewMapOf[*countdown](),
	}
}

// Start begins ticking the remaining time of the given raffle, invoking
// onTick with the rendered countdown once immediately and then on every
// interval. The last invocation delivers the terminal label, after which the
// countdown unregisters itself.
func (s *Scheduler) Start(raffleID, endTime int64, onTick func(string)) {
	key := strconv.FormatInt(raffleID, 10)

	cd := &countdown{stop: make(chan struct{})}
	if prev, ok := s.timers.Load(key); ok {
		prev.halt()
	}
	s.timers.Store(key, cd)

	go s.run(key, cd, endTime, onTick)
}

func (s *Scheduler) run(key string, cd *countdown, endTime int64, onTick func(string)) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		remaining := endTime - s.now()
		if remaining <= 0 {
			onTick(ExpiredLabel)
			s.unregister(key, cd)
			return
		}

		onTick(FormatRemaining(remaining))

		select {
		case <-cd.stop:
			return
		case <-ticker.C:
		}
	}
}

// Stop cancels the countdown of one raffle, if any. Called when the view
// navigates away or switches to another raffle.
func (s *Scheduler) Stop(raffleID int64) {
	key := strconv.FormatInt(raffleID, 10)
	if cd, ok := s.timers.LoadAndDelete(key); ok {
		cd.halt()
	}
}

// StopAll cancels every running countdown. Called on view teardown.
func (s *Scheduler) StopAll() {
	s.timers.Range(func(key string, cd *countdown) bool {
		cd.halt()
		s.timers.Delete(key)
		return true
	})
}

func (s *Scheduler) unregister(key string, cd *countdown) {
	if current, ok := s.timers.Load(key); ok && current == cd {
		s.timers.Delete(key)
	}
}
