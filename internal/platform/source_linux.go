//go:build linux

package platform

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/stigoleg/mascot-overlay/internal/platform/linux"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// x11Source polls the cursor on the root window. X11 has no unprivileged
// global motion hook, so every changed poll result counts as one
// notification.
type x11Source struct {
	interval time.Duration
	session  linux.Session

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func newX11Source(interval time.Duration, session linux.Session) *x11Source {
	if interval < MinPollInterval {
		interval = MinPollInterval
	}
	return &x11Source{interval: interval, session: session}
}

func (s *x11Source) Start(emit func(pointer.Sample)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server %q: %w", s.session.XDisplay, err)
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running = true
	go s.poll(xu, emit, s.stop, s.done)
	log.Printf("platform: x11 pointer polling started every %v", s.interval)
	return nil
}

func (s *x11Source) poll(xu *xgbutil.XUtil, emit func(pointer.Sample), stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer xu.Conn().Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last changeFilter
	failures := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		reply, err := xproto.QueryPointer(xu.Conn(), xu.RootWin()).Reply()
		if err != nil {
			failures++
			if failures == 1 || failures%100 == 0 {
				log.Printf("platform: query pointer failed (%d times): %v", failures, err)
			}
			continue
		}
		failures = 0

		sample := sampleFromPointer(reply.RootX, reply.RootY, reply.Mask)
		if last.observe(sample) {
			emit(sample)
		}
	}
}

func (s *x11Source) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
	log.Printf("platform: x11 pointer polling stopped")
}

func (s *x11Source) Environment() Environment {
	return Environment{
		Provider:  "x11",
		Available: true,
		Message:   fmt.Sprintf("polling root window on %s (%s)", s.session.XDisplay, s.session),
		Guidance:  s.session.Guidance(),
	}
}

func sampleFromPointer(rootX, rootY int16, mask uint16) pointer.Sample {
	button := pointer.ButtonUp
	if mask&xproto.KeyButMaskButton1 != 0 {
		button = pointer.ButtonDown
	}
	return pointer.Sample{X: int(rootX), Y: int(rootY), Button: button}
}

// changeFilter turns a stream of poll results into notifications.
type changeFilter struct {
	last pointer.Sample
	seen bool
}

func (f *changeFilter) observe(s pointer.Sample) bool {
	if f.seen && f.last == s {
		return false
	}
	f.last = s
	f.seen = true
	return true
}
