package ui

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// DefaultInboxSize bounds the messages waiting for the event loop.
const DefaultInboxSize = 256

// Inbox hands messages from foreign threads (OS hooks, web view callbacks)
// to the event loop in arrival order. Pointer samples are dropped when the
// inbox is full; control messages wait for room.
type Inbox struct {
	msgs    chan tea.Msg
	done    chan struct{}
	once    sync.Once
	dropped atomic.Int64
}

// NewInbox returns an inbox holding up to size messages.
func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Inbox{
		msgs: make(chan tea.Msg, size),
		done: make(chan struct{}),
	}
}

// PostSample queues a sample without blocking. It reports whether the
// sample was queued.
func (in *Inbox) PostSample(s pointer.Sample) bool {
	select {
	case <-in.done:
		return false
	default:
	}
	select {
	case in.msgs <- SampleMsg(s):
		return true
	default:
		in.dropped.Add(1)
		return false
	}
}

// Post queues a control message, waiting for room unless the inbox is
// closed.
func (in *Inbox) Post(msg tea.Msg) {
	select {
	case <-in.done:
		return
	default:
	}
	select {
	case in.msgs <- msg:
	case <-in.done:
	}
}

// Dropped returns the number of samples dropped so far.
func (in *Inbox) Dropped() int64 {
	return in.dropped.Load()
}

// Pump delivers queued messages to send until Close. Run it on its own
// goroutine; send is usually tea.Program.Send.
func (in *Inbox) Pump(send func(tea.Msg)) {
	for {
		select {
		case <-in.done:
			return
		default:
		}
		select {
		case msg := <-in.msgs:
			send(msg)
		case <-in.done:
			return
		}
	}
}

// Close stops Pump and makes further posts no-ops. Safe to call more than
// once.
func (in *Inbox) Close() {
	in.once.Do(func() { close(in.done) })
}
