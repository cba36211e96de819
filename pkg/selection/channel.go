// Package selection implements the single-owner broadcast channel that links
// day cells to the month container that owns the active-day state.
//
// Cells hold a Reader: they may publish activation intents and observe the
// committed state, but only the Owner returned by Bind can change it.
package selection

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"

	"tableflip.dev/remcal/pkg/calendar"
)

// ErrOwnerBound is returned when a second owner tries to bind a channel.
var ErrOwnerBound = errors.New("selection: channel already has an owner")

// Transition describes a committed change of the active day. A zero From or
// To with the matching flag unset means "closed".
type Transition struct {
	From    calendar.Date
	HadFrom bool
	To      calendar.Date
	HasTo   bool
}

// Opened reports whether the transition leaves a day active.
func (t Transition) Opened() bool { return t.HasTo }

// Listener observes committed transitions.
type Listener func(Transition)

// Sink receives activation intents. Only the owner installs one.
type Sink func(day calendar.Date)

// Subscription releases a listener. Unsubscribe is safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// Reader is the capability handed down the view tree.
type Reader interface {
	RequestActivate(day calendar.Date)
	Current() (calendar.Date, bool)
	Subscribe(l Listener) Subscription
}

// Channel fans activation intents in to one owner and committed transitions
// out to every subscriber. Deliveries run synchronously in publish order;
// anything published while a delivery is running is queued behind it.
type Channel struct {
	mu sync.Mutex

	log *slog.Logger

	sink      Sink
	listeners map[uint64]Listener
	nextID    uint64

	active    calendar.Date
	hasActive bool

	queue       []func()
	dispatching bool
}

var _ Reader = (*Channel)(nil)

// New creates an unbound channel. A nil logger discards diagnostics.
func New(log *slog.Logger) *Channel {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Channel{
		log:       log.With("component", "selection"),
		listeners: make(map[uint64]Listener),
	}
}

// Bind installs the single owner sink and returns the handle used to commit
// state changes.
func (c *Channel) Bind(sink Sink) (*Owner, error) {
	if sink == nil {
		return nil, errors.New("selection: nil sink")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sink != nil {
		return nil, ErrOwnerBound
	}
	c.sink = sink
	return &Owner{c: c}, nil
}

// RequestActivate publishes an activation intent toward the owner. Requests
// for the day that is already active are absorbed.
func (c *Channel) RequestActivate(day calendar.Date) {
	c.mu.Lock()
	sink := c.sink
	duplicate := c.hasActive && c.active.Equal(day)
	c.mu.Unlock()

	switch {
	case sink == nil:
		c.log.Debug("activation dropped", "day", day, "reason", "no owner")
		return
	case duplicate:
		c.log.Debug("activation rejected", "day", day, "reason", "already active")
		return
	}
	c.dispatch(func() { sink(day) })
}

// Current returns the committed active day, if any.
func (c *Channel) Current() (calendar.Date, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.hasActive
}

// Subscribe registers l for committed transitions.
func (c *Channel) Subscribe(l Listener) Subscription {
	if l == nil {
		return noopSubscription{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = l
	return &subscription{c: c, id: id}
}

// Subscribers returns the number of live subscriptions.
func (c *Channel) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

func (c *Channel) unsubscribe(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.listeners, id)
}

// commit swaps the snapshot and broadcasts. Returns false when nothing changed.
func (c *Channel) commit(day calendar.Date, open bool) bool {
	c.mu.Lock()
	if c.hasActive == open && (!open || c.active.Equal(day)) {
		c.mu.Unlock()
		return false
	}
	t := Transition{From: c.active, HadFrom: c.hasActive, To: day, HasTo: open}
	if !open {
		t.To = calendar.Date{}
	}
	c.active, c.hasActive = t.To, open
	c.mu.Unlock()

	c.dispatch(func() { c.broadcast(t) })
	return true
}

func (c *Channel) broadcast(t Transition) {
	c.mu.Lock()
	ids := make([]uint64, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	slices.Sort(ids)
	for _, id := range ids {
		c.mu.Lock()
		l, ok := c.listeners[id]
		c.mu.Unlock()
		// A listener released earlier in this broadcast must not fire.
		if ok {
			l(t)
		}
	}
}

// dispatch runs fn now, or after the delivery in progress finishes.
func (c *Channel) dispatch(fn func()) {
	c.mu.Lock()
	c.queue = append(c.queue, fn)
	if c.dispatching {
		c.mu.Unlock()
		return
	}
	c.dispatching = true
	c.mu.Unlock()

	for {
		c.mu.Lock()
		if len(c.queue) == 0 {
			c.dispatching = false
			c.mu.Unlock()
			return
		}
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()
		next()
	}
}

// Owner is the only handle allowed to change the committed active day.
type Owner struct {
	c    *Channel
	once sync.Once
	gone bool
}

// Activate commits day as the active day, replacing any previous one.
func (o *Owner) Activate(day calendar.Date) bool {
	if o.released() {
		return false
	}
	return o.c.commit(day, true)
}

// Clear commits the closed state.
func (o *Owner) Clear() bool {
	if o.released() {
		return false
	}
	return o.c.commit(calendar.Date{}, false)
}

// Release detaches the owner sink. Later intents are dropped.
func (o *Owner) Release() {
	o.once.Do(func() {
		o.c.mu.Lock()
		o.c.sink = nil
		o.gone = true
		o.c.mu.Unlock()
	})
}

func (o *Owner) released() bool {
	o.c.mu.Lock()
	defer o.c.mu.Unlock()
	return o.gone
}

type subscription struct {
	c    *Channel
	id   uint64
	once sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() { s.c.unsubscribe(s.id) })
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}
