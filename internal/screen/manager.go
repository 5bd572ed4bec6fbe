package screen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/logging"
)

// ErrNotRegistered is returned when a transition targets an identity with
// no registered factory. It signals a startup bug, and frame drivers treat
// it as fatal.
var ErrNotRegistered = errors.New("screen not registered")

// TransitionKind describes what a transition did to the stack.
type TransitionKind int

const (
	TransitionPush TransitionKind = iota
	TransitionPop
	TransitionChange
	TransitionReset
)

// String returns the transition kind name.
func (k TransitionKind) String() string {
	switch k {
	case TransitionPush:
		return "push"
	case TransitionPop:
		return "pop"
	case TransitionChange:
		return "change"
	case TransitionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Transition is delivered to listeners after the stack changed.
type Transition struct {
	Kind TransitionKind
	// From is the top identity before the transition; HasFrom is false
	// when the stack was empty.
	From    ID
	HasFrom bool
	// To is the top identity after the transition; HasTo is false when
	// the stack is now empty.
	To    ID
	HasTo bool
	Depth int
}

// Listener observes completed transitions.
type Listener func(Transition)

// Subscription is the token returned by Subscribe. Pass it to Unsubscribe
// to stop receiving transitions.
type Subscription uint64

type entry struct {
	id     ID
	screen Screen
}

type listenerEntry struct {
	sub Subscription
	fn  Listener
}

// Manager owns the stack of active screens and the factory table.
// It is driven from a single frame goroutine and is not safe for
// concurrent use.
type Manager struct {
	factories map[ID]Factory
	stack     []entry
	listeners []listenerEntry
	nextSub   Subscription
	logger    *log.Logger
}

// NewManager creates an empty manager. A nil logger discards output.
func NewManager(logger *log.Logger) *Manager {
	return &Manager{
		factories: make(map[ID]Factory),
		logger:    logging.OrDiscard(logger).WithPrefix("screen"),
	}
}

// Register adds or replaces the factory for id. It does not affect the
// screens already on the stack. Registering a nil factory panics.
func (m *Manager) Register(id ID, f Factory) {
	if f == nil {
		panic(fmt.Sprintf("screen: nil factory for %s", id))
	}
	if _, exists := m.factories[id]; exists {
		m.logger.Debug("replacing factory", "screen", id)
	}
	m.factories[id] = f
}

// Registered reports whether a factory exists for id.
func (m *Manager) Registered(id ID) bool {
	_, ok := m.factories[id]
	return ok
}

// IDs returns the registered identities in ascending order.
func (m *Manager) IDs() []ID {
	ids := make([]ID, 0, len(m.factories))
	for id := range m.factories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// build constructs a screen for id without touching the stack.
func (m *Manager) build(id ID) (Screen, error) {
	f, ok := m.factories[id]
	if !ok {
		err := fmt.Errorf("screen: %s: %w", id, ErrNotRegistered)
		m.logger.Error("transition to unregistered screen", "screen", id)
		return nil, err
	}
	s := f()
	if s == nil {
		return nil, fmt.Errorf("screen: factory for %s returned nil", id)
	}
	return s, nil
}

// Push covers the current top with a new screen built for id.
// The covered screen is paused, not destroyed.
func (m *Manager) Push(id ID) error {
	s, err := m.build(id)
	if err != nil {
		return err
	}

	from, hasFrom := m.Current()
	if top := m.top(); top != nil {
		top.OnPause()
	}
	m.stack = append(m.stack, entry{id: id, screen: s})
	s.OnEnter()

	m.logger.Debug("push", "screen", id, "depth", len(m.stack))
	m.notify(Transition{Kind: TransitionPush, From: from, HasFrom: hasFrom, To: id, HasTo: true, Depth: len(m.stack)})
	return nil
}

// Pop exits and drops the top screen, resuming the one below it.
// It reports false when the stack was already empty.
func (m *Manager) Pop() bool {
	if len(m.stack) == 0 {
		return false
	}

	last := m.stack[len(m.stack)-1]
	last.screen.OnExit()
	m.stack[len(m.stack)-1] = entry{}
	m.stack = m.stack[:len(m.stack)-1]

	if top := m.top(); top != nil {
		top.OnResume()
	}

	to, hasTo := m.Current()
	m.logger.Debug("pop", "screen", last.id, "depth", len(m.stack))
	m.notify(Transition{Kind: TransitionPop, From: last.id, HasFrom: true, To: to, HasTo: hasTo, Depth: len(m.stack)})
	return true
}

// Change replaces the top screen with a new screen built for id, keeping
// the stack depth. On an empty stack it behaves like Push.
//
// The new screen is built before the old one exits, so an unregistered id
// leaves the current screen untouched.
func (m *Manager) Change(id ID) error {
	s, err := m.build(id)
	if err != nil {
		return err
	}

	from, hasFrom := m.Current()
	if len(m.stack) == 0 {
		m.stack = append(m.stack, entry{id: id, screen: s})
	} else {
		m.stack[len(m.stack)-1].screen.OnExit()
		m.stack[len(m.stack)-1] = entry{id: id, screen: s}
	}
	s.OnEnter()

	m.logger.Debug("change", "from", from, "to", id, "depth", len(m.stack))
	m.notify(Transition{Kind: TransitionChange, From: from, HasFrom: hasFrom, To: id, HasTo: true, Depth: len(m.stack)})
	return nil
}

// Reset exits every screen from the top down and leaves a single new
// screen built for id. Used to leave a modal chain, e.g. Pause over Play
// back to Menu.
func (m *Manager) Reset(id ID) error {
	s, err := m.build(id)
	if err != nil {
		return err
	}

	from, hasFrom := m.Current()
	m.exitAll()
	m.stack = append(m.stack, entry{id: id, screen: s})
	s.OnEnter()

	m.logger.Debug("reset", "from", from, "to", id)
	m.notify(Transition{Kind: TransitionReset, From: from, HasFrom: hasFrom, To: id, HasTo: true, Depth: 1})
	return nil
}

// Close exits and drops every screen. The factories stay registered.
func (m *Manager) Close() {
	m.exitAll()
}

func (m *Manager) exitAll() {
	for i := len(m.stack) - 1; i >= 0; i-- {
		m.stack[i].screen.OnExit()
		m.stack[i] = entry{}
	}
	m.stack = m.stack[:0]
}

// Current returns the identity of the top screen.
func (m *Manager) Current() (ID, bool) {
	if len(m.stack) == 0 {
		return 0, false
	}
	return m.stack[len(m.stack)-1].id, true
}

// Top returns the top screen, or nil when the stack is empty.
func (m *Manager) Top() Screen {
	return m.top()
}

func (m *Manager) top() Screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1].screen
}

// Depth returns the number of screens on the stack.
func (m *Manager) Depth() int {
	return len(m.stack)
}

// Stack returns the identities on the stack, bottom first.
func (m *Manager) Stack() []ID {
	ids := make([]ID, len(m.stack))
	for i, e := range m.stack {
		ids[i] = e.id
	}
	return ids
}

// HandleInput forwards the frame's input to the top screen.
func (m *Manager) HandleInput(in core.InputFrame) error {
	top := m.top()
	if top == nil {
		return nil
	}
	return m.absorb("input", top.HandleInput(in))
}

// Update advances the top screen. It is looked up again after input
// handling, so a screen swapped during input is the one updated.
func (m *Manager) Update(dt float64) error {
	top := m.top()
	if top == nil {
		return nil
	}
	if dt < 0 {
		dt = 0
	}
	return m.absorb("update", top.Update(dt))
}

// Render draws the top screen into dst.
func (m *Manager) Render(dst *core.Canvas) {
	if top := m.top(); top != nil {
		top.Render(dst)
	}
}

// absorb keeps the frame loop alive: screen errors are logged and dropped,
// except missing registrations, which are returned to the driver.
func (m *Manager) absorb(stage string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotRegistered) {
		return err
	}
	id, _ := m.Current()
	m.logger.Warn("screen error", "stage", stage, "screen", id, "error", err)
	return nil
}

// Subscribe registers a transition listener and returns its token.
func (m *Manager) Subscribe(fn Listener) Subscription {
	m.nextSub++
	m.listeners = append(m.listeners, listenerEntry{sub: m.nextSub, fn: fn})
	return m.nextSub
}

// Unsubscribe removes the listener registered under sub.
// It reports whether a listener was removed.
func (m *Manager) Unsubscribe(sub Subscription) bool {
	for i, l := range m.listeners {
		if l.sub == sub {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Manager) notify(t Transition) {
	for _, l := range m.listeners {
		l.fn(t)
	}
}
