package screen

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

// recorder collects lifecycle calls across all stub screens of a test.
type recorder struct {
	calls []string
}

func (r *recorder) add(s string) { r.calls = append(r.calls, s) }

type stubScreen struct {
	name      string
	rec       *recorder
	inputErr  error
	updateErr error
	updates   int
	lastDT    float64
}

func (s *stubScreen) HandleInput(core.InputFrame) error {
	s.rec.add(s.name + ".input")
	return s.inputErr
}

func (s *stubScreen) Update(dt float64) error {
	s.updates++
	s.lastDT = dt
	return s.updateErr
}

func (s *stubScreen) Render(dst *core.Canvas) { dst.DrawText(0, 0, s.name) }
func (s *stubScreen) OnEnter()                { s.rec.add(s.name + ".enter") }
func (s *stubScreen) OnExit()                 { s.rec.add(s.name + ".exit") }
func (s *stubScreen) OnPause()                { s.rec.add(s.name + ".pause") }
func (s *stubScreen) OnResume()               { s.rec.add(s.name + ".resume") }

func newTestManager(rec *recorder, ids ...ID) *Manager {
	m := NewManager(nil)
	for _, id := range ids {
		id := id
		m.Register(id, func() Screen { return &stubScreen{name: id.String(), rec: rec} })
	}
	return m
}

func TestManagerEmptyStack(t *testing.T) {
	m := NewManager(nil)

	if _, ok := m.Current(); ok {
		t.Error("Current() should report no screen before the first transition")
	}
	if m.Pop() {
		t.Error("Pop() on empty stack should return false")
	}
	if err := m.HandleInput(core.FrameOf(core.ActionConfirm)); err != nil {
		t.Errorf("HandleInput() on empty stack = %v", err)
	}
	if err := m.Update(0.016); err != nil {
		t.Errorf("Update() on empty stack = %v", err)
	}
	m.Render(core.NewCanvas(10, 2)) // must not panic
}

func TestManagerChangeReplacesTop(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec, Menu, Settings)

	if err := m.Change(Menu); err != nil {
		t.Fatalf("Change(Menu) failed: %v", err)
	}
	if err := m.Change(Settings); err != nil {
		t.Fatalf("Change(Settings) failed: %v", err)
	}

	if got, _ := m.Current(); got != Settings {
		t.Errorf("Current() = %v, expected settings", got)
	}
	if m.Depth() != 1 {
		t.Errorf("Depth() = %d, expected 1", m.Depth())
	}

	want := []string{"menu.enter", "menu.exit", "settings.enter"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("lifecycle = %v, expected %v", rec.calls, want)
	}
}

func TestManagerPushPop(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec, Play, Pause)

	if err := m.Push(Play); err != nil {
		t.Fatalf("Push(Play) failed: %v", err)
	}
	if err := m.Push(Pause); err != nil {
		t.Fatalf("Push(Pause) failed: %v", err)
	}
	if !reflect.DeepEqual(m.Stack(), []ID{Play, Pause}) {
		t.Errorf("Stack() = %v", m.Stack())
	}

	if !m.Pop() {
		t.Fatal("Pop() returned false")
	}
	if got, _ := m.Current(); got != Play {
		t.Errorf("Current() after pop = %v, expected play", got)
	}

	want := []string{"play.enter", "play.pause", "pause.enter", "pause.exit", "play.resume"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("lifecycle = %v, expected %v", rec.calls, want)
	}
}

func TestManagerReset(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec, Menu, Play, Pause)

	_ = m.Change(Play)
	_ = m.Push(Pause)
	rec.calls = nil

	if err := m.Reset(Menu); err != nil {
		t.Fatalf("Reset(Menu) failed: %v", err)
	}
	if !reflect.DeepEqual(m.Stack(), []ID{Menu}) {
		t.Errorf("Stack() = %v, expected [menu]", m.Stack())
	}
	want := []string{"pause.exit", "play.exit", "menu.enter"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("lifecycle = %v, expected %v", rec.calls, want)
	}
}

func TestManagerUnregistered(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec, Menu)
	_ = m.Change(Menu)
	rec.calls = nil

	for name, fn := range map[string]func() error{
		"change": func() error { return m.Change(Winning) },
		"push":   func() error { return m.Push(Winning) },
		"reset":  func() error { return m.Reset(Winning) },
	} {
		err := fn()
		if !errors.Is(err, ErrNotRegistered) {
			t.Errorf("%s: error = %v, expected ErrNotRegistered", name, err)
		}
	}

	if got, _ := m.Current(); got != Menu || m.Depth() != 1 {
		t.Errorf("failed transitions must leave the stack alone, got %v", m.Stack())
	}
	if len(rec.calls) != 0 {
		t.Errorf("no hooks should run on failed transitions, got %v", rec.calls)
	}
}

func TestManagerForwardsToTopOnly(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec, Play, Pause)
	_ = m.Push(Play)
	_ = m.Push(Pause)
	rec.calls = nil

	_ = m.HandleInput(core.FrameOf(core.ActionConfirm))
	if !reflect.DeepEqual(rec.calls, []string{"pause.input"}) {
		t.Errorf("input went to %v, expected pause only", rec.calls)
	}

	top := m.Top().(*stubScreen)
	_ = m.Update(-1)
	if top.updates != 1 || top.lastDT != 0 {
		t.Errorf("Update should clamp dt to zero, got updates=%d dt=%f", top.updates, top.lastDT)
	}

	canvas := core.NewCanvas(10, 1)
	m.Render(canvas)
	if got := canvas.Row(0); got[:5] != "pause" {
		t.Errorf("Render drew %q", got)
	}
}

func TestManagerSwallowsScreenErrors(t *testing.T) {
	m := NewManager(nil)
	failing := &stubScreen{name: "menu", rec: &recorder{}, inputErr: errors.New("boom"), updateErr: errors.New("bang")}
	m.Register(Menu, func() Screen { return failing })
	_ = m.Change(Menu)

	if err := m.HandleInput(core.NewInputFrame()); err != nil {
		t.Errorf("HandleInput() = %v, expected screen error to be absorbed", err)
	}
	if err := m.Update(0); err != nil {
		t.Errorf("Update() = %v, expected screen error to be absorbed", err)
	}

	failing.updateErr = m.Change(Winning)
	if err := m.Update(0); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Update() = %v, expected ErrNotRegistered to propagate", err)
	}
}

func TestManagerTransitionsSwapWithinFrame(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec, Settings)

	var menu *switcher
	m.Register(Menu, func() Screen {
		menu = &switcher{stubScreen: stubScreen{name: "menu", rec: rec}, mgr: m}
		return menu
	})
	_ = m.Change(Menu)

	_ = m.HandleInput(core.NewInputFrame())
	_ = m.Update(0.5)

	if menu.updates != 0 {
		t.Error("Replaced screen must not be updated in the same frame")
	}
	if top := m.Top().(*stubScreen); top.updates != 1 {
		t.Errorf("New top updates = %d, expected 1", top.updates)
	}
}

// switcher changes to Settings when it sees input.
type switcher struct {
	stubScreen
	mgr *Manager
}

func (s *switcher) HandleInput(core.InputFrame) error {
	return s.mgr.Change(Settings)
}

func TestManagerRegisterAndIDs(t *testing.T) {
	m := newTestManager(&recorder{}, Settings, Menu)

	if !m.Registered(Menu) || m.Registered(Play) {
		t.Error("Registered() mismatch")
	}
	if !reflect.DeepEqual(m.IDs(), []ID{Menu, Settings}) {
		t.Errorf("IDs() = %v", m.IDs())
	}

	defer func() {
		if recover() == nil {
			t.Error("Register(nil) should panic")
		}
	}()
	m.Register(Play, nil)
}

func TestManagerSubscribe(t *testing.T) {
	m := newTestManager(&recorder{}, Menu, Settings)

	var seen []Transition
	sub := m.Subscribe(func(tr Transition) { seen = append(seen, tr) })

	_ = m.Change(Menu)
	_ = m.Push(Settings)
	m.Pop()

	if len(seen) != 3 {
		t.Fatalf("got %d transitions, expected 3", len(seen))
	}
	if seen[0].Kind != TransitionChange || seen[0].HasFrom || seen[0].To != Menu {
		t.Errorf("first transition = %+v", seen[0])
	}
	if seen[2].Kind != TransitionPop || seen[2].From != Settings || seen[2].To != Menu {
		t.Errorf("pop transition = %+v", seen[2])
	}

	if !m.Unsubscribe(sub) {
		t.Error("Unsubscribe() returned false for a live token")
	}
	_ = m.Change(Settings)
	if len(seen) != 3 {
		t.Error("Listener called after Unsubscribe")
	}
	if m.Unsubscribe(sub) {
		t.Error("Unsubscribe() twice should return false")
	}
}

func TestManagerClose(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec, Play, Pause)
	_ = m.Push(Play)
	_ = m.Push(Pause)
	rec.calls = nil

	m.Close()

	if m.Depth() != 0 {
		t.Errorf("Depth() after Close = %d", m.Depth())
	}
	if !reflect.DeepEqual(rec.calls, []string{"pause.exit", "play.exit"}) {
		t.Errorf("lifecycle = %v", rec.calls)
	}
	if !m.Registered(Play) {
		t.Error("Close should keep factories")
	}
}
