// Package floofpet implements the draggable pet overlay and its gestures.
package floofpet

import (
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/floof/pkg/tui/events"
	"tableflip.dev/floof/pkg/tui/theme"
)

// Gesture tracks the pointer interaction in progress.
type Gesture int

const (
	// Idle means no press is in flight.
	Idle Gesture = iota
	// Pressing means the button is down and the long-press timer is running.
	Pressing
	// Dragging means the long-press fired and the pet follows the pointer.
	Dragging
)

// Anim tags the pet's current pose.
type Anim int

const (
	AnimIdle Anim = iota
	AnimHop
	AnimSpin
	AnimCling
)

const (
	longPressDelay    = 350 * time.Millisecond
	doubleClickWindow = 400 * time.Millisecond
	bubbleDuration    = 2500 * time.Millisecond
	hopDuration       = 420 * time.Millisecond
	spinDuration      = 520 * time.Millisecond
	clingDuration     = 1200 * time.Millisecond

	// followAlpha is the per-frame fraction of the remaining distance the pet
	// covers while trailing the pointer.
	followAlpha   = 0.16
	frameInterval = 33 * time.Millisecond

	// Cell footprint of the rendered pet block, used for clamping.
	petW = 14
	petH = 4
)

// DefaultName labels the pet when the content config has no pet_name.
const DefaultName = "静静子"

var fallbackLines = []string{"我在这。", "贴贴。", "今天也辛苦了。"}

var clingLines = []string{"我来啦。", "贴贴。", "靠近一点。", "别走。"}

var spinLines = []string{"嘿嘿。", "我转给你看。", "贴贴升级。"}

type point struct {
	x, y float64
}

// Timer messages carry the sequence number current when they were scheduled;
// a bumped counter makes the stale timer a no-op.
type longPressMsg struct{ seq int }

type bubbleExpireMsg struct{ seq int }

type animRevertMsg struct{ seq int }

type frameMsg struct{ seq int }

// Model owns the pet overlay: position, gesture machine, pose, and speech
// bubble. Nothing here is persisted; the pet forgets everything on exit.
type Model struct {
	id    events.ComponentID
	theme theme.Theme
	name  string
	lines []string

	viewportW int
	viewportH int

	gesture Gesture
	anim    Anim

	// pos is the settled overlay position once the user has dragged the pet
	// somewhere. nil means the default corner.
	pos *point
	// target and current drive the follow loop while Dragging.
	target  *point
	current *point

	bubble string

	pressSeq  int
	followSeq int
	bubbleSeq int
	animSeq   int

	lastClick time.Time
	// pressX/Y hold the pointer cell of the press in flight; a long press
	// snaps the pet there.
	pressX int
	pressY int

	haptic func()
	rng    *rand.Rand
	now    func() time.Time
}

// NewModel constructs the pet. Lines come from today's talk rows; an empty
// slice falls back to a built-in set. Name defaults when empty.
func NewModel(th theme.Theme, name string, lines []string) *Model {
	if name == "" {
		name = DefaultName
	}
	if len(lines) == 0 {
		lines = fallbackLines
	}
	return &Model{
		id:     events.ComponentID("floofpet"),
		theme:  th,
		name:   name,
		lines:  lines,
		haptic: func() { _, _ = os.Stderr.WriteString("\a") },
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetViewport records the page size used for clamping and the default corner.
func (m *Model) SetViewport(w, h int) {
	m.viewportW = w
	m.viewportH = h
	if m.pos != nil {
		clamped := m.clamp(m.pos.x+petW/2, m.pos.y+petH/2)
		m.pos = &clamped
	}
}

// Position reports where to splice the pet block. ok is false when the pet
// has never been dragged and the caller should use its default corner.
func (m *Model) Position() (x, y int, ok bool) {
	p := m.pos
	if m.current != nil {
		p = m.current
	}
	if p == nil {
		return 0, 0, false
	}
	return int(p.x), int(p.y), true
}

// Gesture reports the pointer interaction state.
func (m *Model) Gesture() Gesture { return m.gesture }

// Anim reports the current pose.
func (m *Model) Anim() Anim { return m.anim }

// Bubble returns the visible speech text, empty when silent.
func (m *Model) Bubble() string { return m.bubble }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update drives the gesture machine from pointer and timer messages. The
// terminal losing focus ends any press or drag the same way a release does.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		return m, m.press(msg.X, msg.Y)
	case tea.MouseMotionMsg:
		if m.gesture == Dragging {
			t := m.clamp(float64(msg.X), float64(msg.Y))
			m.target = &t
		}
		return m, nil
	case tea.MouseReleaseMsg:
		return m, m.release()
	case tea.BlurMsg:
		// Pointer cancel. Releases outside the window never arrive, so end
		// the gesture the same way a release would: a drag settles where it
		// is, a pending press is dropped.
		if m.gesture == Dragging {
			m.settle()
		}
		m.endPress()
		return m, nil
	case longPressMsg:
		if msg.seq != m.pressSeq || m.gesture != Pressing {
			return m, nil
		}
		return m, m.startDrag()
	case frameMsg:
		return m, m.step(msg.seq)
	case bubbleExpireMsg:
		if msg.seq == m.bubbleSeq {
			m.bubble = ""
		}
		return m, nil
	case animRevertMsg:
		if msg.seq == m.animSeq {
			m.anim = AnimIdle
		}
		return m, nil
	}
	return m, nil
}

// press records a button-down at the pointer cell and arms the long-press
// timer. A second press inside the double-click window spins instead.
func (m *Model) press(x, y int) tea.Cmd {
	now := m.now()
	if now.Sub(m.lastClick) <= doubleClickWindow {
		m.lastClick = time.Time{}
		m.endPress()
		return tea.Batch(
			m.pose(AnimSpin, spinDuration),
			m.say(spinLines[m.rng.Intn(len(spinLines))]),
		)
	}
	m.lastClick = now
	m.pressX = x
	m.pressY = y
	m.gesture = Pressing
	m.pressSeq++
	seq := m.pressSeq
	return tea.Tick(longPressDelay, func(time.Time) tea.Msg {
		return longPressMsg{seq: seq}
	})
}

// release ends the gesture: a drag settles in place, a short press is a tap.
func (m *Model) release() tea.Cmd {
	switch m.gesture {
	case Dragging:
		m.settle()
		m.gesture = Idle
		return nil
	case Pressing:
		m.gesture = Idle
		m.pressSeq++
		return m.tap()
	}
	return nil
}

// tap hops and speaks one of today's lines.
func (m *Model) tap() tea.Cmd {
	return tea.Batch(
		m.pose(AnimHop, hopDuration),
		m.say(m.lines[m.rng.Intn(len(m.lines))]),
	)
}

// startDrag transitions Pressing to Dragging: the pet snaps to the pressed
// pointer cell, takes the cling pose, and the frame loop trails the pointer
// from there.
func (m *Model) startDrag() tea.Cmd {
	m.gesture = Dragging
	start := m.clamp(float64(m.pressX), float64(m.pressY))
	m.current = &start
	m.target = &start
	m.followSeq++
	seq := m.followSeq
	return tea.Batch(
		m.pose(AnimCling, clingDuration),
		m.say(clingLines[m.rng.Intn(len(clingLines))]),
		tea.Tick(frameInterval, func(time.Time) tea.Msg {
			return frameMsg{seq: seq}
		}),
	)
}

// step advances the follow loop one frame. Stale frames and a cleared target
// both end the loop without rescheduling.
func (m *Model) step(seq int) tea.Cmd {
	if seq != m.followSeq || m.target == nil || m.current == nil {
		return nil
	}
	m.current.x += (m.target.x - m.current.x) * followAlpha
	m.current.y += (m.target.y - m.current.y) * followAlpha
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// settle keeps the pet where the drag left it and stops the frame loop.
func (m *Model) settle() {
	if m.target != nil {
		p := *m.target
		m.pos = &p
	}
	m.followSeq++
	m.target = nil
	m.current = nil
}

func (m *Model) endPress() {
	m.pressSeq++
	m.gesture = Idle
}

// say replaces the bubble and attempts the haptic pulse alongside it. A
// newer line always supersedes an older one; the expiry timer carries the
// sequence so the old timer cannot clear it early.
func (m *Model) say(text string) tea.Cmd {
	if m.haptic != nil {
		m.haptic()
	}
	m.bubble = text
	m.bubbleSeq++
	seq := m.bubbleSeq
	return tea.Tick(bubbleDuration, func(time.Time) tea.Msg {
		return bubbleExpireMsg{seq: seq}
	})
}

// pose switches the animation and schedules the revert to idle.
func (m *Model) pose(a Anim, d time.Duration) tea.Cmd {
	m.anim = a
	m.animSeq++
	seq := m.animSeq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return animRevertMsg{seq: seq}
	})
}

// clamp converts a pointer cell to a pet anchor kept inside the viewport.
func (m *Model) clamp(px, py float64) point {
	x := px - petW/2
	y := py - petH/2
	maxX := float64(m.viewportW - petW - 1)
	maxY := float64(m.viewportH - petH - 1)
	if x > maxX {
		x = maxX
	}
	if y > maxY {
		y = maxY
	}
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	return point{x: x, y: y}
}
