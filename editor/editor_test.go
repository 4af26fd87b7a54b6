package editor

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/board"
	"github.com/gogpu/panzoom/minimap"
)

const epsilon = 1e-9

type fixture struct {
	ctrl *panzoom.Controller
	proj *minimap.Projector
	ed   *Editor
}

// newFixture builds an editor over a 1280x720 viewport whose overview
// panel occupies (1060, 500)-(1260, 700) in screen space.
func newFixture(t *testing.T, initial panzoom.Transform) fixture {
	t.Helper()
	ctrl, err := panzoom.NewController(panzoom.DefaultConfig(), panzoom.WithInitialTransform(initial))
	if err != nil {
		t.Fatalf("NewController() = %v", err)
	}
	proj, err := minimap.NewProjector(ctrl,
		minimap.WithIDGenerator(panzoom.SequentialIDs("r")),
		minimap.WithClock(func() time.Time { return time.Time{} }))
	if err != nil {
		t.Fatalf("NewProjector() = %v", err)
	}
	t.Cleanup(func() { _ = proj.Close() })
	ed, err := New(ctrl, WithOverview(proj))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return fixture{ctrl: ctrl, proj: proj, ed: ed}
}

func (f fixture) drag(from, to panzoom.Point, steps int) {
	f.ed.PointerDown(from)
	for i := 1; i <= steps; i++ {
		s := float64(i) / float64(steps)
		f.ed.PointerMove(panzoom.Pt(from.X+(to.X-from.X)*s, from.Y+(to.Y-from.Y)*s))
	}
	f.ed.PointerUp(to)
}

func (f fixture) assertInvariant(t *testing.T) {
	t.Helper()
	if f.proj.Len() != f.ed.Board().Len() {
		t.Errorf("proxies = %d, rectangles = %d", f.proj.Len(), f.ed.Board().Len())
	}
}

func approxRect(a, b panzoom.Rect) bool {
	return math.Abs(a.Left-b.Left) <= epsilon && math.Abs(a.Top-b.Top) <= epsilon &&
		math.Abs(a.Width-b.Width) <= epsilon && math.Abs(a.Height-b.Height) <= epsilon
}

func TestNewRequiresController(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, panzoom.ErrNilController) {
		t.Errorf("New(nil) = %v, want ErrNilController", err)
	}
}

func TestDrawRectangle(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)

	f.drag(panzoom.Pt(50, 50), panzoom.Pt(150, 120), 4)

	all := f.ed.Board().All()
	if len(all) != 1 {
		t.Fatalf("rectangles = %d, want 1", len(all))
	}
	r := all[0]
	if r.Bounds() != panzoom.NewRect(50, 50, 100, 70) {
		t.Errorf("rectangle = %+v, want {50 50 100 70}", r.Bounds())
	}
	px, ok := f.proj.Proxy(r.ID)
	if !ok {
		t.Fatalf("no proxy for %q", r.ID)
	}
	if !approxRect(px.Rect(), panzoom.NewRect(0.5, 0.5, 1.0, 0.7)) {
		t.Errorf("proxy = %+v, want {0.5 0.5 1.0 0.7}", px)
	}
	if !f.ed.Board().Draggable(r.ID) {
		t.Error("rectangle committed in create mode is not draggable")
	}
	if f.ed.State() != StateIdle {
		t.Errorf("State() = %v, want idle", f.ed.State())
	}
	f.assertInvariant(t)
}

func TestDrawUsesWorldCoordinates(t *testing.T) {
	f := newFixture(t, panzoom.Transform{TranslateX: 10, TranslateY: 20, Scale: 2})
	f.ed.SetMode(ModeCreate)

	f.drag(panzoom.Pt(110, 120), panzoom.Pt(310, 220), 2)

	r := f.ed.Board().All()[0]
	if r.Bounds() != panzoom.NewRect(50, 50, 100, 50) {
		t.Errorf("rectangle = %+v, want {50 50 100 50}", r.Bounds())
	}
}

func TestDrawFlipsNegativeDrag(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)

	f.ed.PointerDown(panzoom.Pt(150, 120))
	f.ed.PointerMove(panzoom.Pt(100, 200))
	draft, ok := f.ed.Draft()
	if !ok {
		t.Fatal("Draft() not active while drawing")
	}
	if draft != panzoom.NewRect(100, 120, 50, 80) {
		t.Errorf("draft = %+v, want {100 120 50 80}", draft)
	}
	f.ed.PointerMove(panzoom.Pt(50, 50))
	f.ed.PointerUp(panzoom.Pt(50, 50))

	r := f.ed.Board().All()[0]
	if r.Bounds() != panzoom.NewRect(50, 50, 100, 70) {
		t.Errorf("rectangle = %+v, want {50 50 100 70}", r.Bounds())
	}
	if _, ok := f.ed.Draft(); ok {
		t.Error("Draft() still active after release")
	}
}

func TestDrawDiscardsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		from, to panzoom.Point
	}{
		{"same point", panzoom.Pt(300, 300), panzoom.Pt(300, 300)},
		{"zero width", panzoom.Pt(300, 300), panzoom.Pt(300, 400)},
		{"zero height", panzoom.Pt(300, 300), panzoom.Pt(500, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, panzoom.IdentityTransform())
			f.ed.SetMode(ModeCreate)
			f.ed.PointerDown(tt.from)
			f.ed.PointerMove(panzoom.Pt(700, 50)) // wander, then come back
			f.ed.PointerUp(tt.to)

			if n := f.ed.Board().Len(); n != 0 {
				t.Errorf("rectangles = %d, want 0", n)
			}
			if n := f.proj.Len(); n != 0 {
				t.Errorf("proxies = %d, want 0", n)
			}
		})
	}
}

func TestCreateModeNeverPans(t *testing.T) {
	f := newFixture(t, panzoom.Transform{TranslateX: -300, TranslateY: -200, Scale: 1.3})
	f.ed.SetMode(ModeCreate)
	before := f.ctrl.Transform()

	f.drag(panzoom.Pt(100, 100), panzoom.Pt(600, 400), 10)
	f.drag(panzoom.Pt(900, 50), panzoom.Pt(20, 20), 10)

	if got := f.ctrl.Transform(); got != before {
		t.Errorf("Transform() = %v, want %v", got, before)
	}
	// The controller itself refuses drag-panning too.
	if f.ctrl.BeginDrag(panzoom.Pt(1, 1)) {
		t.Error("controller accepted a pan drag in create mode")
	}
}

func TestPanModeDrags(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())

	var seen int
	f.ctrl.Subscribe(func(panzoom.Transform) { seen++ })

	f.ed.PointerDown(panzoom.Pt(100, 100))
	if f.ed.State() != StatePanning {
		t.Fatalf("State() = %v, want panning", f.ed.State())
	}
	f.ed.PointerMove(panzoom.Pt(120, 90))
	f.ed.PointerMove(panzoom.Pt(160, 70))
	f.ed.PointerUp(panzoom.Pt(160, 70))

	if got := f.ctrl.Transform().Translation(); got != panzoom.Pt(60, -30) {
		t.Errorf("translate = %v, want (60, -30)", got)
	}
	if seen != 2 {
		t.Errorf("notifications = %d, want one per move", seen)
	}
	if f.ctrl.Dragging() {
		t.Error("controller still dragging after PointerUp")
	}
	if f.ed.Board().Len() != 0 {
		t.Error("pan mode drew a rectangle")
	}
}

func TestMoveRectangle(t *testing.T) {
	f := newFixture(t, panzoom.Transform{Scale: 2})
	f.ed.SetMode(ModeCreate)
	f.drag(panzoom.Pt(200, 200), panzoom.Pt(400, 300), 1) // world (100,100) 100x50

	r := f.ed.Board().All()[0]
	f.ed.PointerDown(panzoom.Pt(250, 250))
	if f.ed.State() != StateDraggingRectangle {
		t.Fatalf("State() = %v, want dragging-rectangle", f.ed.State())
	}
	f.ed.PointerMove(panzoom.Pt(260, 255))
	f.ed.PointerMove(panzoom.Pt(270, 260))
	f.ed.PointerUp(panzoom.Pt(270, 260))

	// 20x10 screen pixels at scale 2 is 10x5 world units.
	if r.Bounds() != panzoom.NewRect(110, 105, 100, 50) {
		t.Errorf("rectangle = %+v, want {110 105 100 50}", r.Bounds())
	}
	px, _ := f.proj.Proxy(r.ID)
	if !approxRect(px.Rect(), panzoom.NewRect(1.1, 1.05, 1, 0.5)) {
		t.Errorf("proxy = %+v, want it to follow the rectangle", px)
	}
	if f.ed.Board().Len() != 1 {
		t.Errorf("pressing on a rectangle created another: Len() = %d", f.ed.Board().Len())
	}
}

func TestMoveRectangleStaysOnCanvas(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)
	f.drag(panzoom.Pt(10, 10), panzoom.Pt(60, 60), 1)

	r := f.ed.Board().All()[0]
	f.drag(panzoom.Pt(30, 30), panzoom.Pt(-500, -500), 3)
	if r.Left != 0 || r.Top != 0 {
		t.Errorf("rectangle at (%v, %v), want clamped to (0, 0)", r.Left, r.Top)
	}
}

func TestPanModeOverRectanglePans(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)
	f.drag(panzoom.Pt(10, 10), panzoom.Pt(60, 60), 1)
	f.ed.SetMode(ModePan)

	r := f.ed.Board().All()[0]
	f.drag(panzoom.Pt(30, 30), panzoom.Pt(80, 30), 2)

	if r.Left != 10 {
		t.Errorf("rectangle moved in pan mode: Left = %v", r.Left)
	}
	if got := f.ctrl.Transform().TranslateX; got != 50 {
		t.Errorf("TranslateX = %v, want 50", got)
	}
}

func TestToggleMode(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)
	f.drag(panzoom.Pt(10, 10), panzoom.Pt(60, 60), 1)
	id := f.ed.Board().All()[0].ID

	f.ed.ToggleMode()
	if f.ed.Mode() != ModePan || f.ctrl.PanDisabled() || f.ed.Board().Draggable(id) {
		t.Errorf("after toggle to pan: mode %v, pan disabled %v, draggable %v",
			f.ed.Mode(), f.ctrl.PanDisabled(), f.ed.Board().Draggable(id))
	}
	f.ed.ToggleMode()
	if f.ed.Mode() != ModeCreate || !f.ctrl.PanDisabled() || !f.ed.Board().Draggable(id) {
		t.Errorf("after toggle to create: mode %v, pan disabled %v, draggable %v",
			f.ed.Mode(), f.ctrl.PanDisabled(), f.ed.Board().Draggable(id))
	}
}

func TestModeSwitchDuringDraw(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)
	f.ed.PointerDown(panzoom.Pt(10, 10))
	f.ed.SetMode(ModePan)
	f.ed.PointerUp(panzoom.Pt(90, 90))

	all := f.ed.Board().All()
	if len(all) != 1 {
		t.Fatalf("rectangles = %d, want 1", len(all))
	}
	if f.ed.Board().Draggable(all[0].ID) {
		t.Error("rectangle committed after switching to pan mode is draggable")
	}
	f.assertInvariant(t)
}

func TestSingleGestureAtATime(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)
	f.ed.PointerDown(panzoom.Pt(10, 10))
	f.ed.PointerDown(panzoom.Pt(500, 500)) // ignored
	f.ed.PointerUp(panzoom.Pt(40, 40))

	r := f.ed.Board().All()[0]
	if r.Bounds() != panzoom.NewRect(10, 10, 30, 30) {
		t.Errorf("rectangle = %+v, want anchored at the first press", r.Bounds())
	}
}

func TestProxyCountInvariant(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)
	gestures := [][2]panzoom.Point{
		{panzoom.Pt(10, 10), panzoom.Pt(50, 50)},
		{panzoom.Pt(100, 100), panzoom.Pt(100, 100)},
		{panzoom.Pt(200, 10), panzoom.Pt(150, 80)},
		{panzoom.Pt(20, 20), panzoom.Pt(400, 400)}, // moves the first rectangle
		{panzoom.Pt(600, 300), panzoom.Pt(600, 350)},
		{panzoom.Pt(700, 300), panzoom.Pt(800, 350)},
	}
	for _, g := range gestures {
		f.drag(g[0], g[1], 3)
		f.assertInvariant(t)
	}
	if f.ed.Board().Len() != 3 {
		t.Errorf("rectangles = %d, want 3", f.ed.Board().Len())
	}
}

func TestOverviewClickRecenters(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())

	f.ed.PointerDown(panzoom.Pt(1160, 600))
	if f.ed.State() != StateDraggingOverview {
		t.Fatalf("State() = %v, want dragging-overview", f.ed.State())
	}
	f.ed.PointerMove(panzoom.Pt(1161, 601)) // within the dead zone
	f.ed.PointerUp(panzoom.Pt(1161, 601))

	want := panzoom.Pt(640-5050, 360-5050)
	if got := f.ctrl.Transform().Translation(); !got.ApproxEqual(want, 1e-6) {
		t.Errorf("translate = %v, want %v", got, want)
	}
	if f.proj.Panel().Left != 1060 {
		t.Error("a click moved the panel")
	}
}

func TestOverviewDragMovesPanel(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	before := f.ctrl.Transform()

	f.drag(panzoom.Pt(1160, 600), panzoom.Pt(900, 400), 4)

	if got := f.proj.Panel(); got != panzoom.NewRect(800, 300, 200, 200) {
		t.Errorf("Panel() = %+v, want moved by (-260, -200)", got)
	}
	if f.ctrl.Transform() != before {
		t.Error("dragging the panel moved the viewport")
	}
}

func TestOverviewClickOnProxyIgnored(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)
	f.drag(panzoom.Pt(5000, 5000), panzoom.Pt(6000, 6000), 1) // proxy at 50..60%
	f.ed.SetMode(ModePan)
	before := f.ctrl.Transform()

	f.ed.PointerDown(panzoom.Pt(1170, 610))
	f.ed.PointerUp(panzoom.Pt(1170, 610))

	if f.ctrl.Transform() != before {
		t.Error("click on a proxy moved the viewport")
	}
}

func TestWheelAndDoubleClick(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())

	f.ed.Wheel(panzoom.Pt(100, 100), -1)
	got := f.ctrl.Transform()
	if math.Abs(got.Scale-1.1) > epsilon || math.Abs(got.TranslateX+10) > epsilon {
		t.Errorf("after wheel: %v, want scale 1.1 translate (-10, -10)", got)
	}

	f.ed.DoubleClick(panzoom.Pt(1160, 600)) // over the panel
	if f.ctrl.Transform() != got {
		t.Error("double-click over the overview zoomed the canvas")
	}
	f.ed.DoubleClick(panzoom.Pt(100, 100))
	if s := f.ctrl.Transform().Scale; math.Abs(s-2.2) > epsilon {
		t.Errorf("after double-click Scale = %v, want 2.2", s)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())
	f.ed.SetMode(ModeCreate)
	f.ed.PointerDown(panzoom.Pt(10, 10))
	f.ed.PointerMove(panzoom.Pt(90, 90))
	f.ed.Cancel()
	f.ed.PointerUp(panzoom.Pt(90, 90))

	if f.ed.Board().Len() != 0 {
		t.Error("cancelled draft was committed")
	}
	if f.ed.State() != StateIdle {
		t.Errorf("State() = %v, want idle", f.ed.State())
	}
}

func TestWithoutOverviewWarns(t *testing.T) {
	orig := panzoom.Logger()
	t.Cleanup(func() { panzoom.SetLogger(orig) })
	var buf bytes.Buffer
	panzoom.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	ctrl, err := panzoom.NewController(panzoom.DefaultConfig(), panzoom.WithInitialTransform(panzoom.IdentityTransform()))
	if err != nil {
		t.Fatalf("NewController() = %v", err)
	}
	ed, err := New(ctrl, WithBoard(board.New(board.WithIDGenerator(panzoom.SequentialIDs("b")))))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	ed.SetMode(ModeCreate)
	ed.PointerDown(panzoom.Pt(10, 10))
	ed.PointerUp(panzoom.Pt(30, 30))
	ed.SyncOverview()

	if ed.Board().Len() != 1 || ed.Board().All()[0].ID != "b1" {
		t.Errorf("board = %d rectangles, want one with id b1", ed.Board().Len())
	}
	if n := strings.Count(buf.String(), "overview projector not initialized"); n != 2 {
		t.Errorf("warnings = %d, want 2; log: %s", n, buf.String())
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected WARN level records, got: %s", buf.String())
	}
}

func TestModeAndStateStrings(t *testing.T) {
	if ModeCreate.String() != "create" || ModePan.String() != "pan" {
		t.Error("unexpected Mode strings")
	}
	if StateDraggingOverview.String() != "dragging-overview" || State(42).String() != "State(42)" {
		t.Error("unexpected State strings")
	}
}

func TestSwitchToCreateEndsPanDrag(t *testing.T) {
	f := newFixture(t, panzoom.IdentityTransform())

	f.ed.PointerDown(panzoom.Pt(100, 100))
	if f.ed.State() != StatePanning {
		t.Fatalf("State() = %v, want panning", f.ed.State())
	}
	f.ed.SetMode(ModeCreate)

	if f.ed.State() != StateIdle {
		t.Errorf("State() = %v, want idle after mode switch", f.ed.State())
	}
	if f.ctrl.Dragging() {
		t.Error("controller still dragging after switching to create mode")
	}

	before := f.ctrl.Transform()
	f.ed.PointerMove(panzoom.Pt(300, 250))
	f.ed.PointerUp(panzoom.Pt(300, 250))

	if got := f.ctrl.Transform(); got != before {
		t.Errorf("transform = %v, want %v (no pan in create mode)", got, before)
	}
	if f.ed.Board().Len() != 0 {
		t.Errorf("rectangles = %d, want 0", f.ed.Board().Len())
	}
}

func TestCommitDuplicateIDLeavesOverviewAlone(t *testing.T) {
	ctrl, err := panzoom.NewController(panzoom.DefaultConfig(), panzoom.WithInitialTransform(panzoom.IdentityTransform()))
	if err != nil {
		t.Fatalf("NewController() = %v", err)
	}
	proj, err := minimap.NewProjector(ctrl, minimap.WithClock(func() time.Time { return time.Time{} }))
	if err != nil {
		t.Fatalf("NewProjector() = %v", err)
	}
	t.Cleanup(func() { _ = proj.Close() })
	same := func() panzoom.ID { return "dup" }
	ed, err := New(ctrl,
		WithOverview(proj),
		WithBoard(board.New(board.WithIDGenerator(same))))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	f := fixture{ctrl: ctrl, proj: proj, ed: ed}
	ed.SetMode(ModeCreate)

	f.drag(panzoom.Pt(50, 50), panzoom.Pt(150, 120), 2)
	f.drag(panzoom.Pt(400, 400), panzoom.Pt(600, 600), 2)

	if ed.Board().Len() != 1 {
		t.Fatalf("rectangles = %d, want 1", ed.Board().Len())
	}
	f.assertInvariant(t)
	px, ok := proj.Proxy("dup")
	if !ok {
		t.Fatal("no proxy for the committed rectangle")
	}
	want := panzoom.NewRect(0.5, 0.5, 1.0, 0.7)
	if !approxRect(px.Rect(), want) {
		t.Errorf("proxy = %+v, want %+v (first rectangle)", px.Rect(), want)
	}
}
