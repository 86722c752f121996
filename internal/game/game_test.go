package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"flycam/internal/components"
	"flycam/internal/config"
	"flycam/internal/engine"
	"flycam/internal/input"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(key ebiten.Key) bool { return f[key] }

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Entities = []config.EntityConfig{
		{Name: "player", Position: [3]float64{0, 0, 0}, Controlled: true},
		{Name: "turned", Position: [3]float64{5, 0, 0}, YawDegrees: 90, Controlled: true},
		{Name: "beacon", Position: [3]float64{0, 0, -5}},
	}
	return cfg
}

func findByName(t *testing.T, w donburi.World, name string) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	query.NewQuery(filter.Contains(components.Name)).Each(w, func(e *donburi.Entry) {
		if components.NameOf(e) == name {
			found = e
		}
	})
	if found == nil {
		t.Fatalf("entity %q not found", name)
	}
	return found
}

func position(e *donburi.Entry) mgl64.Vec3 {
	return components.TransformComponent.Get(e).Translation
}

func TestGame_MovesControlledEntities(t *testing.T) {
	keys := fakeKeys{}
	tp := engine.NewMockTimeProvider(time.Unix(0, 0))
	g, err := newGame(testConfig(), nil, keys, tp)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	w := g.App().World

	keys[ebiten.KeyW] = true
	for i := 0; i < 10; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
		tp.Advance(50 * time.Millisecond)
	}

	// First frame uses 1/60 s, the remaining nine 50 ms each.
	dist := 4.0 * (1.0/60 + 9*0.05)
	if got := position(findByName(t, w, "player")); !got.ApproxEqualThreshold(mgl64.Vec3{0, 0, -dist}, 1e-6) {
		t.Fatalf("player at %v, want z=%v", got, -dist)
	}
	if got := position(findByName(t, w, "turned")); !got.ApproxEqualThreshold(mgl64.Vec3{5 - dist, 0, 0}, 1e-6) {
		t.Fatalf("turned entity at %v", got)
	}
	if got := position(findByName(t, w, "beacon")); got != (mgl64.Vec3{0, 0, -5}) {
		t.Fatalf("uncontrolled entity moved to %v", got)
	}
}

func TestGame_DrawsGizmosEachFrame(t *testing.T) {
	cfg := testConfig()
	cfg.Gizmo.GridHalf = 1
	cfg.Gizmo.GridStep = 1
	g, err := newGame(cfg, nil, fakeKeys{}, engine.NewMockTimeProvider(time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
		// 6 grid lines plus 4 pose lines for each of the 3 entities.
		if n := len(g.App().Gizmos.Lines()); n != 18 {
			t.Fatalf("frame %d: %d gizmo lines, want 18", i, n)
		}
	}
}

func TestGame_Toggles(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	keys := fakeKeys{}
	g, err := newGame(testConfig(), zap.New(core), keys, engine.NewMockTimeProvider(time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}

	keys[ebiten.KeyF1] = true
	keys[ebiten.KeyF2] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.App().Gizmos.Enabled || g.showHUD {
		t.Fatal("F1/F2 should disable gizmos and HUD")
	}
	if n := len(g.App().Gizmos.Lines()); n != 0 {
		t.Fatalf("disabled gizmos recorded %d lines", n)
	}

	// Holding the keys must not flip the toggles back.
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.App().Gizmos.Enabled || g.showHUD {
		t.Fatal("held toggle keys re-triggered")
	}
	if n := recorded.FilterMessage("gizmos toggled").Len(); n != 1 {
		t.Fatalf("expected one toggle log, got %d", n)
	}

	keys[ebiten.KeyEscape] = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Escape should terminate, got %v", err)
	}
}

func TestNewGame_RejectsBadBindings(t *testing.T) {
	cfg := testConfig()
	cfg.Keys.Up = []string{"Hover"}
	if _, err := newGame(cfg, nil, fakeKeys{}, engine.NewMockTimeProvider(time.Unix(0, 0))); !errors.Is(err, input.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestGame_Layout(t *testing.T) {
	g, err := newGame(testConfig(), nil, fakeKeys{}, engine.NewMockTimeProvider(time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	w, h := g.Layout(10, 10)
	if w != 1024 || h != 768 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
}

func TestFormatHUD(t *testing.T) {
	lines := formatHUD(
		input.Direction{Forward: true, Left: true},
		mgl64.Vec3{-4, 0, -4},
		[]entityLine{
			{name: "player", pos: mgl64.Vec3{1, 2, 3}, controlled: true},
			{name: "beacon", pos: mgl64.Vec3{0, 0, -5}},
		},
		42,
	)
	if len(lines) != 5 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}
	if lines[0] != "keys  F.L..." {
		t.Errorf("keys line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "-4.00") {
		t.Errorf("velocity line = %q", lines[1])
	}
	if lines[2] != "frame 42" {
		t.Errorf("frame line = %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "* player") || !strings.HasPrefix(lines[4], "  beacon") {
		t.Errorf("entity lines = %q / %q", lines[3], lines[4])
	}
}
