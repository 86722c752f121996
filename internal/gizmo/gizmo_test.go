package gizmo

import (
	"image/color"
	"math"
	"testing"

	"flycam/internal/components"

	"github.com/go-gl/mathgl/mgl64"
)

var grey = color.RGBA{128, 128, 128, 255}

func testCamera() *Camera {
	return &Camera{
		Eye:    mgl64.Vec3{0, 0, 5},
		Target: mgl64.Vec3{0, 0, 0},
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   mgl64.DegToRad(60),
		Near:   0.1,
		Far:    100,
	}
}

func TestGizmos_Pose(t *testing.T) {
	g := New(1)
	tr := components.NewTransform(mgl64.Vec3{1, 2, 3})
	g.Pose(tr, grey)

	lines := g.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 pose lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l.From != tr.Translation {
			t.Fatalf("pose line should start at translation, got %v", l.From)
		}
		if l.Color != grey {
			t.Fatalf("unexpected colour %v", l.Color)
		}
	}
	if got := lines[3].To; !got.ApproxEqualThreshold(mgl64.Vec3{1, 2, 1.5}, 1e-9) {
		t.Fatalf("forward tick ends at %v", got)
	}
}

func TestGizmos_DisabledAndClear(t *testing.T) {
	g := New(1)
	g.Enabled = false
	g.Line(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, grey)
	g.Pose(components.IdentityTransform(), grey)
	if len(g.Lines()) != 0 {
		t.Fatalf("disabled gizmos recorded %d lines", len(g.Lines()))
	}

	g.Enabled = true
	g.Grid(2, 1, grey)
	if len(g.Lines()) != 10 {
		t.Fatalf("expected 10 grid lines, got %d", len(g.Lines()))
	}
	g.Clear()
	if len(g.Lines()) != 0 {
		t.Fatal("Clear left lines behind")
	}
}

func TestCamera_Project(t *testing.T) {
	cam := testCamera()

	x, y, ok := cam.Project(mgl64.Vec3{0, 0, 0}, 800, 600)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Fatalf("origin projected to (%v, %v)", x, y)
	}

	x, y, ok = cam.Project(mgl64.Vec3{1, 1, 0}, 800, 600)
	if !ok || x <= 400 || y >= 300 {
		t.Fatalf("up-right point projected to (%v, %v, %v)", x, y, ok)
	}

	if _, _, ok := cam.Project(mgl64.Vec3{0, 0, 10}, 800, 600); ok {
		t.Fatal("point behind camera should not be visible")
	}
}

func TestCamera_ProjectSegmentClipsNearPlane(t *testing.T) {
	cam := testCamera()

	if _, _, _, _, ok := cam.ProjectSegment(mgl64.Vec3{0, 0, 6}, mgl64.Vec3{1, 0, 8}, 800, 600); ok {
		t.Fatal("segment fully behind camera should be dropped")
	}

	x0, y0, _, _, ok := cam.ProjectSegment(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -1, 10}, 800, 600)
	if !ok {
		t.Fatal("segment crossing the near plane should be kept")
	}
	if math.Abs(x0-400) > 1e-6 || math.Abs(y0-300) > 1e-6 {
		t.Fatalf("visible endpoint moved to (%v, %v)", x0, y0)
	}
}

func TestCamera_TopDownFallsBackUp(t *testing.T) {
	cam := testCamera()
	cam.Eye = mgl64.Vec3{0, 8, 0}

	x, y, ok := cam.Project(mgl64.Vec3{0, 0, 0}, 800, 600)
	if !ok || math.IsNaN(x) || math.IsNaN(y) {
		t.Fatalf("origin projected to (%v, %v, %v)", x, y, ok)
	}
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Fatalf("origin projected to (%v, %v)", x, y)
	}

	// Screen up is world -Z, so +X lands right of centre and -Z above it.
	x, _, _ = cam.Project(mgl64.Vec3{1, 0, 0}, 800, 600)
	if x <= 400 {
		t.Fatalf("+X projected to x=%v", x)
	}
	_, y, _ = cam.Project(mgl64.Vec3{0, 0, -1}, 800, 600)
	if y >= 300 {
		t.Fatalf("-Z projected to y=%v", y)
	}
}
