package camera

import "testing"

// 40x40 cells of 16 px: a 640 px world seen through a 320 px window.
func newTestCamera() *Camera {
	return New(320, 320, 40, 40, 16)
}

func TestNew(t *testing.T) {
	cam := newTestCamera()

	if cam.X != 320 || cam.Y != 320 {
		t.Errorf("expected camera at (320, 320), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 || cam.MinZoom != 0.5 {
		t.Errorf("zoom = %f (min %f), want 1 (min 0.5)", cam.Zoom, cam.MinZoom)
	}
}

func TestNewRaisesZoomToFillViewport(t *testing.T) {
	cam := New(1280, 720, 40, 40, 16)
	if cam.Zoom != 2 {
		t.Errorf("zoom = %f, want 2 so the 640 px grid fills 1280 px", cam.Zoom)
	}
}

func TestCellToScreenCentered(t *testing.T) {
	cam := newTestCamera()
	sx, sy := cam.CellToScreen(20, 20)
	if sx != 160 || sy != 160 {
		t.Errorf("expected cell (20,20) at screen center (160, 160), got (%f, %f)", sx, sy)
	}
}

func TestScreenToCellRoundtrip(t *testing.T) {
	cam := newTestCamera()
	cam.SetZoom(2)

	cells := []struct{ x, y int }{{20, 20}, {15, 24}, {25, 16}}
	for _, c := range cells {
		sx, sy := cam.CellToScreen(c.x, c.y)
		half := cam.CellSize() / 2
		x, y := cam.ScreenToCell(sx+half, sy+half)
		if x != c.x || y != c.y {
			t.Errorf("cell (%d,%d) round-tripped to (%d,%d)", c.x, c.y, x, y)
		}
	}
}

func TestCellToScreenWraps(t *testing.T) {
	cam := newTestCamera()
	cam.X = 620 // near the right edge of the world

	// Column 0 is 20 px to the right of the camera across the seam.
	sx, _ := cam.CellToScreen(0, 20)
	if sx != 180 {
		t.Errorf("expected wrapped column at 180, got %f", sx)
	}
}

func TestPanWraps(t *testing.T) {
	cam := newTestCamera()
	cam.Pan(400, -400)
	if cam.X != 80 || cam.Y != 560 {
		t.Errorf("expected (80, 560) after wrap, got (%f, %f)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := newTestCamera()

	cam.SetZoom(0.1)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("zoom below min: %f", cam.Zoom)
	}
	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("zoom above max: %f", cam.Zoom)
	}
	cam.ZoomBy(0.5)
	if cam.Zoom != 4 {
		t.Errorf("ZoomBy(0.5) from 8 = %f, want 4", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := newTestCamera()

	if !cam.IsVisible(20, 20) {
		t.Error("center cell should be visible")
	}
	if cam.IsVisible(0, 20) {
		t.Error("cell half a world away should not be visible")
	}
	if cam.IsVisible(8, 20) {
		t.Error("cell left of the window should not be visible")
	}
}

func TestResizeRaisesMinZoom(t *testing.T) {
	cam := newTestCamera()
	cam.SetZoom(0.5)
	cam.Resize(1280, 640)
	if cam.MinZoom != 2 || cam.Zoom != 2 {
		t.Errorf("after resize min %f zoom %f, want 2 and 2", cam.MinZoom, cam.Zoom)
	}
}

func TestReset(t *testing.T) {
	cam := newTestCamera()
	cam.Pan(100, 100)
	cam.SetZoom(3)
	cam.Reset()
	if cam.X != 320 || cam.Y != 320 || cam.Zoom != 1 {
		t.Errorf("reset to (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
}
