package kitty

import (
	"errors"
	"testing"
)

// TestEngineLifecycle verifies creation with defaults, object management
// through the engine, and idempotent self-cleaning teardown.
func TestEngineLifecycle(t *testing.T) {
	eng, err := New(WithArenaBlock(8))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	i, err := eng.AddObject(NewCircle(Pt(10, 10), 4, true, Red))
	if err != nil {
		t.Fatalf("AddObject failed: %v", err)
	}
	if eng.ObjectCount() != 1 {
		t.Errorf("ObjectCount = %d, want 1", eng.ObjectCount())
	}
	if _, err := eng.GetObject(i); err != nil {
		t.Errorf("GetObject failed: %v", err)
	}
	if err := eng.RemoveObject(i); err != nil {
		t.Errorf("RemoveObject failed: %v", err)
	}

	if err := eng.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	if _, err := eng.AddObject(NewPixel(Pt(0, 0), White)); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("AddObject after Close: got %v, want ErrNotInitialized", err)
	}
	if err := eng.Render(); !errors.Is(err, ErrSurfaceNotInitialized) {
		t.Errorf("Render after Close: got %v, want ErrSurfaceNotInitialized", err)
	}
}

// TestEngineCloseWithObjects verifies teardown succeeds while objects are
// still stored (the self-freeing contract).
func TestEngineCloseWithObjects(t *testing.T) {
	eng, err := New(WithArenaBlock(8))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := eng.AddObject(NewPixel(Pt(i, i), White)); err != nil {
			t.Fatalf("AddObject failed: %v", err)
		}
	}
	if err := eng.Close(); err != nil {
		t.Errorf("Close with stored objects failed: %v", err)
	}
}

// TestEngineRenderAllVariants renders one object of every kind onto the
// software surface and checks the frame completes with visible output.
func TestEngineRenderAllVariants(t *testing.T) {
	surf := NewPixmapSurface(200, 200)
	eng, err := New(WithSurface(surf), WithArenaBlock(16))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer eng.Close()

	mesh := NewMesh()
	mesh.Position = Pt3(150, 150, 0)
	mesh.Scale = 10
	mesh.AddVertex(V3(0, 0, 0))
	mesh.AddVertex(V3(2, 0, 0))
	mesh.AddVertex(V3(0, 2, 0))
	if err := mesh.AddFace(Face{A: 0, B: 1, C: 2}, Yellow); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}

	objects := []Object{
		NewRectangle(Pt(10, 10), 30, 20, true, Blue),
		NewRectangle(Pt(50, 10), 30, 20, false, Cyan),
		NewCircle(Pt(120, 30), 12, true, Red),
		NewCircle(Pt(160, 30), 12, false, Green),
		NewLine(Pt(0, 100), Pt(199, 100), White),
		NewTriangle(Pt(20, 120), Pt(60, 120), Pt(40, 160), true, Magenta),
		NewPixel(Pt(5, 5), White),
		NewText(Pt(10, 170), 14, 0, White, "hello"),
		mesh,
	}
	for _, obj := range objects {
		if _, err := eng.AddObject(obj); err != nil {
			t.Fatalf("AddObject(%v) failed: %v", obj.Kind(), err)
		}
	}

	if err := eng.ClearScreen(Black); err != nil {
		t.Fatalf("ClearScreen failed: %v", err)
	}
	if err := eng.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if err := eng.Present(); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	if eng.Pacer().FrameNumber() != 1 {
		t.Errorf("FrameNumber = %d, want 1", eng.Pacer().FrameNumber())
	}

	pm := surf.Pixmap()
	checks := []struct {
		name string
		x, y int
		want Color
	}{
		{"filled rectangle interior", 20, 15, Blue},
		{"filled circle center", 120, 30, Red},
		{"horizontal line", 100, 100, White},
		{"single pixel", 5, 5, White},
	}
	for _, c := range checks {
		if got := pm.GetPixel(c.x, c.y); got != c.want {
			t.Errorf("%s at (%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

// TestEngineClearObjectsReuse verifies the scene can be cleared and
// repopulated without recreating the engine.
func TestEngineClearObjectsReuse(t *testing.T) {
	eng, err := New(WithArenaBlock(4))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer eng.Close()

	for i := 0; i < 30; i++ {
		if _, err := eng.AddObject(NewPixel(Pt(i, 0), White)); err != nil {
			t.Fatalf("AddObject failed: %v", err)
		}
	}
	if err := eng.ClearObjects(); err != nil {
		t.Fatalf("ClearObjects failed: %v", err)
	}
	if eng.ObjectCount() != 0 {
		t.Errorf("ObjectCount after clear = %d, want 0", eng.ObjectCount())
	}
	if _, err := eng.AddObject(NewPixel(Pt(0, 0), White)); err != nil {
		t.Errorf("AddObject after clear failed: %v", err)
	}
}

// TestEngineRejectsBadDistance verifies option validation at creation.
func TestEngineRejectsBadDistance(t *testing.T) {
	_, err := New(WithPerspectiveDistance(0))
	if err == nil {
		t.Fatal("New accepted a zero perspective distance")
	}
	var e *Error
	if !errors.As(err, &e) || e.Code != CodeInitFailure {
		t.Errorf("got %v, want *Error with CodeInitFailure", err)
	}
}
