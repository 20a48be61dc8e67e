package kitty

import "log/slog"

// Default window dimensions when no surface is supplied.
const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Engine ties the object arena to a presentation surface and drives the
// render loop. Create one with New, populate it through AddObject, and call
// ClearScreen, Render, and Present once per frame.
//
// Engine is an explicit context: multiple independent engines can coexist.
// It is not safe for concurrent use; all methods must be called from one
// goroutine.
type Engine struct {
	surface Surface
	arena   *Arena
	pacer   *Pacer
	dist    float64
	closed  bool
}

// New creates an engine. Without options it renders into an in-memory
// 800x600 PixmapSurface.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.distance <= 0 {
		return nil, errCode(CodeInitFailure, nil, "perspective distance must be positive, got %v", o.distance)
	}
	if o.surface == nil {
		o.surface = NewPixmapSurface(defaultWidth, defaultHeight)
	}

	e := &Engine{
		surface: o.surface,
		arena:   NewArena(o.blockSlots),
		pacer:   NewPacer(),
		dist:    o.distance,
	}
	w, h := o.surface.Size()
	Logger().Info("kitty: engine created",
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Int("arena_block_slots", e.arena.block))
	return e, nil
}

// Close tears the engine down: every stored object is dropped, the arena is
// destroyed, and the surface is closed. Close always cleans up fully and is
// idempotent.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.arena.Destroy()
	err := e.surface.Close()
	Logger().Info("kitty: engine closed")
	return err
}

// Pacer returns the engine's frame pacer.
func (e *Engine) Pacer() *Pacer {
	return e.pacer
}

// Surface returns the engine's presentation surface.
func (e *Engine) Surface() Surface {
	return e.surface
}

// AddObject appends an object to the scene and returns its index. Objects
// render in insertion order.
func (e *Engine) AddObject(obj Object) (int, error) {
	if e.closed {
		return 0, ErrNotInitialized
	}
	return e.arena.Insert(obj)
}

// RemoveObject deletes the object at index; later objects shift down one
// index, preserving render order.
func (e *Engine) RemoveObject(index int) error {
	if e.closed {
		return ErrNotInitialized
	}
	return e.arena.Remove(index)
}

// GetObject returns the object stored at index.
func (e *Engine) GetObject(index int) (Object, error) {
	if e.closed {
		return nil, ErrNotInitialized
	}
	return e.arena.Get(index)
}

// ClearObjects drops every object and leaves the scene empty but usable.
func (e *Engine) ClearObjects() error {
	if e.closed {
		return ErrNotInitialized
	}
	return e.arena.Clear()
}

// ObjectCount returns the number of objects in the scene.
func (e *Engine) ObjectCount() int {
	return e.arena.Len()
}

// ClearScreen fills the surface with a color.
func (e *Engine) ClearScreen(c Color) error {
	if e.closed {
		return ErrSurfaceNotInitialized
	}
	e.surface.Clear(c)
	return nil
}

// Present makes the rendered frame visible.
func (e *Engine) Present() error {
	if e.closed {
		return ErrSurfaceNotInitialized
	}
	return e.surface.Present()
}

// Render rasterizes every object in insertion order onto the surface. The
// pass is all-or-nothing: an object the rasterizer cannot handle aborts the
// remaining draws for this frame and the error is returned to the caller.
// On success the frame counter advances and the pass duration is recorded
// for FPS capping.
func (e *Engine) Render() error {
	if e.closed {
		return ErrSurfaceNotInitialized
	}
	start := e.pacer.beginFrame()
	for i := 0; i < e.arena.Len(); i++ {
		obj, err := e.arena.Get(i)
		if err != nil {
			return err
		}
		switch o := obj.(type) {
		case *Circle:
			drawCircle(e.surface, o)
		case *Rectangle:
			drawRectangle(e.surface, o)
		case *Line:
			drawLine(e.surface, o)
		case *Triangle:
			drawTriangle(e.surface, o)
		case *Pixel:
			drawPixel(e.surface, o)
		case *Mesh:
			if err := drawMesh(e.surface, o, e.dist); err != nil {
				return err
			}
		case *Text:
			if err := drawText(e.surface, o); err != nil {
				return err
			}
		default:
			return errCode(CodeUnknown, ErrUnknownObjectType, "object %d has kind %v", i, obj.Kind())
		}
	}
	e.pacer.endFrame(start)
	Logger().Debug("kitty: frame rendered",
		slog.Uint64("frame", e.pacer.FrameNumber()),
		slog.Int("objects", e.arena.Len()),
		slog.Duration("took", e.pacer.FrameTime()))
	return nil
}

// Delay sleeps out the remainder of the frame interval for the given FPS
// cap, discounting the last render's cost. Convenience for
// Pacer().Delay(fps).
func (e *Engine) Delay(fps int) {
	e.pacer.Delay(fps)
}
