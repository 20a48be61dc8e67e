// Package kitty is a small software-rasterized 2D/3D scene engine for Go.
//
// # Overview
//
// kitty keeps a flat, ordered list of drawable objects (circles, rectangles,
// lines, triangles, pixels, text, and 3D meshes) in a growable arena and
// rasterizes them in insertion order onto a pluggable presentation surface.
// Meshes are projected with a simple perspective divide and painted
// back-to-front per face; textured faces use perspective-correct
// interpolation. There is no GPU path, no anti-aliasing, and no z-buffer.
//
// # Quick Start
//
//	import "github.com/kittygfx/kitty"
//
//	eng, err := kitty.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer eng.Close()
//
//	eng.AddObject(kitty.NewCircle(kitty.Pt(120, 90), 40, true, kitty.Red))
//
//	eng.ClearScreen(kitty.Black)
//	eng.Render()
//	eng.Present()
//
// By default the engine draws into an in-memory PixmapSurface. For a desktop
// window, use the backend/ebitenwin package, which hosts the engine inside an
// ebiten game loop.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, Arena, Object variants, Mesh, Pixmap, Surface
//   - Rasterization: per-primitive routines dispatched by object kind
//   - Backends: software PixmapSurface (built in), ebitenwin (desktop window)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Mesh space is right-handed with Z increasing away from the viewer; the
// projection maps camera-space (x, y, z) to screen space as x*d/(d+z).
//
// # Errors
//
// Every fallible operation returns an error rather than panicking. Errors
// carry a numeric Code grouping (general, memory, presentation) for callers
// that bridge to non-Go consumers; use errors.Is against the exported
// sentinels for matching.
package kitty

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
