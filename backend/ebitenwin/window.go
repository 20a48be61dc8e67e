// Package ebitenwin hosts a kitty engine inside a desktop window.
//
// The engine keeps rendering in software: every frame the caller-supplied
// function draws into the engine's staging pixmap, and the window blits that
// pixmap to the screen. ebiten only provides the window, the input pump, and
// the vsync'd present.
package ebitenwin

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kittygfx/kitty"
)

// FrameFunc is called once per tick with the running engine. It should
// clear, update the scene, render, and present. Returning an error stops the
// window; return Stop for a clean shutdown.
type FrameFunc func(*kitty.Engine) error

// Stop can be returned from a FrameFunc to close the window without
// reporting an error.
var Stop = errors.New("ebitenwin: stop")

// Run opens a window with the given title and size, creates an engine whose
// surface is the window, and drives frame at the display tick rate. It
// blocks until the window closes or frame returns an error. Extra engine
// options (arena block size, perspective distance) pass through to
// kitty.New.
func Run(title string, width, height int, frame FrameFunc, opts ...kitty.Option) error {
	surf := kitty.NewPixmapSurface(width, height)
	opts = append(opts, kitty.WithSurface(surf))
	eng, err := kitty.New(opts...)
	if err != nil {
		return err
	}

	g := &game{eng: eng, surf: surf, frame: frame}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)

	runErr := ebiten.RunGame(g)
	closeErr := eng.Close()
	if errors.Is(runErr, Stop) {
		runErr = nil
	}
	if runErr != nil {
		return runErr
	}
	return closeErr
}

// game adapts the engine loop to ebiten's Update/Draw/Layout contract.
type game struct {
	eng   *kitty.Engine
	surf  *kitty.PixmapSurface
	frame FrameFunc
	fb    *ebiten.Image
}

func (g *game) Update() error {
	if err := g.frame(g.eng); err != nil {
		if errors.Is(err, Stop) {
			return ebiten.Termination
		}
		kitty.Logger().Error("ebitenwin: frame failed", slog.Any("err", err))
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	pm := g.surf.Pixmap()
	if g.fb == nil {
		g.fb = ebiten.NewImage(pm.Width(), pm.Height())
	}
	g.fb.WritePixels(pm.Data())
	screen.DrawImage(g.fb, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	pm := g.surf.Pixmap()
	return pm.Width(), pm.Height()
}
