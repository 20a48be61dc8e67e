// Command kittydemo demonstrates the kitty software rasterizer: a handful of
// 2D primitives plus a spinning mesh, hosted in a desktop window.
//
// By default it spins a flat-shaded cube; pass -mesh to load a mesh file and
// -texture to texture it.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/kittygfx/kitty"
	"github.com/kittygfx/kitty/backend/ebitenwin"
)

func main() {
	var (
		width    = flag.Int("width", 800, "window width")
		height   = flag.Int("height", 600, "window height")
		meshPath = flag.String("mesh", "", "mesh file to load instead of the builtin cube")
		texPath  = flag.String("texture", "", "texture image for the mesh")
		wire     = flag.Bool("wireframe", false, "draw the mesh as wireframe only")
		verbose  = flag.Bool("v", false, "enable info logging")
	)
	flag.Parse()

	if *verbose {
		kitty.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	mesh, err := buildMesh(*meshPath, *texPath, *wire)
	if err != nil {
		log.Fatalf("load mesh: %v", err)
	}
	mesh.Position = kitty.Pt3(*width/2, *height/2, 0)
	mesh.Scale = 4

	err = ebitenwin.Run("kitty demo", *width, *height, func(eng *kitty.Engine) error {
		if eng.ObjectCount() == 0 {
			if err := populate(eng, mesh); err != nil {
				return err
			}
			eng.Pacer().SetTimer("fps")
		}

		mesh.Transform(kitty.V3(0, 0, 0), 0.007, 0.011, 0.003)

		if err := eng.ClearScreen(kitty.Hex("#101018")); err != nil {
			return err
		}
		if err := eng.Render(); err != nil {
			return err
		}
		if eng.Pacer().TimerTripped("fps", time.Second) {
			eng.Pacer().SetTimer("fps")
			kitty.Logger().Info("frame stats",
				slog.Uint64("frame", eng.Pacer().FrameNumber()),
				slog.Duration("render", eng.Pacer().FrameTime()))
		}
		return eng.Present()
	})
	if err != nil {
		log.Fatal(err)
	}
}

// populate fills the scene: 2D primitives in the corners, the mesh in the
// middle, a caption at the top.
func populate(eng *kitty.Engine, mesh *kitty.Mesh) error {
	objects := []kitty.Object{
		kitty.NewRectangle(kitty.Pt(20, 40), 120, 80, true, kitty.Hex("#2a4d69")),
		kitty.NewRectangle(kitty.Pt(24, 44), 112, 72, false, kitty.Cyan),
		kitty.NewCircle(kitty.Pt(720, 90), 44, true, kitty.Hex("#e8a33d")),
		kitty.NewCircle(kitty.Pt(720, 90), 52, false, kitty.White),
		kitty.NewLine(kitty.Pt(20, 560), kitty.Pt(780, 520), kitty.Green),
		kitty.NewTriangle(kitty.Pt(90, 520), kitty.Pt(160, 420), kitty.Pt(230, 520), true, kitty.Hex("#b13d5e")),
		kitty.NewPixel(kitty.Pt(400, 20), kitty.White),
		kitty.NewText(kitty.Pt(300, 12), 18, 0, kitty.White, "kitty software rasterizer"),
		mesh,
	}
	for _, obj := range objects {
		if _, err := eng.AddObject(obj); err != nil {
			return err
		}
	}
	return nil
}

// buildMesh loads the mesh named on the command line, or builds the default
// cube.
func buildMesh(meshPath, texPath string, wire bool) (*kitty.Mesh, error) {
	mesh := kitty.NewMesh()
	mesh.Wireframe = wire

	if meshPath != "" {
		if err := kitty.LoadOBJFile(meshPath, mesh); err != nil {
			return nil, err
		}
	} else if err := buildCube(mesh); err != nil {
		return nil, err
	}

	if texPath != "" {
		tex, err := kitty.LoadTexture(texPath)
		if err != nil {
			return nil, err
		}
		mesh.Texture = tex
		mesh.Wrap = true
	}
	return mesh, nil
}

// buildCube appends a cube centered at the origin with a random flat color
// per face. Each quad carries unit-square UVs so a texture maps once per
// side.
func buildCube(m *kitty.Mesh) error {
	for _, v := range [][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	} {
		m.AddVertex(kitty.V3(v[0]*20, v[1]*20, v[2]*20))
	}
	for _, uv := range []kitty.UV{{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1}} {
		m.AddUV(uv)
	}
	for i, f := range [][3]int{
		{0, 1, 2}, {0, 2, 3}, // back
		{4, 6, 5}, {4, 7, 6}, // front
		{0, 4, 5}, {0, 5, 1}, // bottom
		{3, 2, 6}, {3, 6, 7}, // top
		{0, 3, 7}, {0, 7, 4}, // left
		{1, 5, 6}, {1, 6, 2}, // right
	} {
		face := kitty.Face{A: f[0], B: f[1], C: f[2], UVA: 0, UVB: 1, UVC: 2}
		if i%2 == 1 {
			face.UVB, face.UVC = 2, 3
		}
		if err := m.AddFace(face, kitty.RandomColor()); err != nil {
			return err
		}
	}
	return nil
}
