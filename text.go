package kitty

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Text objects render through the x/image font stack: the string is drawn
// into a scratch pixmap with the Go Regular face at the object's size, then
// blitted at the object's position. Rotation is carried on the object but
// not applied here.

var (
	fontOnce sync.Once
	fontSrc  *opentype.Font
	fontErr  error
)

func builtinFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		fontSrc, fontErr = opentype.Parse(goregular.TTF)
	})
	return fontSrc, fontErr
}

func drawText(s Surface, t *Text) error {
	if t.Text == "" {
		return nil
	}
	size := t.Size
	if size <= 0 {
		size = 12
	}

	src, err := builtinFont()
	if err != nil {
		return errCode(CodeTextRender, err, "parse builtin font")
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return errCode(CodeTextRender, err, "size font face")
	}
	defer func() {
		_ = face.Close()
	}()

	bounds, advance := font.BoundString(face, t.Text)
	w := advance.Ceil()
	if bw := (bounds.Max.X - bounds.Min.X).Ceil(); bw > w {
		w = bw
	}
	metrics := face.Metrics()
	h := (metrics.Ascent + metrics.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(t.Color.Color()),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(t.Text)

	s.Blit(FromImage(img), t.Position.X, t.Position.Y)
	return nil
}
