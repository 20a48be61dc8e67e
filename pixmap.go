package kitty

import (
	"image"
	"image/color"
	_ "image/jpeg" // texture decoding
	"image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp" // texture decoding
)

// Pixmap represents a rectangular pixel buffer. It is both the engine's
// software render target and the storage for loaded textures.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates are
// silently ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-bounds coordinates
// return Transparent.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// BlendPixel composites c over the existing pixel (source-over). Fully opaque
// colors take the fast path of a plain store.
func (p *Pixmap) BlendPixel(x, y int, c Color) {
	if c.A == 0 {
		return
	}
	if c.A == 255 {
		p.SetPixel(x, y, c)
		return
	}
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	sa := uint32(c.A)
	da := uint32(p.data[i+3])
	outA := sa + da*(255-sa)/255
	if outA == 0 {
		return
	}
	blend := func(s, d uint8) uint8 {
		v := (uint32(s)*sa + uint32(d)*da*(255-sa)/255) / outA
		return uint8(v)
	}
	p.data[i+0] = blend(c.R, p.data[i+0])
	p.data[i+1] = blend(c.G, p.data[i+1])
	p.data[i+2] = blend(c.B, p.data[i+2])
	p.data[i+3] = uint8(outA)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// SampleUV returns the nearest texel for a texture coordinate. Coordinates
// are wrapped into [0,1), so values outside the unit square tile the texture
// and negative coordinates are handled.
func (p *Pixmap) SampleUV(u, v float64) Color {
	if p.width == 0 || p.height == 0 {
		return Transparent
	}
	u -= math.Floor(u)
	v -= math.Floor(v)
	x := int(u * float64(p.width))
	y := int(v * float64(p.height))
	if x >= p.width {
		x = p.width - 1
	}
	if y >= p.height {
		y = p.height - 1
	}
	return p.GetPixel(x, y)
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// LoadTexture decodes an image file (PNG, JPEG, or BMP) into a pixmap.
func LoadTexture(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, errCode(CodeFileNotFound, err, "load texture %q", path)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errCode(CodeLockTexture, err, "decode texture %q", path)
	}
	return FromImage(img), nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}
