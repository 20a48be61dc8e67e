package kitty

// ObjectKind identifies which drawable variant an Object is. It exists for
// logging and external dispatch; within the package, rendering switches on
// the concrete type.
type ObjectKind int

// Object kinds, one per drawable variant.
const (
	KindCircle ObjectKind = iota
	KindRectangle
	KindLine
	KindTriangle
	KindPixel
	KindMesh
	KindText
)

// String returns the kind's name.
func (k ObjectKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindLine:
		return "line"
	case KindTriangle:
		return "triangle"
	case KindPixel:
		return "pixel"
	case KindMesh:
		return "mesh"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Object is one drawable scene entity. It is a sealed sum type: the only
// implementations are the variant structs in this package (*Circle,
// *Rectangle, *Line, *Triangle, *Pixel, *Mesh, *Text), so accessing an object
// as the wrong variant is a compile-time impossibility.
//
// Each object exclusively owns its payload. Sharing one object value between
// arenas, or mutating it while a render pass is running, is not supported.
type Object interface {
	// Kind returns the variant tag.
	Kind() ObjectKind

	sealedObject()
}

// Circle is a filled or outlined circle.
type Circle struct {
	Position Point
	Radius   float64
	Filled   bool
	Color    Color
}

// NewCircle creates a circle object.
func NewCircle(position Point, radius float64, filled bool, c Color) *Circle {
	return &Circle{Position: position, Radius: radius, Filled: filled, Color: c}
}

// Kind returns KindCircle.
func (*Circle) Kind() ObjectKind { return KindCircle }

func (*Circle) sealedObject() {}

// Rectangle is a filled or outlined axis-aligned rectangle.
type Rectangle struct {
	Position Point
	Width    int
	Height   int
	Filled   bool
	Color    Color
}

// NewRectangle creates a rectangle object.
func NewRectangle(position Point, width, height int, filled bool, c Color) *Rectangle {
	return &Rectangle{Position: position, Width: width, Height: height, Filled: filled, Color: c}
}

// Kind returns KindRectangle.
func (*Rectangle) Kind() ObjectKind { return KindRectangle }

func (*Rectangle) sealedObject() {}

// Line is a straight segment between two points.
type Line struct {
	Start Point
	End   Point
	Color Color
}

// NewLine creates a line object.
func NewLine(start, end Point, c Color) *Line {
	return &Line{Start: start, End: end, Color: c}
}

// Kind returns KindLine.
func (*Line) Kind() ObjectKind { return KindLine }

func (*Line) sealedObject() {}

// Triangle is a 2D triangle. The three edges are always drawn; Filled adds a
// scanline fill.
type Triangle struct {
	V1, V2, V3 Point
	Filled     bool
	Color      Color
}

// NewTriangle creates a triangle object.
func NewTriangle(v1, v2, v3 Point, filled bool, c Color) *Triangle {
	return &Triangle{V1: v1, V2: v2, V3: v3, Filled: filled, Color: c}
}

// Kind returns KindTriangle.
func (*Triangle) Kind() ObjectKind { return KindTriangle }

func (*Triangle) sealedObject() {}

// Pixel is a single point.
type Pixel struct {
	Position Point
	Color    Color
}

// NewPixel creates a pixel object.
func NewPixel(position Point, c Color) *Pixel {
	return &Pixel{Position: position, Color: c}
}

// Kind returns KindPixel.
func (*Pixel) Kind() ObjectKind { return KindPixel }

func (*Pixel) sealedObject() {}

// Text is a string drawn at a position. Size selects the face size in
// points. Rotation is carried on the object but not applied at raster time.
type Text struct {
	Position Point
	Size     float64
	Rotation float64
	Color    Color
	Text     string
}

// NewText creates a text object with its own copy of the string.
func NewText(position Point, size, rotation float64, c Color, text string) *Text {
	return &Text{Position: position, Size: size, Rotation: rotation, Color: c, Text: text}
}

// Kind returns KindText.
func (*Text) Kind() ObjectKind { return KindText }

func (*Text) sealedObject() {}
