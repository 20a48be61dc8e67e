package kitty

import "fmt"

// Code is a numeric engine error code. The numbering is grouped so that
// callers bridging to non-Go consumers can classify failures without string
// matching:
//
//	0         success
//	1–99      general faults
//	100–199   memory / object-store faults
//	1000–1999 presentation-surface faults
//	9999      unknown
type Code int

// Engine error codes.
const (
	CodeOK Code = 0

	CodeInitFailure            Code = 1
	CodeWindowNotInitialized   Code = 2
	CodeRendererNotInitialized Code = 3
	CodeLockTexture            Code = 4
	CodeFileNotFound           Code = 5

	CodeAllocFailure        Code = 100
	CodeArenaNotInitialized Code = 101
	CodeArenaNotEmptied     Code = 102
	CodeInvalidIndex        Code = 103

	CodeSurfaceInit      Code = 1000
	CodeWindowCreation   Code = 1001
	CodeRendererCreation Code = 1002
	CodeTextRender       Code = 1003

	CodeUnknown Code = 9999
)

// Error is the engine's error type. Two Errors match under errors.Is when
// their codes are equal, so wrapped errors can be tested against the exported
// sentinels.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// errCode wraps cause with an engine code and a formatted message.
func errCode(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Msg: "kitty: " + fmt.Sprintf(format, args...), Err: cause}
}

// Sentinel errors. Use errors.Is for matching; operations may return wrapped
// variants carrying extra detail.
var (
	// ErrNotInitialized is returned by object-store operations on an engine
	// or arena that was never initialized or has been closed.
	ErrNotInitialized = &Error{Code: CodeArenaNotInitialized, Msg: "kitty: object arena not initialized"}

	// ErrSurfaceNotInitialized is returned by drawing operations when no
	// presentation surface is attached.
	ErrSurfaceNotInitialized = &Error{Code: CodeRendererNotInitialized, Msg: "kitty: presentation surface not initialized"}

	// ErrInvalidIndex is returned when an object index is out of range.
	ErrInvalidIndex = &Error{Code: CodeInvalidIndex, Msg: "kitty: invalid object index"}

	// ErrInvalidFaceIndex is returned when a face references a vertex or UV
	// slot that does not exist: by Mesh.AddFace at build time, or by a
	// textured render pass for faces added before the mesh carried any UVs.
	ErrInvalidFaceIndex = &Error{Code: CodeInvalidIndex, Msg: "kitty: face index out of range"}

	// ErrUnknownObjectType aborts a render pass that encounters an object
	// variant the rasterizer does not handle.
	ErrUnknownObjectType = &Error{Code: CodeUnknown, Msg: "kitty: unknown object type"}

	// ErrFileNotFound is returned when a texture or mesh file cannot be opened.
	ErrFileNotFound = &Error{Code: CodeFileNotFound, Msg: "kitty: file not found"}

	// ErrTextRender is returned when rasterizing a text object fails.
	ErrTextRender = &Error{Code: CodeTextRender, Msg: "kitty: text rendering failed"}
)

// ParseError reports a malformed record in a mesh description file. The
// original engine silently ignored unscannable fields; this implementation is
// deliberately stricter and surfaces them.
type ParseError struct {
	Line int    // 1-based line number in the input
	Text string // the offending line, trimmed
	Err  error  // underlying cause, typically a strconv error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("kitty: mesh file line %d: malformed record %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
