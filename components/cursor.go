package components

import (
	"github.com/yohamta/donburi"
)

// CursorShape is the pointer glyph requested from the host.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorPointer
)

func (c CursorShape) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}

// CursorData is a singleton written by pointer-move handling and read by
// the host to set the cursor and the hover label.
type CursorData struct {
	Shape   CursorShape
	Hovered *donburi.Entry
}

var Cursor = donburi.NewComponentType[CursorData]()
