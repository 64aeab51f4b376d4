package components

import "github.com/yohamta/donburi"

// CursorData is what the window should do with the OS cursor.
type CursorData struct {
	Captured bool
	Visible  bool
}

var Cursor = donburi.NewComponentType[CursorData]()
