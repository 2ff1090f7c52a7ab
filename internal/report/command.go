package report

import "vigovia/internal/config"

// Op identifies a draw command kind.
type Op int

const (
	OpText Op = iota
	OpRect
	OpLine
	OpCircle
)

// TextStyle carries everything the backend needs to place a text command.
type TextStyle struct {
	Size   float64 // points
	Bold   bool
	Italic bool
	Align  string // "" left, "C" centered on X, "R" right-aligned to X
	Color  config.Color
}

// Command is a backend-independent instruction to place content at a
// position on the current page. Renderers emit commands; the emitter
// encodes them.
type Command struct {
	Op   Op
	X, Y float64

	// OpText
	Text  string
	Style TextStyle

	// OpRect
	W, H float64

	// OpLine end point
	X2, Y2 float64

	// OpCircle
	R float64

	// fill color for rect/circle, stroke color for line
	Color config.Color
}

// Page is an ordered command sequence plus its zero-based index. Pages are
// produced during a single linear pass and never mutated after the cursor
// moves past them.
type Page struct {
	Index    int
	Commands []Command
}

func text(x, y float64, s string, style TextStyle) Command {
	return Command{Op: OpText, X: x, Y: y, Text: s, Style: style}
}

func rect(x, y, w, h float64, fill config.Color) Command {
	return Command{Op: OpRect, X: x, Y: y, W: w, H: h, Color: fill}
}

func line(x1, y1, x2, y2 float64, stroke config.Color) Command {
	return Command{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: stroke}
}

func circle(x, y, r float64, fill config.Color) Command {
	return Command{Op: OpCircle, X: x, Y: y, R: r, Color: fill}
}
