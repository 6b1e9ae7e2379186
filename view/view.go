// Package view paints a symbol grid onto a terminal screen and lets the user
// scroll it with the arrow keys. Quit with q, Esc or Ctrl-C.
package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mosaic/grid"
)

// Palette maps symbols to styles; unmapped symbols use Default.
type Palette struct {
	Styles  map[byte]tcell.Style
	Default tcell.Style
}

// DefaultPalette shows '#' in teal, highlighted 'O' cells in bold red, and
// everything else dimmed.
func DefaultPalette() Palette {
	return Palette{
		Styles: map[byte]tcell.Style{
			'#': tcell.StyleDefault.Foreground(tcell.ColorTeal),
			'O': tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		},
		Default: tcell.StyleDefault.Dim(true),
	}
}

func (p Palette) style(sym byte) tcell.Style {
	if st, ok := p.Styles[sym]; ok {
		return st
	}

	return p.Default
}

// Viewer shows one grid on an initialized screen.
type Viewer struct {
	screen tcell.Screen
	img    *grid.Grid
	pal    Palette
	off    grid.Point
}

// New returns a Viewer for img. The caller owns screen initialization and Fini.
func New(screen tcell.Screen, img *grid.Grid, pal Palette) *Viewer {
	return &Viewer{screen: screen, img: img, pal: pal}
}

// Offset returns the grid cell drawn at the top-left corner of the screen.
func (v *Viewer) Offset() grid.Point {
	return v.off
}

// Draw clears the screen and paints the visible part of the grid.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	n := v.img.Size()
	for y := 0; y < h && v.off.Row+y < n; y++ {
		row := v.img.Row(v.off.Row + y)
		for x := 0; x < w && v.off.Col+x < n; x++ {
			sym := row[v.off.Col+x]
			v.screen.SetContent(x, y, rune(sym), nil, v.pal.style(sym))
		}
	}
	v.screen.Show()
}

// Handle applies one event and reports whether the viewer should quit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		case tcell.KeyUp:
			v.scroll(-1, 0)
		case tcell.KeyDown:
			v.scroll(1, 0)
		case tcell.KeyLeft:
			v.scroll(0, -1)
		case tcell.KeyRight:
			v.scroll(0, 1)
		}
	}
	v.Draw()

	return false
}

// Run draws the grid and processes events until the user quits or the
// screen is finalized.
func (v *Viewer) Run() {
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil || v.Handle(ev) {
			return
		}
	}
}

func (v *Viewer) scroll(dr, dc int) {
	w, h := v.screen.Size()
	n := v.img.Size()
	v.off.Row = clamp(v.off.Row+dr, 0, max(0, n-h))
	v.off.Col = clamp(v.off.Col+dc, 0, max(0, n-w))
}

func clamp(x, lo, hi int) int {
	return min(max(x, lo), hi)
}
