package view_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/view"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)

	return s
}

func cellAt(s tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := s.GetContents()

	return cells[y*w+x]
}

// TestDraw paints symbols with palette styles, clipped to the screen.
func TestDraw(t *testing.T) {
	s := newScreen(t, 2, 2)
	img, err := grid.New([]string{"#O.", "...", "..#"})
	require.NoError(t, err)
	pal := view.DefaultPalette()

	view.New(s, img, pal).Draw()

	c := cellAt(s, 0, 0)
	assert.Equal(t, []rune{'#'}, c.Runes)
	assert.Equal(t, pal.Styles['#'], c.Style)
	c = cellAt(s, 1, 0)
	assert.Equal(t, []rune{'O'}, c.Runes)
	assert.Equal(t, pal.Styles['O'], c.Style)
	assert.Equal(t, pal.Default, cellAt(s, 0, 1).Style)
}

// TestHandle_Scroll moves the viewport within bounds and quits on q.
func TestHandle_Scroll(t *testing.T) {
	s := newScreen(t, 2, 2)
	img, err := grid.New([]string{"#..", "...", "..#"})
	require.NoError(t, err)
	v := view.New(s, img, view.DefaultPalette())

	key := func(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

	assert.False(t, v.Handle(key(tcell.KeyRight)))
	assert.False(t, v.Handle(key(tcell.KeyRight)))
	assert.False(t, v.Handle(key(tcell.KeyDown)))
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, v.Offset(), "clamped to size-screen")
	assert.Equal(t, []rune{'#'}, cellAt(s, 1, 1).Runes)

	assert.False(t, v.Handle(key(tcell.KeyUp)))
	assert.False(t, v.Handle(key(tcell.KeyUp)))
	assert.Equal(t, grid.Point{Row: 0, Col: 1}, v.Offset())

	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, v.Handle(key(tcell.KeyEscape)))
}

// TestRun returns once a quit key is queued.
func TestRun(t *testing.T) {
	s := newScreen(t, 4, 4)
	img, err := grid.New([]string{"##", ".."})
	require.NoError(t, err)

	s.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	view.New(s, img, view.DefaultPalette()).Run()

	assert.Equal(t, []rune{'#'}, cellAt(s, 0, 0).Runes)
}
