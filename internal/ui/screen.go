// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// RuneAt returns the rune drawn at the given position.
func (s *Screen) RuneAt(x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

// DrawText writes text starting at (x, y) and returns the column after it.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		s.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// ClearRow blanks row y across the whole screen width.
func (s *Screen) ClearRow(y int) {
	w, _ := s.screen.Size()
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
