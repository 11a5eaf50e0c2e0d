// Package ui draws the game with tcell: the map view, HUD, message log
// and the framed menu overlays.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps a tcell.Screen configured for play: dark palette, mouse
// reporting on, cursor hidden.
type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the terminal. Callers must Close it to restore
// the terminal state, even on error paths.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return initScreen(s)
}

// NewSimulationScreen returns a Screen backed by an in-memory terminal.
// Tests drive it with injected events instead of a real tty.
func NewSimulationScreen() (*Screen, error) {
	s := tcell.NewSimulationScreen("UTF-8")
	return initScreen(s)
}

func initScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next key, mouse or resize event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent writes one cell. Wide runes occupy their natural width.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync repaints every cell, used after a terminal resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
