package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/store"
)

// Options configures the session: the local profile (whose email receives
// invitation notifications) and the glyph set.
type Options struct {
	UserName  string
	UserEmail string
	ASCII     bool
}

func Run(db *store.DB, opts Options) error {
	if opts.ASCII {
		setGlyphs(glyphSetASCII)
	}
	p := tea.NewProgram(newAppModel(db, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
