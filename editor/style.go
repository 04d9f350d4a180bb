package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/annotated"
	"github.com/iw2rmb/quill/internal/config"
)

// Style controls the editor's rendering.
//
// The zero Style renders plain text, which keeps tests free of escape codes.
type Style struct {
	Text lipgloss.Style

	Keyword    lipgloss.Style
	Type       lipgloss.Style
	KnownValue lipgloss.Style
	Number     lipgloss.Style
	Char       lipgloss.Style
	Lifetime   lipgloss.Style

	Match         lipgloss.Style
	SelectedMatch lipgloss.Style

	Cursor    lipgloss.Style
	Tilde     lipgloss.Style
	Welcome   lipgloss.Style
	StatusBar lipgloss.Style
	Message   lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(nil, config.Defaults().Theme)
}

// NewStyle builds a Style from theme colors. A nil renderer uses the
// lipgloss default renderer.
func NewStyle(r *lipgloss.Renderer, theme config.ThemeConfig) Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		st := r.NewStyle()
		if c != "" {
			st = st.Foreground(lipgloss.Color(c))
		}
		return st
	}
	bg := func(c string) lipgloss.Style {
		st := r.NewStyle()
		if c != "" {
			st = st.Background(lipgloss.Color(c))
		}
		return st
	}

	status := bg(theme.StatusBar)
	if theme.StatusBar == "" {
		status = status.Reverse(true)
	}

	return Style{
		Text:          r.NewStyle(),
		Keyword:       fg(theme.Keyword).Bold(true),
		Type:          fg(theme.Type),
		KnownValue:    fg(theme.KnownValue),
		Number:        fg(theme.Number),
		Char:          fg(theme.Char),
		Lifetime:      fg(theme.Lifetime).Italic(true),
		Match:         bg(theme.Match),
		SelectedMatch: bg(theme.SelectedMatch).Bold(true),
		Cursor:        r.NewStyle().Reverse(true),
		Tilde:         r.NewStyle().Foreground(lipgloss.Color("240")),
		Welcome:       r.NewStyle().Foreground(lipgloss.Color("245")),
		StatusBar:     status,
		Message:       r.NewStyle(),
	}
}

// ForKind returns the style used for spans of kind k.
func (s Style) ForKind(k annotated.Kind) lipgloss.Style {
	switch k {
	case annotated.KindKeyword:
		return s.Keyword
	case annotated.KindType:
		return s.Type
	case annotated.KindKnownValue:
		return s.KnownValue
	case annotated.KindNumber, annotated.KindDigit:
		return s.Number
	case annotated.KindChar:
		return s.Char
	case annotated.KindLifetime:
		return s.Lifetime
	case annotated.KindMatch:
		return s.Match
	case annotated.KindSelectedMatch:
		return s.SelectedMatch
	default:
		return s.Text
	}
}
