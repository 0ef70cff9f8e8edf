package editor

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// highlighter assigns a chroma token type to every rune of the buffer.
type highlighter struct {
	lexer   chroma.Lexer
	style   *chroma.Style
	comment lipgloss.Color
	mute    bool

	styles map[chroma.TokenType]lipgloss.Style
	types  [][]chroma.TokenType
}

func newHighlighter(styleName, comment string) *highlighter {
	return &highlighter{
		style:   styles.Get(styleName),
		comment: lipgloss.Color(comment),
		styles:  map[chroma.TokenType]lipgloss.Style{},
	}
}

func (h *highlighter) setLexer(l chroma.Lexer, muteComments bool) {
	h.lexer = l
	h.mute = muteComments
	h.styles = map[chroma.TokenType]lipgloss.Style{}
}

// run retokenizes the whole text. Multi-line tokens such as block comments
// need the full text, not one line at a time.
func (h *highlighter) run(lines [][]rune, text string) {
	h.types = make([][]chroma.TokenType, len(lines))
	for i, l := range lines {
		h.types[i] = make([]chroma.TokenType, len(l))
		for j := range h.types[i] {
			h.types[i][j] = chroma.Text
		}
	}
	if h.lexer == nil {
		return
	}
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return
	}
	line, col := 0, 0
	for _, tok := range it.Tokens() {
		for _, r := range tok.Value {
			if r == '\n' {
				line++
				col = 0
				continue
			}
			if line >= len(h.types) {
				return
			}
			if col < len(h.types[line]) {
				h.types[line][col] = tok.Type
			}
			col++
		}
	}
}

func (h *highlighter) typeAt(line, col int) chroma.TokenType {
	if line < len(h.types) && col < len(h.types[line]) {
		return h.types[line][col]
	}
	return chroma.Text
}

func (h *highlighter) styleFor(tt chroma.TokenType) lipgloss.Style {
	if s, ok := h.styles[tt]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if h.lexer != nil && tt != chroma.Text {
		e := h.style.Get(tt)
		if e.Colour.IsSet() {
			s = s.Foreground(lipgloss.Color(e.Colour.String()))
		}
		if e.Bold == chroma.Yes {
			s = s.Bold(true)
		}
		if e.Italic == chroma.Yes {
			s = s.Italic(true)
		}
		if e.Underline == chroma.Yes {
			s = s.Underline(true)
		}
		if h.mute && tt.InCategory(chroma.Comment) {
			s = s.Foreground(h.comment)
		}
	}
	h.styles[tt] = s
	return s
}
