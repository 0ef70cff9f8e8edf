package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const (
	// completionThreshold is how many word characters must be typed before
	// the list opens.
	completionThreshold = 1
	completionRows      = 8
	completionMaxWidth  = 32
)

var (
	completionStyle    = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#e4e4e4", Dark: "#303030"})
	completionSelStyle = completionStyle.Reverse(true)
)

// completion is the word list offered while typing. It stays valid only
// while the cursor and the buffer are where it was computed.
type completion struct {
	items   []string
	sel     int
	start   Pos // first rune of the typed prefix
	at      Pos
	version int
}

// wordBefore returns the start and text of the run of word runes ending at p.
func (e *Editor) wordBefore(p Pos) (Pos, string) {
	l := e.buf.lines[p.Line]
	c := p.Col
	for c > 0 && isWordRune(l[c-1]) {
		c--
	}
	return Pos{Line: p.Line, Col: c}, string(l[c:p.Col])
}

// completions lists the distinct buffer words that start with prefix,
// case-sensitively and in sorted order. The word at skip is the one being
// typed and is not offered.
func (e *Editor) completions(prefix string, skip Pos) []string {
	seen := make(map[string]bool)
	for i, l := range e.buf.lines {
		for c := 0; c < len(l); {
			if !isWordRune(l[c]) {
				c++
				continue
			}
			s := c
			for c < len(l) && isWordRune(l[c]) {
				c++
			}
			if i == skip.Line && s == skip.Col {
				continue
			}
			w := string(l[s:c])
			if w != prefix && strings.HasPrefix(w, prefix) {
				seen[w] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (e *Editor) updateCompletion() {
	e.comp = completion{}
	if !e.cfg.AutoComplete || e.HasSelection() {
		return
	}
	start, prefix := e.wordBefore(e.cur)
	if len([]rune(prefix)) < completionThreshold {
		return
	}
	items := e.completions(prefix, start)
	if len(items) == 0 {
		return
	}
	e.comp = completion{items: items, start: start, at: e.cur, version: e.version}
}

func (e *Editor) completing() bool {
	return len(e.comp.items) > 0 && e.comp.at == e.cur && e.comp.version == e.version
}

// Completions returns the offered words and the selected index while the
// list is open.
func (e *Editor) Completions() (items []string, sel int, ok bool) {
	if !e.completing() {
		return nil, 0, false
	}
	return e.comp.items, e.comp.sel, true
}

// completionKey handles keys while the list is open. handled is false for
// keys that close the list and then act normally.
func (e *Editor) completionKey(k string) (handled, changed bool) {
	n := len(e.comp.items)
	switch k {
	case "up":
		e.comp.sel = (e.comp.sel - 1 + n) % n
		return true, false
	case "down":
		e.comp.sel = (e.comp.sel + 1) % n
		return true, false
	case "enter", "tab":
		return true, e.acceptCompletion()
	case "esc":
		e.comp = completion{}
		return true, false
	}
	return false, false
}

// acceptCompletion inserts the rest of the selected word after the prefix.
func (e *Editor) acceptCompletion() bool {
	word := []rune(e.comp.items[e.comp.sel])
	typed := e.cur.Col - e.comp.start.Col
	e.comp = completion{}
	e.hist.breakRun()
	if typed >= len(word) {
		return false
	}
	e.insertText(string(word[typed:]), editOther)
	e.hist.breakRun()
	return true
}

// completionPopup draws the open list over base, under the cursor or above
// it when there is no room below.
func (e *Editor) completionPopup(base string, cursorX, cursorY int) string {
	if e.width < 4 {
		return base
	}
	items, sel := e.comp.items, e.comp.sel
	limit := min(completionRows, e.height)
	first := 0
	if sel >= limit {
		first = sel - limit + 1
	}
	shown := items[first:min(first+limit, len(items))]
	width := 0
	for _, it := range shown {
		width = max(width, runewidth.StringWidth(it))
	}
	width = min(width+2, completionMaxWidth, e.width)

	rows := make([]string, 0, len(shown))
	for i, it := range shown {
		text := " " + runewidth.Truncate(it, width-2, "…")
		text += strings.Repeat(" ", max(width-runewidth.StringWidth(text), 0))
		if first+i == sel {
			rows = append(rows, completionSelStyle.Render(text))
		} else {
			rows = append(rows, completionStyle.Render(text))
		}
	}

	y := cursorY + 1
	if y+len(rows) > e.height && cursorY >= len(rows) {
		y = cursorY - len(rows)
	}
	y = max(min(y, e.height-len(rows)), 0)
	x := max(min(cursorX, e.width-width), 0)
	return overlay.Composite(strings.Join(rows, "\n"), base, overlay.Left, overlay.Top, x, y)
}
