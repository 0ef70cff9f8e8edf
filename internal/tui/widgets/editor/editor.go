// Package editor is the text-editing widget hosted by the main window. It
// owns the buffer, the undo history, clipboard access, brace matching,
// auto-indent, word completion and the chroma-highlighted rendering of the
// visible lines, optionally word-wrapped and with indentation guides.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"textino/internal/lexer"
)

// Clipboard provides editor-level clipboard integration.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// ErrNothingToCopy is returned by Cut and Copy on an empty buffer.
var ErrNothingToCopy = errors.New("nothing to copy")

type Config struct {
	Style        string
	CommentColor string
	TabWidth     int
	MarginWidth  int
	LineNumbers  bool
	CaretLine    bool
	HistoryLimit int // 0 keeps every step
	WordWrap     bool
	IndentGuides bool
	AutoComplete bool
}

var (
	marginStyle    = lipgloss.NewStyle().Faint(true)
	marginCurStyle = lipgloss.NewStyle().Bold(true)
	caretLineBg    = lipgloss.AdaptiveColor{Light: "#eaffea", Dark: "#1e2b1e"}
	selectionBg    = lipgloss.AdaptiveColor{Light: "#c6dbff", Dark: "#264f78"}
	braceBg        = lipgloss.AdaptiveColor{Light: "#ffd7a8", Dark: "#5c4a1e"}
)

type Editor struct {
	cfg  Config
	clip Clipboard

	buf     *buffer
	cur     Pos
	goalCol int
	anchor  *Pos

	settings lexer.Settings
	hl       *highlighter
	version  int
	hlDone   int

	hist history
	comp completion

	width, height int
	top, left     int
	topSub        int // first shown row of line top when wrapping
}

func New(cfg Config, clip Clipboard) *Editor {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.MarginWidth <= 0 {
		cfg.MarginWidth = 5
	}
	e := &Editor{
		cfg:    cfg,
		clip:   clip,
		buf:    newBuffer(""),
		hl:     newHighlighter(cfg.Style, cfg.CommentColor),
		hist:   history{limit: cfg.HistoryLimit},
		width:  80,
		height: 24,
		hlDone: -1,
	}
	e.SetProfile(lexer.None)
	return e
}

// Text returns the whole buffer.
func (e *Editor) Text() string { return e.buf.text() }

// SetText replaces the buffer, moves the cursor home and forgets the undo
// history.
func (e *Editor) SetText(s string) {
	e.buf.setText(s)
	e.cur, e.goalCol, e.anchor = Pos{}, 0, nil
	e.top, e.left, e.topSub = 0, 0, 0
	e.comp = completion{}
	e.hist.reset()
	e.version++
}

// ApplyText replaces the buffer as one undoable edit, keeping the cursor
// as close to its old place as the new text allows.
func (e *Editor) ApplyText(s string) bool {
	if s == e.buf.text() {
		return false
	}
	e.record(editOther)
	e.buf.setText(s)
	e.anchor = nil
	e.moveTo(e.buf.clamp(e.cur))
	e.version++
	return true
}

// SetProfile configures highlighting, auto-indent and brace matching.
func (e *Editor) SetProfile(p lexer.Profile) {
	e.settings = lexer.SettingsFor(p)
	e.hl.setLexer(lexer.Chroma(p), e.settings.MuteComments)
	e.version++
}

func (e *Editor) Settings() lexer.Settings { return e.settings }

func (e *Editor) SetSize(w, h int) {
	e.width, e.height = max(w, 1), max(h, 1)
	e.ensureVisible()
}

func (e *Editor) ToggleLineNumbers() {
	e.cfg.LineNumbers = !e.cfg.LineNumbers
	e.ensureVisible()
}

func (e *Editor) LineNumbers() bool { return e.cfg.LineNumbers }

// Cursor returns the 1-based line and column.
func (e *Editor) Cursor() (line, col int) { return e.cur.Line + 1, e.cur.Col + 1 }

func (e *Editor) LineCount() int { return e.buf.lineCount() }

func (e *Editor) CursorOffset() int { return e.buf.offset(e.cur) }

// SetCursorOffset moves the cursor to a rune offset and drops the selection.
func (e *Editor) SetCursorOffset(off int) {
	e.anchor = nil
	e.moveTo(e.buf.pos(off))
}

// Select selects the runes [from, to) and leaves the cursor at to.
func (e *Editor) Select(from, to int) {
	a := e.buf.pos(from)
	e.anchor = &a
	e.moveTo(e.buf.pos(to))
}

func (e *Editor) SelectAll() {
	e.anchor = &Pos{}
	last := e.buf.lineCount() - 1
	e.moveTo(Pos{Line: last, Col: e.buf.lineLen(last)})
}

func (e *Editor) HasSelection() bool { return e.anchor != nil && *e.anchor != e.cur }

// SelectionRange returns the selection as rune offsets.
func (e *Editor) SelectionRange() (start, end int, ok bool) {
	if !e.HasSelection() {
		return 0, 0, false
	}
	a, b := order(*e.anchor, e.cur)
	return e.buf.offset(a), e.buf.offset(b), true
}

func (e *Editor) SelectedText() string {
	if !e.HasSelection() {
		return ""
	}
	return e.buf.slice(*e.anchor, e.cur)
}

// ReplaceSelection swaps the selected text for s as one undoable edit.
func (e *Editor) ReplaceSelection(s string) bool {
	if !e.HasSelection() {
		return false
	}
	e.record(editOther)
	e.deleteSelection()
	e.moveTo(e.buf.insert(e.cur, s))
	e.version++
	return true
}

// CanCopy reports whether Cut and Copy have something to act on.
func (e *Editor) CanCopy() bool {
	return e.HasSelection() || e.buf.lineCount() > 1 || e.buf.lineLen(0) > 0
}

func (e *Editor) CanUndo() bool { return e.hist.canUndo() }
func (e *Editor) CanRedo() bool { return e.hist.canRedo() }

// copyRange is the selection, or the whole current line including its
// newline when nothing is selected.
func (e *Editor) copyRange() (Pos, Pos) {
	if e.HasSelection() {
		return order(*e.anchor, e.cur)
	}
	start := Pos{Line: e.cur.Line}
	if e.cur.Line+1 < e.buf.lineCount() {
		return start, Pos{Line: e.cur.Line + 1}
	}
	return start, Pos{Line: e.cur.Line, Col: e.buf.lineLen(e.cur.Line)}
}

func (e *Editor) Copy() error {
	if !e.CanCopy() {
		return ErrNothingToCopy
	}
	a, b := e.copyRange()
	if err := e.clip.WriteText(e.buf.slice(a, b)); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

func (e *Editor) Cut() error {
	if !e.CanCopy() {
		return ErrNothingToCopy
	}
	a, b := e.copyRange()
	if err := e.clip.WriteText(e.buf.slice(a, b)); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	e.record(editOther)
	e.buf.remove(a, b)
	e.anchor = nil
	e.moveTo(a)
	e.version++
	return nil
}

// Paste inserts the clipboard text over the selection. It reports whether
// the buffer changed.
func (e *Editor) Paste() (bool, error) {
	s, err := e.clip.ReadText()
	if err != nil {
		return false, fmt.Errorf("clipboard: %w", err)
	}
	if s == "" {
		return false, nil
	}
	e.record(editOther)
	e.deleteSelection()
	e.moveTo(e.buf.insert(e.cur, s))
	e.version++
	return true, nil
}

func (e *Editor) Undo() bool {
	s, ok := e.hist.popUndo(e.snap())
	if ok {
		e.restore(s)
	}
	return ok
}

func (e *Editor) Redo() bool {
	s, ok := e.hist.popRedo(e.snap())
	if ok {
		e.restore(s)
	}
	return ok
}

func (e *Editor) snap() snapshot { return snapshot{text: e.buf.text(), cursor: e.cur} }

func (e *Editor) restore(s snapshot) {
	e.buf.setText(s.text)
	e.anchor = nil
	e.moveTo(e.buf.clamp(s.cursor))
	e.version++
}

func (e *Editor) record(kind editKind) {
	if e.hist.merges(kind) {
		e.hist.redo = nil
		return
	}
	e.hist.record(e.snap(), kind)
}

func (e *Editor) deleteSelection() bool {
	if !e.HasSelection() {
		e.anchor = nil
		return false
	}
	a, _ := order(*e.anchor, e.cur)
	e.buf.remove(*e.anchor, e.cur)
	e.anchor = nil
	e.cur = a
	return true
}

func (e *Editor) moveTo(p Pos) {
	e.cur = p
	e.goalCol = p.Col
	e.ensureVisible()
}

// MoveToCell places the cursor under the screen cell (x, y) of the view,
// relative to its top-left corner. Clicks in the margin land on column 0.
func (e *Editor) MoveToCell(x, y int) {
	e.anchor = nil
	rows := e.screenRows()
	if len(rows) == 0 {
		return
	}
	s := rows[min(max(y, 0), len(rows)-1)]
	col, v := s.from, e.visualCol(s.line, s.from)
	left := e.left
	if e.cfg.WordWrap {
		left = v
	}
	want := left + x - e.marginWidth()
	end := s.to
	if !s.last && end > s.from {
		// The row's end belongs to the next row.
		end--
	}
	l := e.buf.lines[s.line]
	for col < end {
		w := e.cellWidth(l[col], v)
		if v+w > want {
			break
		}
		v += w
		col++
	}
	e.hist.breakRun()
	e.moveTo(Pos{Line: s.line, Col: col})
}

// Scroll moves the viewport by n lines without moving the cursor.
func (e *Editor) Scroll(n int) {
	e.top = max(min(e.top+n, e.buf.lineCount()-1), 0)
	e.topSub = 0
}

// HandleKey applies an editing or movement key. It reports whether the text
// changed; keys it does not know are ignored.
func (e *Editor) HandleKey(msg tea.KeyMsg) bool {
	k := msg.String()
	wasCompleting := e.completing()
	if wasCompleting {
		if handled, changed := e.completionKey(k); handled {
			return changed
		}
	}
	e.comp = completion{}
	if strings.Contains(k, "shift+") && e.anchor == nil {
		a := e.cur
		e.anchor = &a
	}
	switch k {
	case "left", "right", "up", "down", "home", "end", "pgup", "pgdown",
		"ctrl+home", "ctrl+end", "ctrl+left", "ctrl+right", "alt+left", "alt+right":
		e.anchor = nil
		e.hist.breakRun()
		e.move(k)
		return false
	case "shift+left", "shift+right", "shift+up", "shift+down", "shift+home", "shift+end",
		"ctrl+shift+home", "ctrl+shift+end", "ctrl+shift+left", "ctrl+shift+right":
		e.hist.breakRun()
		e.move(strings.Replace(k, "shift+", "", 1))
		return false
	case "ctrl+@":
		if e.anchor != nil {
			e.anchor = nil
		} else {
			a := e.cur
			e.anchor = &a
		}
		return false
	case "ctrl+a":
		e.SelectAll()
		return false
	case "enter":
		e.record(editOther)
		e.deleteSelection()
		indent := ""
		if e.settings.AutoIndent {
			indent = e.buf.indent(e.cur.Line)
			if ind := []rune(indent); e.cur.Col < len(ind) {
				indent = string(ind[:e.cur.Col])
			}
		}
		e.moveTo(e.buf.insert(e.cur, "\n"+indent))
		e.version++
		return true
	case "backspace":
		if e.HasSelection() {
			e.record(editOther)
			e.deleteSelection()
			e.moveTo(e.cur)
			e.version++
			return true
		}
		e.anchor = nil
		if e.cur == (Pos{}) {
			return false
		}
		e.record(editDeleting)
		prev := e.cur
		if prev.Col > 0 {
			prev.Col--
		} else {
			prev = Pos{Line: prev.Line - 1, Col: e.buf.lineLen(prev.Line - 1)}
		}
		e.buf.remove(prev, e.cur)
		e.moveTo(prev)
		e.version++
		if wasCompleting {
			e.updateCompletion()
		}
		return true
	case "delete":
		if e.HasSelection() {
			e.record(editOther)
			e.deleteSelection()
			e.moveTo(e.cur)
			e.version++
			return true
		}
		e.anchor = nil
		next := e.cur
		if next.Col < e.buf.lineLen(next.Line) {
			next.Col++
		} else if next.Line+1 < e.buf.lineCount() {
			next = Pos{Line: next.Line + 1}
		} else {
			return false
		}
		e.record(editDeleting)
		e.buf.remove(e.cur, next)
		e.ensureVisible()
		e.version++
		return true
	case "tab":
		return e.insertText("\t", editTyping)
	}
	switch msg.Type {
	case tea.KeyRunes:
		kind := editTyping
		if msg.Paste || len(msg.Runes) > 1 {
			kind = editOther
		}
		e.insertText(string(msg.Runes), kind)
		if kind == editTyping && len(msg.Runes) == 1 && isWordRune(msg.Runes[0]) {
			e.updateCompletion()
		}
		return true
	case tea.KeySpace:
		return e.insertText(" ", editTyping)
	}
	return false
}

func (e *Editor) insertText(s string, kind editKind) bool {
	if e.HasSelection() {
		kind = editOther
	}
	e.record(kind)
	e.deleteSelection()
	e.moveTo(e.buf.insert(e.cur, s))
	e.version++
	return true
}

func (e *Editor) move(k string) {
	p := e.cur
	keepGoal := false
	switch k {
	case "left":
		if p.Col > 0 {
			p.Col--
		} else if p.Line > 0 {
			p = Pos{Line: p.Line - 1, Col: e.buf.lineLen(p.Line - 1)}
		}
	case "right":
		if p.Col < e.buf.lineLen(p.Line) {
			p.Col++
		} else if p.Line+1 < e.buf.lineCount() {
			p = Pos{Line: p.Line + 1}
		}
	case "up", "down", "pgup", "pgdown":
		delta := map[string]int{"up": -1, "down": 1, "pgup": -e.height, "pgdown": e.height}[k]
		p.Line = min(max(p.Line+delta, 0), e.buf.lineCount()-1)
		p.Col = min(e.goalCol, e.buf.lineLen(p.Line))
		keepGoal = true
	case "home":
		// First press goes to the indentation, second to column 0.
		ind := len([]rune(e.buf.indent(p.Line)))
		if p.Col == ind {
			p.Col = 0
		} else {
			p.Col = ind
		}
	case "end":
		p.Col = e.buf.lineLen(p.Line)
	case "ctrl+home":
		p = Pos{}
	case "ctrl+end":
		last := e.buf.lineCount() - 1
		p = Pos{Line: last, Col: e.buf.lineLen(last)}
	case "ctrl+left", "alt+left":
		p = e.wordLeft(p)
	case "ctrl+right", "alt+right":
		p = e.wordRight(p)
	}
	goal := e.goalCol
	e.moveTo(p)
	if keepGoal {
		e.goalCol = goal
	}
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 127
}

func (e *Editor) wordLeft(p Pos) Pos {
	if p.Col == 0 {
		if p.Line == 0 {
			return p
		}
		return Pos{Line: p.Line - 1, Col: e.buf.lineLen(p.Line - 1)}
	}
	l := e.buf.lines[p.Line]
	c := p.Col
	for c > 0 && !isWordRune(l[c-1]) {
		c--
	}
	for c > 0 && isWordRune(l[c-1]) {
		c--
	}
	return Pos{Line: p.Line, Col: c}
}

func (e *Editor) wordRight(p Pos) Pos {
	l := e.buf.lines[p.Line]
	if p.Col >= len(l) {
		if p.Line+1 >= e.buf.lineCount() {
			return p
		}
		return Pos{Line: p.Line + 1}
	}
	c := p.Col
	for c < len(l) && isWordRune(l[c]) {
		c++
	}
	for c < len(l) && !isWordRune(l[c]) {
		c++
	}
	return Pos{Line: p.Line, Col: c}
}

var pairs = map[rune]struct {
	mate    rune
	forward bool
}{
	'(': {')', true}, '[': {']', true}, '{': {'}', true},
	')': {'(', false}, ']': {'[', false}, '}': {'{', false},
}

// MatchingBrace finds the brace pair around the cursor: the brace under the
// cursor, or failing that the one just before it. ok is false when brace
// matching is off, there is no brace, or it is unbalanced.
func (e *Editor) MatchingBrace() (brace, mate Pos, ok bool) {
	if e.settings.BraceMatch == lexer.NoBraceMatch {
		return Pos{}, Pos{}, false
	}
	line := e.buf.lines[e.cur.Line]
	at := -1
	if e.cur.Col < len(line) {
		if _, is := pairs[line[e.cur.Col]]; is {
			at = e.cur.Col
		}
	}
	if at < 0 && e.cur.Col > 0 {
		if _, is := pairs[line[e.cur.Col-1]]; is {
			at = e.cur.Col - 1
		}
	}
	if at < 0 {
		return Pos{}, Pos{}, false
	}
	brace = Pos{Line: e.cur.Line, Col: at}
	open := line[at]
	pair := pairs[open]
	depth := 0
	p := brace
	for {
		r := e.buf.lines[p.Line][p.Col]
		if r == open {
			depth++
		} else if r == pair.mate {
			depth--
			if depth == 0 {
				return brace, p, true
			}
		}
		var more bool
		if p, more = e.step(p, pair.forward); !more {
			return Pos{}, Pos{}, false
		}
	}
}

// step moves one rune forward or backward, skipping line breaks.
func (e *Editor) step(p Pos, forward bool) (Pos, bool) {
	if forward {
		p.Col++
		for p.Col >= e.buf.lineLen(p.Line) {
			if p.Line+1 >= e.buf.lineCount() {
				return p, false
			}
			p = Pos{Line: p.Line + 1}
			if e.buf.lineLen(p.Line) > 0 {
				return p, true
			}
		}
		return p, true
	}
	p.Col--
	for p.Col < 0 {
		if p.Line == 0 {
			return p, false
		}
		p.Line--
		p.Col = e.buf.lineLen(p.Line) - 1
	}
	return p, true
}

func (e *Editor) marginWidth() int {
	if !e.cfg.LineNumbers {
		return 0
	}
	w := e.cfg.MarginWidth
	if d := len(fmt.Sprint(e.buf.lineCount())) + 1; d > w {
		w = d
	}
	return w
}

func (e *Editor) textWidth() int { return max(e.width-e.marginWidth(), 1) }

// visualCol is the display column of rune column col, with tabs expanded.
func (e *Editor) visualCol(line, col int) int {
	v := 0
	l := e.buf.lines[line]
	for i := 0; i < col && i < len(l); i++ {
		v += e.cellWidth(l[i], v)
	}
	return v
}

func (e *Editor) cellWidth(r rune, at int) int {
	switch {
	case r == '\t':
		return e.cfg.TabWidth - at%e.cfg.TabWidth
	case r == '\r':
		return 0
	case r < 0x20:
		return 1
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

func (e *Editor) ensureVisible() {
	if e.cfg.WordWrap {
		e.ensureWrappedVisible()
		return
	}
	e.topSub = 0
	if e.cur.Line < e.top {
		e.top = e.cur.Line
	}
	if e.cur.Line >= e.top+e.height {
		e.top = e.cur.Line - e.height + 1
	}
	tw := e.textWidth()
	v := e.visualCol(e.cur.Line, e.cur.Col)
	if v < e.left {
		e.left = v
	}
	if v >= e.left+tw {
		e.left = v - tw + 1
	}
}

type cellAttr struct {
	tt       chroma.TokenType
	caret    bool
	selected bool
	cursor   bool
	brace    bool
	guide    bool
}

func (e *Editor) styleOf(a cellAttr) lipgloss.Style {
	s := e.hl.styleFor(a.tt)
	if a.caret {
		s = s.Background(caretLineBg)
	}
	if a.selected {
		s = s.Background(selectionBg)
	}
	if a.brace {
		s = s.Background(braceBg).Bold(true)
	}
	if a.guide {
		s = s.Faint(true)
	}
	if a.cursor {
		s = s.Reverse(true)
	}
	return s
}

// View renders the visible part of the buffer, exactly height rows of
// width cells, with the completion list drawn over it while open.
func (e *Editor) View() string {
	if e.hlDone != e.version {
		e.hl.run(e.buf.lines, e.buf.text())
		e.hlDone = e.version
	}
	var selA, selB Pos
	sel := e.HasSelection()
	if sel {
		selA, selB = order(*e.anchor, e.cur)
	}
	brace, mate, braceOK := e.MatchingBrace()
	mw := e.marginWidth()
	tw := e.textWidth()
	segs := e.screenRows()
	cursorX, cursorY := -1, -1

	rows := make([]string, 0, e.height)
	for r := 0; r < e.height; r++ {
		var b strings.Builder
		if r >= len(segs) {
			if mw > 0 {
				b.WriteString(marginStyle.Render(strings.Repeat(" ", mw)))
			}
			b.WriteString(strings.Repeat(" ", tw))
			rows = append(rows, b.String())
			continue
		}
		seg := segs[r]
		ln := seg.line
		if mw > 0 {
			num := ""
			if seg.from == 0 {
				num = fmt.Sprint(ln + 1)
			}
			label := fmt.Sprintf("%*s ", mw-1, num)
			if ln == e.cur.Line {
				b.WriteString(marginCurStyle.Render(label))
			} else {
				b.WriteString(marginStyle.Render(label))
			}
		}
		caret := e.cfg.CaretLine && ln == e.cur.Line
		line := e.buf.lines[ln]
		reach := 0
		if e.cfg.IndentGuides && seg.from == 0 {
			reach = e.guideWidth(ln)
		}
		v := e.visualCol(ln, seg.from)
		left := e.left
		if e.cfg.WordWrap {
			left = v
		}
		var run strings.Builder
		var runAttr cellAttr
		runOpen := false
		used := 0
		flush := func() {
			if runOpen && run.Len() > 0 {
				b.WriteString(e.styleOf(runAttr).Render(run.String()))
			}
			run.Reset()
			runOpen = false
		}
		emit := func(text string, width int, a cellAttr) {
			if !runOpen || a != runAttr {
				flush()
				runAttr, runOpen = a, true
			}
			run.WriteString(text)
			used += width
		}
		end := seg.to
		if seg.last {
			end++
		}
		for c := seg.from; c < end; c++ {
			p := Pos{Line: ln, Col: c}
			a := cellAttr{
				tt:       e.hl.typeAt(ln, c),
				caret:    caret,
				selected: sel && !p.Less(selA) && p.Less(selB),
				cursor:   p == e.cur,
				brace:    braceOK && (p == brace || p == mate),
			}
			var glyph string
			var w int
			if c == len(line) {
				if !a.cursor {
					break
				}
				glyph, w = " ", 1
			} else {
				w = e.cellWidth(line[c], v)
				switch r := line[c]; {
				case r == '\t':
					glyph = strings.Repeat(" ", w)
				case r == '\r':
					glyph = ""
				case r < 0x20:
					glyph = "?"
				default:
					glyph = string(r)
				}
			}
			start := v
			v += w
			if v < left || (w > 0 && v == left) {
				continue
			}
			cells := w
			switch {
			case start < left:
				// Wide rune or tab cut by the left edge.
				glyph, cells = strings.Repeat(" ", v-left), v-left
			case w == 0 && a.cursor:
				// A zero-width rune under the cursor still needs a cell.
				glyph, cells = " ", 1
			case c < len(line) && isBlank(line[c]) && e.guideAt(start, reach):
				glyph = "│" + glyph[1:]
				a.guide = true
			}
			if used+cells > tw {
				break
			}
			if a.cursor {
				cursorX, cursorY = mw+used, r
			}
			emit(glyph, cells, a)
		}
		flush()
		if pad := tw - used; pad > 0 {
			fill := lipgloss.NewStyle()
			if caret {
				fill = fill.Background(caretLineBg)
			}
			b.WriteString(e.padding(fill, left+used, pad, reach))
		}
		rows = append(rows, b.String())
	}
	out := strings.Join(rows, "\n")
	if e.completing() && cursorY >= 0 {
		out = e.completionPopup(out, cursorX, cursorY)
	}
	return out
}

// padding fills n cells from display column v, continuing the indentation
// guides of a blank line.
func (e *Editor) padding(style lipgloss.Style, v, n, reach int) string {
	if reach <= v || !e.cfg.IndentGuides {
		return style.Render(strings.Repeat(" ", n))
	}
	var b strings.Builder
	guide := style.Faint(true)
	for i := 0; i < n; i++ {
		if e.guideAt(v+i, reach) {
			b.WriteString(guide.Render("│"))
		} else {
			b.WriteString(style.Render(" "))
		}
	}
	return b.String()
}
