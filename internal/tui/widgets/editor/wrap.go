package editor

// segment is one screen row of buffer text: the runes [from, to) of a line.
// The last segment of a line also owns the cell after the line's end.
type segment struct {
	line, from, to int
	last           bool
}

func isBlank(r rune) bool { return r == ' ' || r == '\t' }

// segments splits line ln into screen rows. Without word wrap every line is
// one row; with it, rows break after the last blank that fits, or mid-word
// when a word is wider than the view.
func (e *Editor) segments(ln int) []segment {
	l := e.buf.lines[ln]
	if !e.cfg.WordWrap {
		return []segment{{line: ln, from: 0, to: len(l), last: true}}
	}
	tw := e.textWidth()
	var out []segment
	from, rowStart, v, brk := 0, 0, 0, -1
	for c := 0; c < len(l); c++ {
		w := e.cellWidth(l[c], v)
		for v+w-rowStart > tw && c > from {
			cut := c
			if brk > from {
				cut = brk
			}
			out = append(out, segment{line: ln, from: from, to: cut})
			from, rowStart, brk = cut, e.visualCol(ln, cut), -1
		}
		v += w
		if isBlank(l[c]) {
			brk = c + 1
		}
	}
	if v-rowStart >= tw && from < len(l) {
		// A full last row leaves no room for the end-of-line cell.
		out = append(out, segment{line: ln, from: from, to: len(l)})
		from = len(l)
	}
	return append(out, segment{line: ln, from: from, to: len(l), last: true})
}

// segmentOf is the index of the row of line p.Line that holds p.
func (e *Editor) segmentOf(p Pos) int {
	segs := e.segments(p.Line)
	for i, s := range segs {
		if p.Col < s.to || s.last {
			return i
		}
	}
	return len(segs) - 1
}

// screenRows lists the segments shown in the view, from the top row down.
func (e *Editor) screenRows() []segment {
	rows := make([]segment, 0, e.height)
	for ln := e.top; ln < e.buf.lineCount() && len(rows) < e.height; ln++ {
		segs := e.segments(ln)
		if ln == e.top {
			segs = segs[min(e.topSub, len(segs)-1):]
		}
		for _, s := range segs {
			if len(rows) == e.height {
				break
			}
			rows = append(rows, s)
		}
	}
	return rows
}

// ensureWrappedVisible scrolls by rows so the cursor's row is on screen.
func (e *Editor) ensureWrappedVisible() {
	e.left = 0
	sub := e.segmentOf(e.cur)
	if e.cur.Line < e.top || (e.cur.Line == e.top && sub < e.topSub) {
		e.top, e.topSub = e.cur.Line, sub
		return
	}
	// Every line takes at least one row.
	if e.cur.Line-e.top >= e.height {
		e.top, e.topSub = e.cur.Line-e.height+1, 0
	}
	rows := sub
	if e.cur.Line == e.top {
		rows -= e.topSub
	} else {
		rows += len(e.segments(e.top)) - e.topSub
		for ln := e.top + 1; ln < e.cur.Line; ln++ {
			rows += len(e.segments(ln))
		}
	}
	for rows >= e.height {
		if e.top == e.cur.Line {
			e.topSub += rows - e.height + 1
			return
		}
		rows -= len(e.segments(e.top)) - e.topSub
		e.top++
		e.topSub = 0
	}
}

// ToggleWrap switches word wrap on or off.
func (e *Editor) ToggleWrap() {
	e.cfg.WordWrap = !e.cfg.WordWrap
	e.top, e.topSub, e.left = e.cur.Line, 0, 0
	e.ensureVisible()
}

func (e *Editor) Wrap() bool { return e.cfg.WordWrap }

// guideScan bounds the search for a blank line's indented neighbours.
const guideScan = 100

// indentWidth is the display width of line ln's leading blanks, or -1 when
// the line holds nothing else.
func (e *Editor) indentWidth(ln int) int {
	l := e.buf.lines[ln]
	c := 0
	for c < len(l) && isBlank(l[c]) {
		c++
	}
	if c == len(l) || (c == len(l)-1 && l[c] == '\r') {
		return -1
	}
	return e.visualCol(ln, c)
}

// guideWidth is how far indentation guides reach on line ln. Blank lines
// take the deeper indentation of the nearest non-blank lines around them.
func (e *Editor) guideWidth(ln int) int {
	if w := e.indentWidth(ln); w >= 0 {
		return w
	}
	prev, next := 0, 0
	for i := ln - 1; i >= 0 && i >= ln-guideScan; i-- {
		if w := e.indentWidth(i); w >= 0 {
			prev = w
			break
		}
	}
	for i := ln + 1; i < e.buf.lineCount() && i <= ln+guideScan; i++ {
		if w := e.indentWidth(i); w >= 0 {
			next = w
			break
		}
	}
	return max(prev, next)
}

// guideAt reports whether a guide is drawn in display column v of a line
// whose guides reach reach.
func (e *Editor) guideAt(v, reach int) bool {
	return e.cfg.IndentGuides && v < reach && v%e.cfg.TabWidth == 0
}
