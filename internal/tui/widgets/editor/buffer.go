package editor

import "strings"

// Pos is a cursor position: zero-based line and rune column.
type Pos struct {
	Line int
	Col  int
}

// Less orders positions in reading order.
func (p Pos) Less(q Pos) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}

func order(a, b Pos) (Pos, Pos) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// buffer stores the text as lines without their "\n" terminators. Any other
// rune, "\r" and "\t" included, is kept as is so text round-trips verbatim.
type buffer struct {
	lines [][]rune
}

func newBuffer(s string) *buffer {
	b := &buffer{}
	b.setText(s)
	return b
}

func (b *buffer) setText(s string) {
	parts := strings.Split(s, "\n")
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}
}

func (b *buffer) text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

func (b *buffer) lineCount() int { return len(b.lines) }

func (b *buffer) lineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

func (b *buffer) clamp(p Pos) Pos {
	if p.Line < 0 {
		return Pos{}
	}
	if p.Line >= len(b.lines) {
		last := len(b.lines) - 1
		return Pos{Line: last, Col: len(b.lines[last])}
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Line]); p.Col > n {
		p.Col = n
	}
	return p
}

// insert puts s at p and returns the position right after it.
func (b *buffer) insert(p Pos, s string) Pos {
	p = b.clamp(p)
	parts := strings.Split(s, "\n")
	line := b.lines[p.Line]
	head := append([]rune(nil), line[:p.Col]...)
	tail := append([]rune(nil), line[p.Col:]...)
	if len(parts) == 1 {
		r := []rune(parts[0])
		b.lines[p.Line] = append(append(head, r...), tail...)
		return Pos{Line: p.Line, Col: p.Col + len(r)}
	}
	added := make([][]rune, len(parts))
	added[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts)-1; i++ {
		added[i] = []rune(parts[i])
	}
	last := []rune(parts[len(parts)-1])
	added[len(parts)-1] = append(append([]rune(nil), last...), tail...)

	out := make([][]rune, 0, len(b.lines)+len(parts)-1)
	out = append(out, b.lines[:p.Line]...)
	out = append(out, added...)
	out = append(out, b.lines[p.Line+1:]...)
	b.lines = out
	return Pos{Line: p.Line + len(parts) - 1, Col: len(last)}
}

// slice returns the text between a and b.
func (b *buffer) slice(a, c Pos) string {
	a, c = order(b.clamp(a), b.clamp(c))
	if a.Line == c.Line {
		return string(b.lines[a.Line][a.Col:c.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[a.Line][a.Col:]))
	for i := a.Line + 1; i < c.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[c.Line][:c.Col]))
	return sb.String()
}

// remove deletes the text between a and c and returns it.
func (b *buffer) remove(a, c Pos) string {
	a, c = order(b.clamp(a), b.clamp(c))
	gone := b.slice(a, c)
	joined := append(append([]rune(nil), b.lines[a.Line][:a.Col]...), b.lines[c.Line][c.Col:]...)
	out := make([][]rune, 0, len(b.lines)-(c.Line-a.Line))
	out = append(out, b.lines[:a.Line]...)
	out = append(out, joined)
	out = append(out, b.lines[c.Line+1:]...)
	b.lines = out
	return gone
}

// offset converts p to a rune offset in text().
func (b *buffer) offset(p Pos) int {
	p = b.clamp(p)
	n := 0
	for i := 0; i < p.Line; i++ {
		n += len(b.lines[i]) + 1
	}
	return n + p.Col
}

// pos converts a rune offset in text() back to a position.
func (b *buffer) pos(off int) Pos {
	if off < 0 {
		return Pos{}
	}
	for i, l := range b.lines {
		if off <= len(l) {
			return Pos{Line: i, Col: off}
		}
		off -= len(l) + 1
	}
	return b.clamp(Pos{Line: len(b.lines)})
}

// indent returns the leading blanks of line i.
func (b *buffer) indent(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	l := b.lines[i]
	n := 0
	for n < len(l) && (l[n] == ' ' || l[n] == '\t') {
		n++
	}
	return string(l[:n])
}
