// Package search implements the find and replace operations behind the
// Find and Replace dialogs. Offsets are rune indices into the text.
package search

import (
	"unicode"
)

type Options struct {
	CaseSensitive bool
	WholeWord     bool
	Backward      bool
	Wrap          bool
}

func fold(rs []rune, caseSensitive bool) []rune {
	if caseSensitive {
		return rs
	}
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func matchAt(text, q []rune, i int, wholeWord bool) bool {
	if i < 0 || i+len(q) > len(text) {
		return false
	}
	for j := range q {
		if text[i+j] != q[j] {
			return false
		}
	}
	if !wholeWord {
		return true
	}
	if i > 0 && isWord(text[i-1]) {
		return false
	}
	if end := i + len(q); end < len(text) && isWord(text[end]) {
		return false
	}
	return true
}

func scan(text, q []rune, from, to int, backward, wholeWord bool) int {
	if backward {
		for i := from; i >= to; i-- {
			if matchAt(text, q, i, wholeWord) {
				return i
			}
		}
		return -1
	}
	for i := from; i <= to; i++ {
		if matchAt(text, q, i, wholeWord) {
			return i
		}
	}
	return -1
}

// Find returns the offset of the next match of query starting at from
// (forward) or the last match starting before from (backward), or -1.
func Find(text, query string, from int, o Options) int {
	if query == "" {
		return -1
	}
	t := fold([]rune(text), o.CaseSensitive)
	q := fold([]rune(query), o.CaseSensitive)
	last := len(t) - len(q)
	if last < 0 {
		return -1
	}
	if from < 0 {
		from = 0
	}
	if from > len(t) {
		from = len(t)
	}
	if o.Backward {
		if i := scan(t, q, min(from-1, last), 0, true, o.WholeWord); i >= 0 || !o.Wrap {
			return i
		}
		return scan(t, q, last, from, true, o.WholeWord)
	}
	if i := scan(t, q, from, last, false, o.WholeWord); i >= 0 || !o.Wrap {
		return i
	}
	return scan(t, q, 0, min(from-1, last), false, o.WholeWord)
}

// Replace swaps the match of query at offset at for repl. It reports false
// and returns text unchanged when no match starts at at.
func Replace(text, query, repl string, at int, o Options) (string, bool) {
	if query == "" {
		return text, false
	}
	rs := []rune(text)
	if !matchAt(fold(rs, o.CaseSensitive), fold([]rune(query), o.CaseSensitive), at, o.WholeWord) {
		return text, false
	}
	n := len([]rune(query))
	out := make([]rune, 0, len(rs)-n+len([]rune(repl)))
	out = append(out, rs[:at]...)
	out = append(out, []rune(repl)...)
	out = append(out, rs[at+n:]...)
	return string(out), true
}

// ReplaceAll replaces every non-overlapping match, left to right, and returns
// the new text with the number of replacements.
func ReplaceAll(text, query, repl string, o Options) (string, int) {
	if query == "" {
		return text, 0
	}
	rs := []rune(text)
	t := fold(rs, o.CaseSensitive)
	q := fold([]rune(query), o.CaseSensitive)
	r := []rune(repl)
	out := make([]rune, 0, len(rs))
	count := 0
	for i := 0; i < len(rs); {
		if matchAt(t, q, i, o.WholeWord) {
			out = append(out, r...)
			i += len(q)
			count++
			continue
		}
		out = append(out, rs[i])
		i++
	}
	return string(out), count
}
