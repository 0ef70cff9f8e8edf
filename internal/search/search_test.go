package search

import "testing"

func TestFindForward(t *testing.T) {
	text := "foo bar foo baz"
	if got := Find(text, "foo", 0, Options{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Find(text, "foo", 1, Options{}); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	if got := Find(text, "foo", 9, Options{}); got != -1 {
		t.Fatalf("expected -1 without wrap, got %d", got)
	}
	if got := Find(text, "foo", 9, Options{Wrap: true}); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
}

func TestFindBackward(t *testing.T) {
	text := "foo bar foo baz"
	if got := Find(text, "foo", 8, Options{Backward: true}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Find(text, "foo", len(text), Options{Backward: true}); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	if got := Find(text, "foo", 0, Options{Backward: true}); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := Find(text, "foo", 0, Options{Backward: true, Wrap: true}); got != 8 {
		t.Fatalf("expected wrap to 8, got %d", got)
	}
}

func TestFindCaseAndWholeWord(t *testing.T) {
	text := "Print printer print"
	if got := Find(text, "print", 0, Options{CaseSensitive: true}); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if got := Find(text, "print", 0, Options{}); got != 0 {
		t.Fatalf("expected case-insensitive 0, got %d", got)
	}
	if got := Find(text, "print", 1, Options{WholeWord: true}); got != 14 {
		t.Fatalf("expected whole word 14, got %d", got)
	}
}

func TestFindRuneOffsets(t *testing.T) {
	text := "ééé x"
	if got := Find(text, "x", 0, Options{}); got != 4 {
		t.Fatalf("expected rune offset 4, got %d", got)
	}
	if got := Find("", "x", 0, Options{Wrap: true}); got != -1 {
		t.Fatalf("expected -1 on empty text")
	}
	if got := Find("abc", "", 0, Options{}); got != -1 {
		t.Fatalf("expected -1 on empty query")
	}
}

func TestReplace(t *testing.T) {
	out, ok := Replace("a cat sat", "cat", "dog", 2, Options{})
	if !ok || out != "a dog sat" {
		t.Fatalf("unexpected %q %v", out, ok)
	}
	out, ok = Replace("a cat sat", "cat", "dog", 3, Options{})
	if ok || out != "a cat sat" {
		t.Fatalf("replace off a match must be a no-op")
	}
}

func TestReplaceAll(t *testing.T) {
	out, n := ReplaceAll("aaa", "aa", "b", Options{})
	if out != "ba" || n != 1 {
		t.Fatalf("expected non-overlapping replace, got %q %d", out, n)
	}
	out, n = ReplaceAll("Go go GO", "go", "x", Options{})
	if out != "x x x" || n != 3 {
		t.Fatalf("got %q %d", out, n)
	}
	out, n = ReplaceAll("go gopher go", "go", "x", Options{WholeWord: true, CaseSensitive: true})
	if out != "x gopher x" || n != 2 {
		t.Fatalf("got %q %d", out, n)
	}
}
