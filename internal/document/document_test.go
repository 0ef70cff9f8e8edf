package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textino/internal/lexer"
)

type memBuffer struct{ text string }

func (b *memBuffer) Text() string     { return b.text }
func (b *memBuffer) SetText(s string) { b.text = s }

type recorder struct{ warnings []string }

func (r *recorder) Warn(_, msg string) { r.warnings = append(r.warnings, msg) }

type countingPrompter struct {
	answer Answer
	asked  int
}

func (c *countingPrompter) Ask(string, string) Answer {
	c.asked++
	return c.answer
}

func newDoc() (*Document, *memBuffer, *recorder) {
	b := &memBuffer{}
	r := &recorder{}
	return New(b, r, nil), b, r
}

func TestSetCurrentFileEmpty(t *testing.T) {
	d, _, _ := newDoc()
	d.SetModified(true)
	d.SetCurrentFile("")
	if d.Modified() {
		t.Fatalf("expected modified=false")
	}
	if d.DisplayName() != Placeholder {
		t.Fatalf("expected placeholder name, got %q", d.DisplayName())
	}
	if d.WindowTitle() != "Untitled.txt[*] - Textino" {
		t.Fatalf("unexpected title template %q", d.WindowTitle())
	}
	if d.Profile() != lexer.None {
		t.Fatalf("expected no profile for untitled document")
	}
}

func TestTitleReflectsModifiedFlag(t *testing.T) {
	d, _, _ := newDoc()
	d.SetCurrentFile("/tmp/main.cpp")
	if d.Title() != "main.cpp - Textino" {
		t.Fatalf("unexpected clean title %q", d.Title())
	}
	d.SetModified(true)
	if d.Title() != "main.cpp* - Textino" {
		t.Fatalf("unexpected modified title %q", d.Title())
	}
}

func TestSetCurrentFileReassignsProfile(t *testing.T) {
	d, _, _ := newDoc()
	var seen []lexer.Profile
	d.OnProfileChange(func(p lexer.Profile) { seen = append(seen, p) })
	d.SetCurrentFile("/src/app.py")
	d.SetCurrentFile("/src/notes.xyz")
	want := []lexer.Profile{lexer.None, lexer.Python, lexer.None}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "round.txt")
	d, b, r := newDoc()
	content := "line one\n\tline two\r\nünïcödé\n"
	b.SetText(content)
	d.SetModified(true)
	if err := d.SaveFile(p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if d.Modified() || d.Path() != p {
		t.Fatalf("save should set current file and clear modified")
	}
	b.SetText("something else")
	if err := d.LoadFile(p); err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Text() != content {
		t.Fatalf("round trip mismatch: %q", b.Text())
	}
	if len(r.warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", r.warnings)
	}
	if d.Pristine() != content {
		t.Fatalf("pristine should track the loaded text")
	}
}

func TestLoadMissingFileLeavesDocumentUnchanged(t *testing.T) {
	d, b, r := newDoc()
	d.SetCurrentFile("/tmp/keep.py")
	b.SetText("keep me")
	d.SetModified(true)
	title := d.Title()

	missing := filepath.Join(t.TempDir(), "nope.txt")
	if err := d.LoadFile(missing); err == nil {
		t.Fatalf("expected an error")
	}
	if b.Text() != "keep me" || d.Path() != "/tmp/keep.py" || !d.Modified() {
		t.Fatalf("document changed after failed load")
	}
	if d.Title() != title {
		t.Fatalf("title changed: %q -> %q", title, d.Title())
	}
	if len(r.warnings) != 1 || !strings.Contains(r.warnings[0], "Cannot read file "+missing) {
		t.Fatalf("expected a read warning, got %v", r.warnings)
	}
}

func TestSaveFailureReportsAndKeepsState(t *testing.T) {
	d, b, r := newDoc()
	b.SetText("data")
	d.SetModified(true)
	bad := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	if err := d.SaveFile(bad); err == nil {
		t.Fatalf("expected an error")
	}
	if d.Path() != "" || !d.Modified() {
		t.Fatalf("failed save must not touch the document")
	}
	if len(r.warnings) != 1 || !strings.HasPrefix(r.warnings[0], "Cannot write file "+bad) {
		t.Fatalf("expected a write warning, got %v", r.warnings)
	}
	if _, err := os.Stat(bad); err == nil {
		t.Fatalf("file should not exist")
	}
}

func TestMaybeSaveUnmodifiedDoesNotPrompt(t *testing.T) {
	d, _, _ := newDoc()
	p := &countingPrompter{answer: Cancel}
	if !d.MaybeSave(p, func() bool { t.Fatalf("save called"); return false }) {
		t.Fatalf("expected success")
	}
	if p.asked != 0 {
		t.Fatalf("expected no prompt")
	}
}

func TestMaybeSaveAnswers(t *testing.T) {
	d, b, _ := newDoc()
	b.SetText("draft")
	d.SetModified(true)

	if d.MaybeSave(Fixed(Cancel), func() bool { t.Fatalf("save called"); return true }) {
		t.Fatalf("cancel must abort")
	}
	if b.Text() != "draft" || !d.Modified() {
		t.Fatalf("cancel must leave the buffer untouched")
	}

	if !d.MaybeSave(Fixed(No), func() bool { t.Fatalf("save called"); return true }) {
		t.Fatalf("no must discard and continue")
	}

	saved := false
	if !d.MaybeSave(Fixed(Yes), func() bool { saved = true; return true }) || !saved {
		t.Fatalf("yes must save and return its result")
	}
	if d.MaybeSave(Fixed(Yes), func() bool { return false }) {
		t.Fatalf("yes must propagate a failed save")
	}
}
