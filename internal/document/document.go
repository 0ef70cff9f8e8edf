// Package document tracks the file behind the editor buffer: its path, the
// modified flag, the derived display name and window title, and the
// load/save/maybe-save lifecycle.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"textino/internal/lexer"
)

const (
	AppName     = "Textino"
	Placeholder = "Untitled.txt"
)

// Buffer is the text owned by the editor widget.
type Buffer interface {
	Text() string
	SetText(s string)
}

// Reporter shows a recoverable error to the user (a modal message dialog).
type Reporter interface {
	Warn(title, message string)
}

// Answer is the response to the save-changes question.
type Answer int

const (
	Yes Answer = iota
	No
	Cancel
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "cancel"
	}
}

// Prompter asks the user a Yes/No/Cancel question.
type Prompter interface {
	Ask(title, question string) Answer
}

// Fixed is a Prompter that always gives the same answer. The UI collects the
// answer from its confirm dialog first and replays it through Fixed.
type Fixed Answer

func (f Fixed) Ask(string, string) Answer { return Answer(f) }

// Document is the single open document.
type Document struct {
	buf    Buffer
	report Reporter
	log    func(format string, args ...any)

	path     string
	modified bool
	profile  lexer.Profile
	title    string
	pristine string

	onProfile func(lexer.Profile)
}

// New returns an untitled, unmodified document. logf may be nil.
func New(buf Buffer, report Reporter, logf func(string, ...any)) *Document {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	d := &Document{buf: buf, report: report, log: logf}
	d.SetCurrentFile("")
	return d
}

// OnProfileChange registers fn to run whenever SetCurrentFile picks a profile.
// fn is called once immediately with the current profile.
func (d *Document) OnProfileChange(fn func(lexer.Profile)) {
	d.onProfile = fn
	if fn != nil {
		fn(d.profile)
	}
}

func (d *Document) Path() string { return d.path }
func (d *Document) Modified() bool { return d.modified }
func (d *Document) Profile() lexer.Profile { return d.profile }

// Pristine is the buffer text as of the last load or save.
func (d *Document) Pristine() string { return d.pristine }

// SetModified is called by the editor whenever the buffer text changes.
func (d *Document) SetModified(v bool) { d.modified = v }

// DisplayName is the base name of the path, or Placeholder when untitled.
func (d *Document) DisplayName() string {
	if d.path == "" {
		return Placeholder
	}
	return filepath.Base(d.path)
}

// WindowTitle is the title template; "[*]" marks where the modified
// indicator goes.
func (d *Document) WindowTitle() string { return d.title }

// Title renders WindowTitle with the modified indicator resolved.
func (d *Document) Title() string {
	mark := ""
	if d.modified {
		mark = "*"
	}
	return strings.Replace(d.title, "[*]", mark, 1)
}

// SetCurrentFile makes path the current file. path is absolute or empty.
func (d *Document) SetCurrentFile(path string) {
	d.path = path
	d.modified = false
	d.pristine = d.buf.Text()

	prev := d.profile
	d.profile = lexer.ForPath(path)
	if d.profile != prev {
		d.log("lexer: %s -> %s", prev, d.profile)
	}
	if d.onProfile != nil {
		d.onProfile(d.profile)
	}
	d.title = fmt.Sprintf("%s[*] - %s", d.DisplayName(), AppName)
}

// LoadFile replaces the buffer with the contents of path. On failure the
// error is reported and the document is left untouched.
func (d *Document) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		d.log("load %s: %v", path, err)
		d.report.Warn(AppName, fmt.Sprintf("Cannot read file %s:\n%s.", path, reason(err)))
		return fmt.Errorf("read %s: %w", path, err)
	}
	d.buf.SetText(string(data))
	d.SetCurrentFile(path)
	d.log("loaded %s (%d bytes)", path, len(data))
	return nil
}

// SaveFile writes the whole buffer to path. On failure the error is reported
// and nothing in memory changes.
func (d *Document) SaveFile(path string) error {
	text := d.buf.Text()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		d.log("save %s: %v", path, err)
		d.report.Warn(AppName, fmt.Sprintf("Cannot write file %s:\n%s.", path, reason(err)))
		return fmt.Errorf("write %s: %w", path, err)
	}
	d.SetCurrentFile(path)
	d.log("saved %s (%d bytes)", path, len(text))
	return nil
}

// MaybeSave asks whether to save a modified document. Yes returns the result
// of save, No discards, Cancel aborts the pending operation. An unmodified
// document returns true without asking.
func (d *Document) MaybeSave(p Prompter, save func() bool) bool {
	if !d.modified {
		return true
	}
	switch p.Ask(AppName, "The document has been modified.\nDo you want to save your changes?") {
	case Yes:
		return save()
	case No:
		return true
	default:
		return false
	}
}

// reason drops the operation and path an *fs.PathError carries, since the
// dialog already names the path.
func reason(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
