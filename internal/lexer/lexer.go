// Package lexer maps file names to highlighting profiles.
//
// The mapping is a fixed, case-sensitive extension table. A profile decides
// whether the editor highlights, auto-indents and matches braces; the actual
// tokenizing is done by chroma.
package lexer

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Profile is one of the fixed highlighting profiles.
type Profile int

const (
	None Profile = iota
	CFamily
	Java
	Python
	JavaScript
	Verilog
	SQL
)

func (p Profile) String() string {
	switch p {
	case CFamily:
		return "C/C++"
	case Java:
		return "Java"
	case Python:
		return "Python"
	case JavaScript:
		return "JavaScript/TypeScript"
	case Verilog:
		return "Verilog/VHDL"
	case SQL:
		return "SQL"
	default:
		return "Plain Text"
	}
}

// BraceMatch selects how the editor pairs brackets.
type BraceMatch int

const (
	NoBraceMatch BraceMatch = iota
	// SloppyBraceMatch pairs the brace under the cursor or the one right before it.
	SloppyBraceMatch
)

// Settings is what a profile turns on in the editor.
type Settings struct {
	Profile      Profile
	Highlight    bool
	AutoIndent   bool
	BraceMatch   BraceMatch
	MuteComments bool
}

type entry struct {
	profile Profile
	exts    []string
	chroma  []string // candidate chroma lexer names, first match wins
}

var table = []entry{
	{CFamily, []string{"c", "cpp", "cc", "h", "hpp", "hh"}, []string{"cpp"}},
	{Java, []string{"java"}, []string{"java"}},
	{Python, []string{"py"}, []string{"python"}},
	{JavaScript, []string{"js", "ts"}, []string{"javascript"}},
	{Verilog, []string{"v", "vhdl"}, []string{"verilog", "systemverilog", "vhdl"}},
	{SQL, []string{"sql"}, []string{"sql"}},
}

var byExt = func() map[string]Profile {
	m := map[string]Profile{}
	for _, e := range table {
		for _, x := range e.exts {
			m[x] = e.profile
		}
	}
	return m
}()

// Extension returns the suffix after the last dot of the base name, without
// the dot. "archive.tar.gz" yields "gz"; "Makefile" yields "".
func Extension(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i+1:]
}

// ForExtension looks ext up in the table. The lookup is case-sensitive.
func ForExtension(ext string) Profile {
	return byExt[ext]
}

// ForPath is ForExtension(Extension(path)).
func ForPath(path string) Profile {
	return ForExtension(Extension(path))
}

// SettingsFor returns the editor behaviour for p.
func SettingsFor(p Profile) Settings {
	if p == None {
		return Settings{Profile: None, BraceMatch: NoBraceMatch}
	}
	return Settings{
		Profile:      p,
		Highlight:    true,
		AutoIndent:   true,
		BraceMatch:   SloppyBraceMatch,
		MuteComments: true,
	}
}

// Chroma resolves the chroma lexer for p, or nil for None. A profile whose
// lexers are all missing from the chroma registry falls back to plain text.
func Chroma(p Profile) chroma.Lexer {
	for _, e := range table {
		if e.profile != p {
			continue
		}
		for _, name := range e.chroma {
			if l := lexers.Get(name); l != nil {
				return chroma.Coalesce(l)
			}
		}
		return lexers.Fallback
	}
	return nil
}

// Info describes one profile for listings.
type Info struct {
	Profile    Profile
	Extensions []string
}

// Profiles lists the matched profiles in table order.
func Profiles() []Info {
	out := make([]Info, 0, len(table))
	for _, e := range table {
		out = append(out, Info{Profile: e.profile, Extensions: append([]string(nil), e.exts...)})
	}
	return out
}
