// Package clip provides the clipboards the editor can talk to.
package clip

import (
	"github.com/atotto/clipboard"
)

// System is the OS clipboard.
type System struct{}

func (System) ReadText() (string, error) { return clipboard.ReadAll() }

func (System) WriteText(s string) error { return clipboard.WriteAll(s) }

// Available reports whether a system clipboard utility was found.
func Available() bool { return !clipboard.Unsupported }

// Memory is a process-local clipboard, used when the system one is missing
// and in tests.
type Memory struct {
	text string
}

func (m *Memory) ReadText() (string, error) { return m.text, nil }

func (m *Memory) WriteText(s string) error {
	m.text = s
	return nil
}
