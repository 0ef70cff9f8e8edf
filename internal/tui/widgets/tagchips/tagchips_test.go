package tagchips

import (
    "strings"
    "testing"

    utiltags "textino/internal/tui/util"
)

func TestViewNoColorFallback(t *testing.T) {
    tags := utiltags.ComputeTags(utiltags.DocStatus{Modified: true, Profile: "SQL", Lines: 7, Selected: 3})
    out := View(tags, true)

    wants := []string{"[Modified]", "[SQL]", "[7 lines]", "[Sel 3]"}
    for _, w := range wants {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in output: %s", w, out)
        }
    }
}

func TestViewEmpty(t *testing.T) {
    if View(nil, true) != "" {
        t.Fatalf("expected empty output for no tags")
    }
}
