package toolbar

import (
    "strings"
    "testing"
)

func TestHitSkipsSeparatorsAndDisabled(t *testing.T) {
    tb := Toolbar{
        Buttons: []Button{{ID: "new", Label: "New"}, {}, {ID: "undo", Label: "Undo"}},
        Enabled: func(id string) bool { return id != "undo" },
    }
    if id, ok := tb.Hit(1); !ok || id != "new" {
        t.Fatalf("Hit(1) = %q %v", id, ok)
    }
    if _, ok := tb.Hit(5); ok {
        t.Fatalf("separator should not be clickable")
    }
    if _, ok := tb.Hit(7); ok {
        t.Fatalf("disabled button should not be clickable")
    }
    if v := tb.View(20); !strings.HasPrefix(v, " New │ Undo ") {
        t.Fatalf("view = %q", v)
    }
}
