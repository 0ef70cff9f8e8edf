package dialog

import (
    "os"
    "path/filepath"
    "sort"
    "strings"
    "unicode/utf8"
)

// ExpandPath resolves ~/ and environment variables and makes p absolute.
func ExpandPath(p string) string {
    p = strings.TrimSpace(p)
    if p == "" {
        return ""
    }
    if p == "~" || strings.HasPrefix(p, "~/") {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, strings.TrimPrefix(p[1:], "/"))
        }
    }
    p = os.ExpandEnv(p)
    if !filepath.IsAbs(p) {
        if abs, err := filepath.Abs(p); err == nil {
            p = abs
        }
    }
    return p
}

// Completions lists directory entries starting with the last element of in,
// keeping the user's spelling of the directory part. Directories end with a
// separator so another Tab descends into them.
func Completions(in string, limit int) []string {
    if strings.TrimSpace(in) == "" {
        return nil
    }
    dirPart, base := in, ""
    if !strings.HasSuffix(in, string(filepath.Separator)) {
        dirPart, base = filepath.Split(in)
    }
    dir := ExpandPath(dirPart)
    if dirPart == "" {
        dir = ExpandPath(".")
    }
    entries, err := os.ReadDir(dir)
    if err != nil {
        return nil
    }
    var out []string
    for _, e := range entries {
        name := e.Name()
        if !strings.HasPrefix(name, base) {
            continue
        }
        if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
            continue
        }
        cand := dirPart + name
        if e.IsDir() {
            cand += string(filepath.Separator)
        }
        out = append(out, cand)
    }
    sort.Strings(out)
    if limit > 0 && len(out) > limit {
        out = out[:limit]
    }
    return out
}

// commonPrefix is the longest prefix shared by all of xs.
func commonPrefix(xs []string) string {
    if len(xs) == 0 {
        return ""
    }
    p := xs[0]
    for _, x := range xs[1:] {
        for !strings.HasPrefix(x, p) {
            p = p[:len(p)-1]
        }
    }
    for !utf8.ValidString(p) {
        p = p[:len(p)-1]
    }
    return p
}
