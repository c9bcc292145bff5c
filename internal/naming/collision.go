package naming

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveTarget picks the final output path for base+ext inside dir. It
// starts from "base.ext" and appends "_N" (N from 1, incrementing) while an
// entry already exists on disk at the candidate and that entry is not the
// source file itself. Renaming or converting a file onto itself is allowed;
// the caller treats an identical target as a no-op.
//
// Because the batch runs sequentially and writes outputs as it goes, the
// on-disk state at call time is authoritative; no in-run claim map is needed.
func ResolveTarget(dir, base, ext, source string) string {
	candidate := filepath.Join(dir, base+ext)
	for n := 1; ; n++ {
		if !exists(candidate) || sameEntry(candidate, source) {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, n, ext))
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// sameEntry reports whether two paths refer to the same filesystem entry,
// by cleaned-path equality first and stat identity as the fallback.
func sameEntry(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
