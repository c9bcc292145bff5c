// Package naming provides filename extension stripping and on-disk
// collision resolution for target paths.
package naming

import (
	"path/filepath"
	"strings"
)

// StripExtensions repeatedly removes the trailing extension until none
// remains, so chained extensions like "clip.mp4.tmp" reduce to "clip".
// A bare dotfile (".bashrc") has no extension to strip and is returned
// unchanged.
func StripExtensions(name string) string {
	for {
		ext := filepath.Ext(name)
		if ext == "" || ext == name {
			return name
		}
		name = strings.TrimSuffix(name, ext)
	}
}
