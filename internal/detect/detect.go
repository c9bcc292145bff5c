package detect

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Detect classifies the file at path by its leading bytes. A file matching
// no rule is TagUnknown, not an error; errors are reserved for open/read
// failures and carry the underlying I/O cause.
func Detect(path string) (TypeTag, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, scanSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Classify(buf[:n]), nil
}

// Classify runs the rule chain over data (the leading bytes of a file) and
// returns the first matching tag, or TagUnknown. Exported so the chain can
// be exercised on synthetic buffers without touching the filesystem.
func Classify(data []byte) TypeTag {
	header := data
	if len(header) > headerSize {
		header = data[:headerSize]
	}
	for _, r := range chain {
		if tag, ok := r.match(header, data); ok {
			return tag
		}
	}
	return TagUnknown
}

// Excerpt renders the leading header bytes of path in hex and escaped-text
// form for unknown-type diagnostics. Read errors yield empty strings; the
// caller has already classified the file, so this is best-effort.
func Excerpt(path string) (hexDump, text string) {
	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", ""
	}
	head := buf[:n]
	return hex.EncodeToString(head), fmt.Sprintf("%q", head)
}
