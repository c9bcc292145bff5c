package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"gifnorm/internal/config"
)

// Converter transcodes a source media file into a GIF at target. Abstracted
// as an interface so the pipeline can take a fake in tests instead of
// invoking a real transcoding binary.
type Converter interface {
	Convert(ctx context.Context, source, target string) error
}

// ConversionError reports a failed external conversion. Err carries the
// launch or exit error (including "executable file not found" when the tool
// is missing entirely); Stderr holds the captured process output.
type ConversionError struct {
	Path   string
	Stderr string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// GIFConverter runs the real ffmpeg binary. The zero value is not usable;
// construct with [NewGIFConverter].
type GIFConverter struct {
	cfg *config.Config
	bin string
}

// NewGIFConverter returns a Converter that shells out to ffmpeg with the
// recipe from cfg.
func NewGIFConverter(cfg *config.Config) *GIFConverter {
	return &GIFConverter{cfg: cfg, bin: "ffmpeg"}
}

// Convert transcodes source into a looping GIF at target. When source and
// target are the same location, the output goes to a temporary sibling and
// replaces the original only after ffmpeg exits 0; on failure the temp file
// is left in place for diagnosis and the original is untouched. No retry.
func (g *GIFConverter) Convert(ctx context.Context, source, target string) error {
	actual := target
	temp := ""
	if samePath(source, target) {
		temp = tempSibling(target)
		actual = temp
	}

	cmd := exec.CommandContext(ctx, g.bin, BuildArgs(g.cfg, source, actual)...)

	var stderrBuf bytes.Buffer
	if g.cfg.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		return &ConversionError{Path: source, Stderr: stderrBuf.String(), Err: err}
	}

	if temp != "" {
		if err := os.Rename(temp, target); err != nil {
			return &ConversionError{Path: source, Err: fmt.Errorf("replace original: %w", err)}
		}
	}
	return nil
}

// tempSibling returns the temporary output path used when converting a file
// onto itself.
func tempSibling(target string) string {
	return target + ".tmp.gif"
}

// samePath reports whether two paths refer to the same filesystem location.
// Falls back to cleaned-path comparison when absolute resolution fails.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
