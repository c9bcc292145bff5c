package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gifnorm/internal/config"
)

func TestBuildArgs_Defaults(t *testing.T) {
	cfg := config.DefaultConfig()
	args := BuildArgs(&cfg, "in.mp4", "out.gif")

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-i in.mp4")
	assert.Contains(t, joined, "-vf fps=15,scale=480:-1:flags=lanczos")
	assert.Contains(t, joined, "-loop 0")
	assert.Contains(t, joined, "-y out.gif")
	assert.Contains(t, joined, "-loglevel error")
	assert.NotContains(t, joined, "-stats")
}

func TestBuildArgs_Verbose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Verbose = true
	joined := strings.Join(BuildArgs(&cfg, "a", "b"), " ")
	assert.Contains(t, joined, "-loglevel info")
	assert.Contains(t, joined, "-stats")
}

func TestBuildArgs_CustomRecipe(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FPS = 10
	cfg.Width = 320
	joined := strings.Join(BuildArgs(&cfg, "a", "b"), " ")
	assert.Contains(t, joined, "fps=10,scale=320:-1:flags=lanczos")
}

func TestSamePath(t *testing.T) {
	assert.True(t, samePath("/tmp/a.gif", "/tmp/a.gif"))
	assert.True(t, samePath("/tmp/./a.gif", "/tmp/a.gif"))
	assert.False(t, samePath("/tmp/a.gif", "/tmp/b.gif"))
}

// stubConverter returns a GIFConverter whose binary is a shell script, so
// the executor and temp-file handling run without a real ffmpeg.
func stubConverter(t *testing.T, script string) *GIFConverter {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "fake-ffmpeg")
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	cfg := config.DefaultConfig()
	return &GIFConverter{cfg: &cfg, bin: bin}
}

// writeLastArg is a stub that writes a GIF header to its final argument,
// mimicking a successful conversion.
const writeLastArg = `#!/bin/sh
for last in "$@"; do :; done
printf 'GIF89a' > "$last"
`

func TestConvert_DistinctPaths(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "clip.mp4")
	dst := filepath.Join(dir, "clip.gif")
	require.NoError(t, os.WriteFile(src, []byte("video-bytes"), 0o644))

	conv := stubConverter(t, writeLastArg)
	require.NoError(t, conv.Convert(context.Background(), src, dst))

	out, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(out))
}

func TestConvert_SamePathSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "video.mp4")
	require.NoError(t, os.WriteFile(path, []byte("video-bytes"), 0o644))

	conv := stubConverter(t, writeLastArg)
	require.NoError(t, conv.Convert(context.Background(), path, path))

	// Original replaced atomically, temp sibling gone.
	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(out))
	_, err = os.Stat(tempSibling(path))
	assert.True(t, os.IsNotExist(err))
}

func TestConvert_SamePathFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "video.mp4")
	require.NoError(t, os.WriteFile(path, []byte("video-bytes"), 0o644))

	conv := stubConverter(t, "#!/bin/sh\nexit 1\n")
	err := conv.Convert(context.Background(), path, path)
	require.Error(t, err)

	var cerr *ConversionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, path, cerr.Path)

	// The input must not be truncated by a failed run.
	out, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, "video-bytes", string(out))
}

func TestConvert_MissingTool(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	cfg := config.DefaultConfig()
	conv := &GIFConverter{cfg: &cfg, bin: filepath.Join(dir, "no-such-tool")}
	err := conv.Convert(context.Background(), src, filepath.Join(dir, "clip.gif"))

	var cerr *ConversionError
	require.True(t, errors.As(err, &cerr))
	assert.Error(t, cerr.Unwrap())
}

func TestConvert_CapturesStderr(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	conv := stubConverter(t, "#!/bin/sh\necho 'Invalid data found' >&2\nexit 1\n")
	err := conv.Convert(context.Background(), src, filepath.Join(dir, "clip.gif"))

	var cerr *ConversionError
	require.True(t, errors.As(err, &cerr))
	assert.Contains(t, cerr.Stderr, "Invalid data found")
}
