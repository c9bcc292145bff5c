package ffmpeg

import (
	"fmt"

	"gifnorm/internal/config"
)

// BuildArgs constructs the ffmpeg argument slice (without the binary name)
// for converting input to a looping GIF at output.
func BuildArgs(cfg *config.Config, input, output string) []string {
	args := make([]string, 0, 16)
	args = append(args, "-hide_banner", "-nostdin")

	// Loglevel: info with live stats when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	args = append(args, "-i", input)

	// Fixed filter chain: constant frame rate, fixed-width scale with
	// aspect preserved (-1 height), lanczos resampling.
	filter := fmt.Sprintf("fps=%d,scale=%d:-1:flags=%s", cfg.FPS, cfg.Width, cfg.ScaleFlags)
	args = append(args, "-vf", filter)

	// Infinite loop, overwrite output.
	args = append(args, "-loop", "0", "-y", output)
	return args
}
