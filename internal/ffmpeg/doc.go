// Package ffmpeg builds and executes the external GIF conversion command.
//
// The conversion recipe is fixed: sample frames at the configured rate,
// scale to the configured width preserving aspect ratio with lanczos
// resampling, and write a looping GIF. The exit status is the only output
// consulted; stderr is captured solely so failures can name their cause.
//
// When source and target are the same filesystem location, the output is
// written to a temporary sibling first and atomically renamed over the
// original only after the process reports success, so a failed run never
// truncates its own input. Split into builder.go (argument construction)
// and executor.go (Converter, process handling, temp-file safety).
package ffmpeg
