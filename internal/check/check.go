// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for the external ffmpeg tool.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when the conversion tool is missing
// or unusable. A missing tool is distinguished from a failing one so the
// operator knows whether to install or to debug.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrGIFEncodeFailed = errors.New("ffmpeg present but GIF test encode failed")
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints ffmpeg availability,
// its version line, and whether a minimal GIF encode works. Informational
// only; it does not stop on failure. Returns false if anything failed.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkFfmpeg(log)
	if ok {
		ok = checkGIFEncode(log)
	}
	return ok
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) bool {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		log.Info("Install: https://ffmpeg.org/download.html")
		return false
	}
	cmd := exec.Command("ffmpeg", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
	return true
}

// checkGIFEncode runs a minimal synthetic encode through the GIF recipe.
func checkGIFEncode(log Logger) bool {
	log.Info("Testing GIF encode...")
	if runSilent("ffmpeg", gifTestArgs()...) {
		log.Success("GIF encode works (fps + lanczos scale)")
		return true
	}
	log.Error("GIF test encode failed")
	return false
}

// CheckDeps is the pre-pipeline validation: ffmpeg must be on PATH and a
// quick synthetic GIF encode must succeed. Returns a sentinel error on
// failure so callers can tell "not installed" from "broken".
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if !runSilent("ffmpeg", gifTestArgs()...) {
		return ErrGIFEncodeFailed
	}
	return nil
}

// gifTestArgs returns the ffmpeg arguments for a minimal GIF test encode.
// Shared by checkGIFEncode and CheckDeps to avoid duplicating the list.
func gifTestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=64x64:d=0.1",
		"-vf", "fps=15,scale=32:-1:flags=lanczos",
		"-f", "gif", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
