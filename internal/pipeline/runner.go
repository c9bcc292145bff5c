package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gifnorm/internal/config"
	"gifnorm/internal/detect"
	"gifnorm/internal/display"
	"gifnorm/internal/ffmpeg"
	"gifnorm/internal/logging"
	"gifnorm/internal/naming"
)

// Run is the top-level batch entry point: list the directory, process each
// regular file sequentially, print the tallied summary, then run the review
// phase over the non-media buckets. The only returned error is an
// unreadable target directory, reported before any file is touched.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, conv ffmpeg.Converter, prompter Prompter) (RunStats, error) {
	var stats RunStats

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return stats, fmt.Errorf("list %s: %w", cfg.InputDir, err)
	}

	// Directories are ignored; os.ReadDir already sorts by name.
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
	}

	stats.Total = len(files)
	if stats.Total == 0 {
		log.Warn("No files found in %s", cfg.InputDir)
		return stats, nil
	}

	log.Info("Found %d files to process", stats.Total)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
	log.Info("")

	buckets := &Buckets{}
	for i, name := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		entry := processFile(ctx, cfg, log, conv, name, &stats, buckets)
		log.Debug("%s: type=%s disposition=%s", entry.Name, entry.Type, entry.Disposition)
	}

	logSummary(cfg, log, &stats)
	review(cfg, log, prompter, buckets, &stats)
	return stats, nil
}

// processFile handles one directory entry: detect, classify, then rename
// or convert. It never returns an error; failures become stats and log
// lines so the batch always proceeds.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	conv ffmpeg.Converter,
	name string,
	stats *RunStats,
	buckets *Buckets,
) FileEntry {
	path := filepath.Join(cfg.InputDir, name)
	entry := FileEntry{Path: path, Name: name}
	log.Info("[%d/%d] %s", stats.Current, stats.Total, name)

	// --- Detect ---
	tag, err := detect.Detect(path)
	if err != nil {
		// An unreadable file is treated identically to "skipped".
		log.Error("Cannot read %s: %v", name, err)
		stats.Skipped++
		entry.Type = detect.TagUnknown
		entry.Disposition = DispositionSkipped
		return entry
	}
	entry.Type = tag

	// --- Classify: non-media categories go to review buckets, untouched ---
	if buckets.add(entry) {
		if tag == detect.TagUnknown {
			hexDump, text := detect.Excerpt(path)
			log.Warn("Unknown file type: %s", name)
			log.Warn("  header (hex):  %s", hexDump)
			log.Warn("  header (text): %s", text)
		}
		stats.Skipped++
		entry.Disposition = DispositionReview
		return entry
	}

	// --- Resolve target name ---
	base := naming.StripExtensions(name)
	target := naming.ResolveTarget(cfg.InputDir, base, ".gif", path)

	if tag == detect.TagGIF {
		entry.Disposition = renameGIF(cfg, log, path, target, stats)
		return entry
	}

	entry.Disposition = convertMedia(ctx, cfg, log, conv, entry, target, stats)
	return entry
}

// renameGIF puts an already-GIF file under its normalized name.
func renameGIF(cfg *config.Config, log *logging.Logger, path, target string, stats *RunStats) Disposition {
	name := filepath.Base(path)

	if target == path {
		log.Info("Already correct: %s", name)
		stats.Skipped++
		return DispositionSkipped
	}

	if cfg.DryRun {
		log.Success("[DRY] Would rename GIF: %s -> %s", name, filepath.Base(target))
		stats.Renamed++
		return DispositionRenamed
	}

	if err := os.Rename(path, target); err != nil {
		log.Error("Failed to rename %s: %v", name, err)
		stats.Failed++
		return DispositionFailed
	}
	log.Success("Renamed GIF: %s -> %s", name, filepath.Base(target))
	stats.Renamed++
	return DispositionRenamed
}

// convertMedia transcodes a video/image file to a GIF at target and removes
// the original on success (unless they are the same file).
func convertMedia(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	conv ffmpeg.Converter,
	entry FileEntry,
	target string,
	stats *RunStats,
) Disposition {
	label := strings.ToUpper(string(entry.Type))

	if cfg.DryRun {
		log.Success("[DRY] Would convert %s: %s -> %s", label, entry.Name, filepath.Base(target))
		stats.Converted++
		return DispositionConverted
	}

	var inSize int64
	if fi, err := os.Stat(entry.Path); err == nil {
		inSize = fi.Size()
	}

	log.Info("Converting: %s -> %s", entry.Name, filepath.Base(target))
	start := time.Now()

	if err := conv.Convert(ctx, entry.Path, target); err != nil {
		log.Error("Failed to convert %s: %v", entry.Name, err)
		logConversionStderr(log, err)
		stats.Failed++
		return DispositionFailed
	}

	// Delete the original source; best-effort, a failure here does not
	// downgrade the converted outcome.
	if target != entry.Path {
		if err := os.Remove(entry.Path); err != nil {
			log.Warn("Couldn't delete original %s: %v", entry.Name, err)
		}
	}

	var outSize int64
	if fi, err := os.Stat(target); err == nil {
		outSize = fi.Size()
	}
	stats.TotalInputBytes += inSize
	stats.TotalOutputBytes += outSize
	stats.Converted++

	log.Success("Converted %s: %s -> %s in %ds", label, entry.Name,
		filepath.Base(target), int(time.Since(start).Seconds()))
	return DispositionConverted
}

// logConversionStderr surfaces the tail of ffmpeg's captured stderr when a
// conversion fails, so the operator sees the cause without rerunning.
func logConversionStderr(log *logging.Logger, err error) {
	var cerr *ffmpeg.ConversionError
	if !errors.As(err, &cerr) || cerr.Stderr == "" {
		return
	}
	lines := strings.Split(strings.TrimSpace(cerr.Stderr), "\n")
	start := 0
	if len(lines) > 10 {
		start = len(lines) - 10
	}
	log.Error("Last ffmpeg output:")
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("")
	log.Info("==================================================")
	log.Info("SUMMARY:")
	log.Info("  Converted: %d", stats.Converted)
	log.Info("  Renamed:   %d", stats.Renamed)
	log.Info("  Skipped:   %d", stats.Skipped)
	log.Info("  Failed:    %d", stats.Failed)
	log.Info("==================================================")

	if cfg.DryRun || stats.Converted == 0 {
		return
	}
	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Success("Space reclaimed by conversion: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("Converted output is larger than input: %s",
			display.FormatBytesWithSign(-saved))
	}
}
