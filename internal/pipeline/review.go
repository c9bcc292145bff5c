package pipeline

import (
	"os"

	"gifnorm/internal/config"
	"gifnorm/internal/detect"
	"gifnorm/internal/logging"
)

// Prompter supplies the operator's yes/no decision for each reviewable
// bucket. Injectable so interactive and flag-driven (non-interactive) runs
// share one review code path.
type Prompter interface {
	ConfirmDelete(category detect.TypeTag, count int) bool
}

// review runs the end-of-run phase over the four buckets. Only the html and
// text_error buckets are deletable, and only after confirmation; text_file
// and unknown are reported and always left untouched.
func review(cfg *config.Config, log *logging.Logger, prompter Prompter, buckets *Buckets, stats *RunStats) {
	reviewDeletable(cfg, log, prompter, detect.TagHTML,
		"HTML files disguised as media", buckets.HTML, stats)
	reviewDeletable(cfg, log, prompter, detect.TagTextError,
		`failed download placeholders ("This content is no longer available")`, buckets.TextError, stats)

	reportOnly(log, "text/script files (not media, skipped)", buckets.TextFile)
	reportOnly(log, "files with unknown format (see header dumps above)", buckets.Unknown)
}

// reviewDeletable lists a bucket, asks once whether to delete all of its
// members, and tallies per-file success and failure on an affirmative.
func reviewDeletable(
	cfg *config.Config,
	log *logging.Logger,
	prompter Prompter,
	category detect.TypeTag,
	label string,
	entries []FileEntry,
	stats *RunStats,
) {
	if len(entries) == 0 {
		return
	}

	log.Review("Found %d %s:", len(entries), label)
	for _, e := range entries {
		log.Review("  - %s", e.Name)
	}

	if cfg.DryRun {
		log.Info("[DRY] Leaving %d files in place", len(entries))
		return
	}

	if !prompter.ConfirmDelete(category, len(entries)) {
		log.Info("Files kept.")
		return
	}

	deleted := 0
	for _, e := range entries {
		if err := os.Remove(e.Path); err != nil {
			log.Error("Failed to delete %s: %v", e.Name, err)
			continue
		}
		log.Success("Deleted: %s", e.Name)
		deleted++
	}
	stats.Deleted += deleted
	log.Info("Deleted %d/%d files", deleted, len(entries))
}

// reportOnly lists a bucket that is never auto-deleted.
func reportOnly(log *logging.Logger, label string, entries []FileEntry) {
	if len(entries) == 0 {
		return
	}
	log.Review("Found %d %s:", len(entries), label)
	for _, e := range entries {
		log.Review("  - %s", e.Name)
	}
}
