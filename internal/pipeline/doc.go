// Package pipeline orchestrates the batch normalization run: directory
// listing, per-file detection, classification, rename or convert, stats
// accumulation, the tallied summary, and the end-of-run review of
// non-media buckets.
//
// Per-file errors are isolated: each becomes a stats increment and a log
// line, and processing always continues to the next file. Only an
// unreadable target directory aborts the run, before any file is touched.
//
// Split into runner.go (Run and per-file processing), buckets.go
// (FileEntry, Disposition, Buckets), review.go (Prompter and the review
// phase), and stats.go.
package pipeline
