package pipeline

import "gifnorm/internal/detect"

// Disposition is the final outcome recorded for a listed file. Every file
// the runner sees ends with exactly one disposition.
type Disposition string

const (
	DispositionRenamed   Disposition = "renamed"
	DispositionConverted Disposition = "converted"
	DispositionSkipped   Disposition = "skipped"
	DispositionFailed    Disposition = "failed"
	DispositionReview    Disposition = "pending-review"
)

// FileEntry describes one directory entry as it moves through the run:
// created at listing time, typed once by detection, and given a final
// disposition by the rename/convert/bucket step. Nothing is persisted.
type FileEntry struct {
	Path        string
	Name        string
	Type        detect.TypeTag
	Disposition Disposition
}

// Buckets groups non-convertible files by category for the end-of-run
// review phase. HTML and TextError are deletable after confirmation;
// TextFile and Unknown are reported only.
type Buckets struct {
	HTML      []FileEntry
	TextError []FileEntry
	TextFile  []FileEntry
	Unknown   []FileEntry
}

// add routes a bucketed entry by its tag and reports whether the tag names
// a review bucket at all.
func (b *Buckets) add(e FileEntry) bool {
	switch e.Type {
	case detect.TagHTML:
		b.HTML = append(b.HTML, e)
	case detect.TagTextError:
		b.TextError = append(b.TextError, e)
	case detect.TagTextFile:
		b.TextFile = append(b.TextFile, e)
	case detect.TagUnknown:
		b.Unknown = append(b.Unknown, e)
	default:
		return false
	}
	return true
}
