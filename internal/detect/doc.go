// Package detect identifies a file's true content type from binary
// signatures, ignoring the filename extension entirely.
//
// Detection is a priority-ordered rule chain evaluated top to bottom over a
// leading byte window; the first matching rule wins. Order matters because
// signatures overlap or nest: RIFF hosts both AVI and WEBP, QuickTime atoms
// can appear inside other containers, and an animated PNG is a PNG with an
// extra chunk. Each rule is a pure function over the byte windows so the
// ambiguity resolution stays auditable and testable in isolation.
//
// Split along these boundaries: types.go (TypeTag and category helpers),
// rules.go (the ordered chain), detect.go (file I/O and Classify).
package detect
