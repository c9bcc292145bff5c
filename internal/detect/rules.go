package detect

import "bytes"

const (
	// headerSize is the leading window used by prefix rules.
	headerSize = 32
	// scanSize is the larger window used by rules that search for embedded
	// markers (QuickTime atoms, the APNG acTL chunk).
	scanSize = 1024
)

// rule pairs a name with a pure match function. header is the leading 32
// bytes (possibly shorter for tiny files); scan is the leading 1024 bytes.
// A rule returns the resolved tag and whether it matched.
type rule struct {
	name  string
	match func(header, scan []byte) (TypeTag, bool)
}

// chain is the detection priority order. First match wins.
var chain = []rule{
	{"gif", matchGIF},
	{"html", matchHTML},
	{"text_error", matchTextError},
	{"text_file", matchTextFile},
	{"mp4", matchMP4},
	{"webm", matchWebM},
	{"avi", matchAVI},
	{"mov", matchMOV},
	{"png", matchPNG},
	{"jpeg", matchJPEG},
	{"webp", matchWebP},
}

func matchGIF(header, _ []byte) (TypeTag, bool) {
	if bytes.HasPrefix(header, []byte("GIF87a")) || bytes.HasPrefix(header, []byte("GIF89a")) {
		return TagGIF, true
	}
	return "", false
}

func matchHTML(header, _ []byte) (TypeTag, bool) {
	if bytes.HasPrefix(header, []byte("<!DOCTYPE")) || bytes.HasPrefix(header, []byte("<html")) {
		return TagHTML, true
	}
	return "", false
}

// matchTextError recognizes the literal placeholder text a failed downloader
// writes in place of real media.
func matchTextError(header, _ []byte) (TypeTag, bool) {
	if bytes.HasPrefix(header, []byte("This content is no longer")) {
		return TagTextError, true
	}
	return "", false
}

func matchTextFile(header, _ []byte) (TypeTag, bool) {
	if bytes.HasPrefix(header, []byte("import ")) ||
		bytes.HasPrefix(header, []byte("#!")) ||
		bytes.HasPrefix(header, []byte("# ")) {
		return TagTextFile, true
	}
	return "", false
}

// matchMP4 checks for the ISO BMFF "ftyp" box at offset 4. Covers MP4, M4V
// and friends. Must run before the QuickTime scan, which would also match.
func matchMP4(header, _ []byte) (TypeTag, bool) {
	if len(header) >= 8 && bytes.Equal(header[4:8], []byte("ftyp")) {
		return TagMP4, true
	}
	return "", false
}

func matchWebM(header, _ []byte) (TypeTag, bool) {
	if bytes.HasPrefix(header, []byte{0x1a, 0x45, 0xdf, 0xa3}) {
		return TagWebM, true
	}
	return "", false
}

func matchAVI(header, _ []byte) (TypeTag, bool) {
	if isRIFF(header, "AVI ") {
		return TagAVI, true
	}
	return "", false
}

// matchMOV scans the larger window for QuickTime atoms. Legacy MOV files
// can start with any atom, so a prefix check is not enough.
func matchMOV(_, scan []byte) (TypeTag, bool) {
	if bytes.Contains(scan, []byte("moov")) || bytes.Contains(scan, []byte("mdat")) ||
		(bytes.Contains(scan, []byte("ftyp")) && bytes.Contains(scan, []byte("qt"))) {
		return TagMOV, true
	}
	return "", false
}

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

// matchPNG resolves the PNG/APNG ambiguity: the acTL animation-control
// chunk inside the scan window upgrades a plain PNG to APNG.
func matchPNG(header, scan []byte) (TypeTag, bool) {
	if !bytes.HasPrefix(header, pngSignature) {
		return "", false
	}
	if bytes.Contains(scan, []byte("acTL")) {
		return TagAPNG, true
	}
	return TagPNG, true
}

func matchJPEG(header, _ []byte) (TypeTag, bool) {
	if bytes.HasPrefix(header, []byte{0xff, 0xd8, 0xff}) {
		return TagJPEG, true
	}
	return "", false
}

func matchWebP(header, _ []byte) (TypeTag, bool) {
	if isRIFF(header, "WEBP") {
		return TagWebP, true
	}
	return "", false
}

// isRIFF reports whether the window is a RIFF container with the given
// four-byte sub-type at offset 8.
func isRIFF(header []byte, subtype string) bool {
	return len(header) >= 12 &&
		bytes.HasPrefix(header, []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte(subtype))
}
