package detect

// TypeTag names a detected content type. The zero value is not a valid tag;
// [Classify] always returns one of the constants below.
type TypeTag string

const (
	TagGIF       TypeTag = "gif"
	TagHTML      TypeTag = "html"       // Download page saved with a media extension.
	TagTextError TypeTag = "text_error" // Placeholder text left by a failed downloader.
	TagTextFile  TypeTag = "text_file"  // Script or other text source.
	TagMP4       TypeTag = "mp4"
	TagWebM      TypeTag = "webm"
	TagAVI       TypeTag = "avi"
	TagMOV       TypeTag = "mov"
	TagPNG       TypeTag = "png"
	TagJPEG      TypeTag = "jpeg"
	TagWebP      TypeTag = "webp"
	TagAPNG      TypeTag = "apng"
	TagUnknown   TypeTag = "unknown"
)

// Convertible reports whether the tag names a video or image format that
// ffmpeg can transcode to GIF.
func (t TypeTag) Convertible() bool {
	switch t {
	case TagMP4, TagWebM, TagAVI, TagMOV, TagPNG, TagJPEG, TagWebP, TagAPNG:
		return true
	}
	return false
}
