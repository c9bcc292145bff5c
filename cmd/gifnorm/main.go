// Command gifnorm normalizes a directory of downloaded media into GIFs.
// It detects each file's real type from binary signatures, renames files
// that are already GIFs, converts videos and still images with ffmpeg, and
// offers to delete HTML pages and error placeholders saved under media names.
package main

func main() {
	Execute()
}
