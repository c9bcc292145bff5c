// Package imagelist generates the companion JSON listing of image assets:
// a flat array of relative paths for every image file directly under a
// directory, written to a single output file. It shares nothing with the
// normalization pipeline beyond living in the same tool.
package imagelist

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Image file extensions included in the listing (lowercase, leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Generate lists image files directly under imagesDir (no recursion) and
// writes their slash-separated paths ("<imagesDir>/<name>") as an indented
// JSON array to outPath. Returns the number of images written. Listing
// order follows the sorted directory order.
func Generate(imagesDir, outPath string) (int, error) {
	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", imagesDir, err)
	}

	images := make([]string, 0, len(entries))
	prefix := filepath.ToSlash(imagesDir)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			images = append(images, path.Join(prefix, e.Name()))
		}
	}

	data, err := json.MarshalIndent(images, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", outPath, err)
	}
	return len(images), nil
}
