// Package image loads image files for colour extraction.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/webp" // Register WebP format
)

// Load decodes an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}
