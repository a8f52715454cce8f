package asset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image is a decoded raster image together with its pixel size.
type Image struct {
	Path   string
	Format string
	Width  int
	Height int
	Pixels image.Image
}

// Load reads and decodes the image at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	b := img.Bounds()
	return &Image{
		Path:   path,
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: img,
	}, nil
}
