package imgio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"floatimg/fimage"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type loadOptions struct {
	autoOrient bool
}

type LoadOption func(*loadOptions)

// WithAutoOrient applies the EXIF orientation tag while decoding.
func WithAutoOrient() LoadOption {
	return func(o *loadOptions) { o.autoOrient = true }
}

// Load decodes an image file into float samples on the 0..255 scale.
func Load(filename string, opts ...LoadOption) (*fimage.Image, error) {
	var o loadOptions
	for _, apply := range opts {
		apply(&o)
	}

	if o.autoOrient {
		img, err := imaging.Open(filename, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("could not decode image %q: %w", filename, err)
		}
		return fimage.FromImage(img), nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", filename, err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", filename, err)
	}
	return img, nil
}

// Decode reads an image in any registered format and returns its samples
// together with the format name.
func Decode(r io.Reader) (*fimage.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return fimage.FromImage(img), format, nil
}

// DecodeConfig reads only the header of an image.
func DecodeConfig(filename string) (image.Config, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("could not open image %q: %w", filename, err)
	}
	defer f.Close()

	conf, format, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("could not read image %q: %w", filename, err)
	}
	return conf, format, nil
}
