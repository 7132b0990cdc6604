package imgio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"floatimg/fimage"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality matches the JPEG quality image libraries commonly default to.
const DefaultQuality = 75

type saveOptions struct {
	format  Format
	quality int
}

type SaveOption func(*saveOptions)

func WithFormat(f Format) SaveOption {
	return func(o *saveOptions) { o.format = f }
}

// WithQuality sets the JPEG quality, 1..100.
func WithQuality(q int) SaveOption {
	return func(o *saveOptions) { o.quality = q }
}

// Save clips the samples to [0, 255], truncates them to bytes and writes
// the file. JPEG is used unless another format is requested. The file is
// written next to its destination and renamed into place once complete.
func Save(img *fimage.Image, filename string, opts ...SaveOption) (err error) {
	o := saveOptions{format: JPEG, quality: DefaultQuality}
	for _, apply := range opts {
		apply(&o)
	}

	destDir, destName := filepath.Split(filepath.Clean(filename))
	if destDir == "" {
		destDir = "."
	}

	outFile, err := os.CreateTemp(destDir, destName+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filename); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if err = Encode(outFile, img, o.format, o.quality); err != nil {
		return fmt.Errorf("could not save %q: %w", destName, err)
	}

	canRename = true
	return nil
}

// Encode writes the 8-bit rendition of img in the given format.
func Encode(w io.Writer, img *fimage.Image, format Format, quality int) error {
	return EncodeImage(w, img.ToBytes(), format, quality)
}

// EncodeImage writes an already quantized image in the given format.
func EncodeImage(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case GIF:
		if err := gif.Encode(w, img, nil); err != nil {
			return fmt.Errorf("could not encode GIF: %w", err)
		}
	case JPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultQuality
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("could not encode JPEG: %w", err)
		}
	case PNG:
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode PNG: %w", err)
		}
	case BMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode BMP: %w", err)
		}
	case TIFF:
		if err := tiff.Encode(w, img, nil); err != nil {
			return fmt.Errorf("could not encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}

// EncodePNG writes an already quantized image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return EncodeImage(w, img, PNG, 0)
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
