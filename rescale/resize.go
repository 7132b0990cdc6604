package rescale

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"floatimg/fimage"

	"github.com/disintegration/imaging"
	nfnt "github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

var (
	ErrInvalidSize = errors.New("target width and height must be > 0")
	ErrNoTarget    = errors.New("no target size or factor given")
)

// Size is a target in height, width order, the same order Image.Shape uses.
type Size struct {
	Height int
	Width  int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Height, s.Width)
}

type Options struct {
	// Size is the exact target. Ignored when Factor is set.
	Size *Size
	// Factor scales both dimensions, e.g. 0.5 halves the image.
	Factor float64
	Filter Filter
}

// Resize resizes by factor when one is given, by size otherwise.
func Resize(img *fimage.Image, opts Options) (*fimage.Image, error) {
	switch {
	case opts.Factor != 0:
		return ByFactor(img, opts.Factor, opts.Filter)
	case opts.Size != nil:
		return ToSize(img, *opts.Size, opts.Filter)
	}
	return nil, ErrNoTarget
}

// ByFactor scales height and width by factor, truncating to whole pixels.
func ByFactor(img *fimage.Image, factor float64, filter Filter) (*fimage.Image, error) {
	h, w, _ := img.Shape()
	size := Size{
		Height: int(float64(h) * factor),
		Width:  int(float64(w) * factor),
	}
	return ToSize(img, size, filter)
}

// ToSize resizes to exactly size. The samples are clipped to [0, 255] and
// truncated to 8 bits before resampling, and the result is converted back
// to float samples with the same channel count.
func ToSize(img *fimage.Image, size Size, filter Filter) (*fimage.Image, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidSize, size)
	}

	slog.Debug("resizing", "from", img.Rect.Size(), "height", size.Height, "width", size.Width, "filter", filter)

	src := img.ToBytes()
	var dst image.Image
	switch filter {
	case Nearest:
		dst = nfnt.Resize(uint(size.Width), uint(size.Height), src, nfnt.NearestNeighbor)
	case Bilinear:
		dst = nfnt.Resize(uint(size.Width), uint(size.Height), src, nfnt.Bilinear)
	case Bicubic:
		dst = nfnt.Resize(uint(size.Width), uint(size.Height), src, nfnt.Bicubic)
	case Lanczos:
		dst = nfnt.Resize(uint(size.Width), uint(size.Height), src, nfnt.Lanczos3)
	case Box:
		dst = imaging.Resize(src, size.Width, size.Height, imaging.Box)
	case Hamming:
		dst = imaging.Resize(src, size.Width, size.Height, imaging.Hamming)
	case CatmullRom:
		dst = scaleKernel(src, size, img.Channels)
	default:
		return nil, fmt.Errorf("unsupported resize filter: %s", filter)
	}

	return fimage.FromImageChannels(dst, img.Channels), nil
}

func scaleKernel(src image.Image, size Size, channels int) image.Image {
	r := image.Rect(0, 0, size.Width, size.Height)
	var dst draw.Image
	switch channels {
	case 1:
		dst = image.NewGray(r)
	case 3:
		dst = image.NewRGBA(r)
	default:
		dst = image.NewNRGBA(r)
	}
	draw.CatmullRom.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return dst
}
