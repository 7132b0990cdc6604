package fimage

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a grid of float32 samples on the 0..255 scale. Values outside
// that range are allowed so that arithmetic such as gradients can be done
// before quantizing for display or storage.
//
// Images derived from another one (Clip, Normalize, Channel, ToBytes and
// the conversions) are anchored at the origin. Clone is an exact copy and
// keeps Rect.
type Image struct {
	// Pix holds the image's samples, interleaved per pixel. The sample c of
	// pixel (x, y) is at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*Channels + c].
	Pix []float32
	// Stride is the Pix stride (in samples) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
	// Channels is the number of samples per pixel: 1 gray, 2 gray and
	// alpha, 3 RGB, 4 non-premultiplied RGBA.
	Channels int
}

var _ image.Image = (*Image)(nil)

// New returns a zeroed image with the given bounds. It panics unless
// channels is between 1 and 4.
func New(r image.Rectangle, channels int) *Image {
	if channels < 1 || channels > 4 {
		panic(fmt.Sprintf("fimage: unsupported channel count %d", channels))
	}
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		panic("fimage: negative image size")
	}
	return &Image{
		Pix:      make([]float32, w*h*channels),
		Stride:   w * channels,
		Rect:     r,
		Channels: channels,
	}
}

// Shape returns the dimensions in height, width, channels order.
func (m *Image) Shape() (height, width, channels int) {
	return m.Rect.Dy(), m.Rect.Dx(), m.Channels
}

func (m *Image) Bounds() image.Rectangle { return m.Rect }

func (m *Image) ColorModel() color.Model {
	switch m.Channels {
	case 1:
		return color.GrayModel
	case 3:
		return color.RGBAModel
	default:
		return color.NRGBAModel
	}
}

// PixOffset returns the index of the first sample of (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x-m.Rect.Min.X)*m.Channels
}

func (m *Image) Sample(x, y, c int) float32 {
	if !(image.Point{x, y}.In(m.Rect)) || c < 0 || c >= m.Channels {
		return 0
	}
	return m.Pix[m.PixOffset(x, y)+c]
}

func (m *Image) SetSample(x, y, c int, v float32) {
	if !(image.Point{x, y}.In(m.Rect)) || c < 0 || c >= m.Channels {
		return
	}
	m.Pix[m.PixOffset(x, y)+c] = v
}

// At returns the pixel quantized the same way ToBytes does.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Rect)) {
		return color.NRGBA{}
	}
	s := m.Pix[m.PixOffset(x, y):]
	switch m.Channels {
	case 1:
		return color.Gray{Y: toByte(s[0])}
	case 2:
		g := toByte(s[0])
		return color.NRGBA{R: g, G: g, B: g, A: toByte(s[1])}
	case 3:
		return color.RGBA{R: toByte(s[0]), G: toByte(s[1]), B: toByte(s[2]), A: 0xff}
	default:
		return color.NRGBA{R: toByte(s[0]), G: toByte(s[1]), B: toByte(s[2]), A: toByte(s[3])}
	}
}

func (m *Image) Clone() *Image {
	out := &Image{
		Pix:      make([]float32, len(m.Pix)),
		Stride:   m.Stride,
		Rect:     m.Rect,
		Channels: m.Channels,
	}
	copy(out.Pix, m.Pix)
	return out
}

// rows calls f with the samples of each row, excluding any stride padding.
func (m *Image) rows(f func(y int, row []float32)) {
	n := m.Rect.Dx() * m.Channels
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		i := (y - m.Rect.Min.Y) * m.Stride
		f(y, m.Pix[i:i+n])
	}
}

// Channel returns a single-channel copy of channel c.
func (m *Image) Channel(c int) (*Image, error) {
	if c < 0 || c >= m.Channels {
		return nil, fmt.Errorf("channel %d out of range for %d-channel image", c, m.Channels)
	}
	out := New(image.Rect(0, 0, m.Rect.Dx(), m.Rect.Dy()), 1)
	m.rows(func(y int, row []float32) {
		dst := out.Pix[(y-m.Rect.Min.Y)*out.Stride:]
		for x := range m.Rect.Dx() {
			dst[x] = row[x*m.Channels+c]
		}
	})
	return out, nil
}
