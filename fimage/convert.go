package fimage

import (
	"image"
	"image/color"
	"math"
)

// FromImage converts a decoded image into float samples on the 0..255 scale.
// Gray images give 1 channel, opaque images 3 and anything with transparency
// 4 (non-premultiplied). 16-bit sources are scaled down to 0..255.
func FromImage(img image.Image) *Image {
	switch src := img.(type) {
	case *Image:
		return src.Clone()
	case *image.Gray, *image.Gray16:
		return FromImageChannels(img, 1)
	}

	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return FromImageChannels(img, 3)
	}
	return FromImageChannels(img, 4)
}

// FromImageChannels converts img keeping the given number of channels.
// Color sources read as 1 channel are converted to luma.
func FromImageChannels(img image.Image, channels int) *Image {
	b := img.Bounds()
	out := New(image.Rect(0, 0, b.Dx(), b.Dy()), channels)

	if src, ok := img.(*image.Gray); ok && channels == 1 {
		for y := 0; y < b.Dy(); y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+b.Dx()]
			dst := out.Pix[y*out.Stride:]
			for x, v := range row {
				dst[x] = float32(v)
			}
		}
		return out
	}

	wide := is16Bit(img.ColorModel())
	for y := 0; y < b.Dy(); y++ {
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < b.Dx(); x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			s := dst[x*channels : x*channels+channels]
			if channels == 1 {
				if wide {
					s[0] = float32(color.Gray16Model.Convert(c).(color.Gray16).Y) / 257
				} else {
					s[0] = float32(color.GrayModel.Convert(c).(color.Gray).Y)
				}
				continue
			}

			var px [4]float32
			if wide {
				n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
				px = [4]float32{float32(n.R) / 257, float32(n.G) / 257, float32(n.B) / 257, float32(n.A) / 257}
			} else {
				n := color.NRGBAModel.Convert(c).(color.NRGBA)
				px = [4]float32{float32(n.R), float32(n.G), float32(n.B), float32(n.A)}
			}
			if channels == 2 {
				s[0], s[1] = px[0], px[3]
				continue
			}
			copy(s, px[:channels])
		}
	}
	return out
}

func is16Bit(m color.Model) bool {
	switch m {
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model, color.Alpha16Model:
		return true
	}
	return false
}

// ToBytes clips every sample to [0, 255] and truncates it to 8 bits.
func (m *Image) ToBytes() image.Image {
	b := m.Rect
	r := image.Rect(0, 0, b.Dx(), b.Dy())

	switch m.Channels {
	case 1:
		out := image.NewGray(r)
		m.rows(func(y int, row []float32) {
			dst := out.Pix[(y-b.Min.Y)*out.Stride:]
			for x, v := range row {
				dst[x] = toByte(v)
			}
		})
		return out
	case 3:
		out := image.NewRGBA(r)
		m.rows(func(y int, row []float32) {
			dst := out.Pix[(y-b.Min.Y)*out.Stride:]
			for x := 0; x < b.Dx(); x++ {
				dst[4*x] = toByte(row[3*x])
				dst[4*x+1] = toByte(row[3*x+1])
				dst[4*x+2] = toByte(row[3*x+2])
				dst[4*x+3] = 0xff
			}
		})
		return out
	}

	out := image.NewNRGBA(r)
	m.rows(func(y int, row []float32) {
		dst := out.Pix[(y-b.Min.Y)*out.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if m.Channels == 2 {
				g := toByte(row[2*x])
				dst[4*x], dst[4*x+1], dst[4*x+2] = g, g, g
				dst[4*x+3] = toByte(row[2*x+1])
				continue
			}
			dst[4*x] = toByte(row[4*x])
			dst[4*x+1] = toByte(row[4*x+1])
			dst[4*x+2] = toByte(row[4*x+2])
			dst[4*x+3] = toByte(row[4*x+3])
		}
	})
	return out
}

// Clip returns a copy with every sample clamped to [lo, hi].
func (m *Image) Clip(lo, hi float32) *Image {
	out := New(image.Rect(0, 0, m.Rect.Dx(), m.Rect.Dy()), m.Channels)
	m.rows(func(y int, row []float32) {
		dst := out.Pix[(y-m.Rect.Min.Y)*out.Stride:]
		for i, v := range row {
			dst[i] = clamp(v, lo, hi)
		}
	})
	return out
}

func clamp(v, lo, hi float32) float32 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// NaN maps to 0.
func toByte(v float32) uint8 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return uint8(clamp(v, 0, 255))
}
