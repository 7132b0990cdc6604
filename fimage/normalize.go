package fimage

import (
	"image"
	"math"
)

// Min returns the smallest sample over all channels, or 0 for an empty image.
func (m *Image) Min() float32 {
	lo, _ := m.extrema()
	return lo
}

// Max returns the largest sample over all channels, or 0 for an empty image.
func (m *Image) Max() float32 {
	_, hi := m.extrema()
	return hi
}

func (m *Image) extrema() (lo, hi float32) {
	lo, hi = math.MaxFloat32, -math.MaxFloat32
	empty := true
	m.rows(func(_ int, row []float32) {
		for _, v := range row {
			empty = false
			lo = min(lo, v)
			hi = max(hi, v)
		}
	})
	if empty {
		return 0, 0
	}
	return lo, hi
}

// Normalize rescales all samples so that the smallest becomes 0 and the
// largest 1. A constant image normalizes to all zeros.
func (m *Image) Normalize() *Image {
	out := New(image.Rect(0, 0, m.Rect.Dx(), m.Rect.Dy()), m.Channels)
	lo, hi := m.extrema()
	span := hi - lo
	if span == 0 {
		return out
	}
	m.rows(func(y int, row []float32) {
		dst := out.Pix[(y-m.Rect.Min.Y)*out.Stride:]
		for i, v := range row {
			dst[i] = (v - lo) / span
		}
	})
	return out
}
