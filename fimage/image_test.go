package fimage

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestNewShape(t *testing.T) {
	m := New(image.Rect(0, 0, 4, 3), 3)
	h, w, c := m.Shape()
	if h != 3 || w != 4 || c != 3 {
		t.Fatalf("shape: got %dx%dx%d want 3x4x3", h, w, c)
	}
	if len(m.Pix) != 36 {
		t.Fatalf("pix length: got %d want 36", len(m.Pix))
	}
}

func TestNewPanicsOnChannels(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for 5 channels")
		}
	}()
	New(image.Rect(0, 0, 1, 1), 5)
}

func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 0, color.Gray{Y: 200})
	m := FromImage(src)
	if m.Channels != 1 {
		t.Fatalf("channels: got %d want 1", m.Channels)
	}
	if got := m.Sample(1, 0, 0); got != 200 {
		t.Fatalf("sample: got %v want 200", got)
	}
}

func TestFromImageGray16(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 1, 1))
	src.SetGray16(0, 0, color.Gray16{Y: 0xffff})
	if got := FromImage(src).Sample(0, 0, 0); got != 255 {
		t.Fatalf("sample: got %v want 255", got)
	}
}

func TestFromImageChannels(t *testing.T) {
	opaque := image.NewRGBA(image.Rect(0, 0, 2, 1))
	opaque.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	opaque.SetRGBA(1, 0, color.RGBA{A: 255})

	m := FromImage(opaque)
	if m.Channels != 3 {
		t.Fatalf("opaque channels: got %d want 3", m.Channels)
	}
	for c, want := range []float32{10, 20, 30} {
		if got := m.Sample(0, 0, c); got != want {
			t.Errorf("channel %d: got %v want %v", c, got, want)
		}
	}

	translucent := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	translucent.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 150, B: 200, A: 128})
	m = FromImage(translucent)
	if m.Channels != 4 {
		t.Fatalf("translucent channels: got %d want 4", m.Channels)
	}
	for c, want := range []float32{100, 150, 200, 128} {
		if got := m.Sample(0, 0, c); got != want {
			t.Errorf("channel %d: got %v want %v", c, got, want)
		}
	}
}

func TestFromSubImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.SetGray(2, 3, color.Gray{Y: 7})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))
	m := FromImage(sub)
	if m.Rect != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds: got %v", m.Rect)
	}
	if got := m.Sample(0, 1, 0); got != 7 {
		t.Fatalf("sample: got %v want 7", got)
	}
}

func TestToBytesClipsAndTruncates(t *testing.T) {
	m := New(image.Rect(0, 0, 4, 1), 1)
	copy(m.Pix, []float32{-12, 12.9, 300, float32(math.NaN())})

	g, ok := m.ToBytes().(*image.Gray)
	if !ok {
		t.Fatalf("expected *image.Gray, got %T", m.ToBytes())
	}
	want := []uint8{0, 12, 255, 0}
	for i, w := range want {
		if g.Pix[i] != w {
			t.Errorf("pixel %d: got %d want %d", i, g.Pix[i], w)
		}
	}
}

func TestToBytesTypes(t *testing.T) {
	for _, tc := range []struct {
		channels int
		want     string
	}{
		{1, "*image.Gray"},
		{2, "*image.NRGBA"},
		{3, "*image.RGBA"},
		{4, "*image.NRGBA"},
	} {
		out := New(image.Rect(0, 0, 1, 1), tc.channels).ToBytes()
		if got := typeName(out); got != tc.want {
			t.Errorf("%d channels: got %s want %s", tc.channels, got, tc.want)
		}
	}
}

func typeName(img image.Image) string {
	switch img.(type) {
	case *image.Gray:
		return "*image.Gray"
	case *image.RGBA:
		return "*image.RGBA"
	case *image.NRGBA:
		return "*image.NRGBA"
	}
	return "other"
}

func TestAtMatchesToBytes(t *testing.T) {
	m := New(image.Rect(0, 0, 1, 1), 3)
	copy(m.Pix, []float32{-5, 127.7, 999})
	got := m.At(0, 0).(color.RGBA)
	want := color.RGBA{R: 0, G: 127, B: 255, A: 255}
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestClip(t *testing.T) {
	m := New(image.Rect(0, 0, 3, 1), 1)
	copy(m.Pix, []float32{-1, 0.5, 2})
	c := m.Clip(0, 1)
	want := []float32{0, 0.5, 1}
	for i, w := range want {
		if c.Pix[i] != w {
			t.Errorf("sample %d: got %v want %v", i, c.Pix[i], w)
		}
	}
	if m.Pix[0] != -1 {
		t.Fatal("clip modified its receiver")
	}
}

func TestChannel(t *testing.T) {
	m := New(image.Rect(0, 0, 2, 1), 3)
	copy(m.Pix, []float32{1, 2, 3, 4, 5, 6})
	g, err := m.Channel(1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Pix[0] != 2 || g.Pix[1] != 5 {
		t.Fatalf("got %v", g.Pix)
	}
	if _, err := m.Channel(3); err == nil {
		t.Fatal("expected error for channel 3")
	}
}

func TestDerivedImagesAtOrigin(t *testing.T) {
	m := New(image.Rect(2, 3, 5, 5), 2)
	for i := range m.Pix {
		m.Pix[i] = float32(i)
	}
	m.SetSample(4, 4, 1, 300)

	origin := image.Rect(0, 0, 3, 2)
	ch, err := m.Channel(1)
	if err != nil {
		t.Fatal(err)
	}
	for name, r := range map[string]image.Rectangle{
		"clip":      m.Clip(0, 255).Rect,
		"normalize": m.Normalize().Rect,
		"channel":   ch.Rect,
		"bytes":     m.ToBytes().Bounds(),
	} {
		if r != origin {
			t.Errorf("%s: got %v want %v", name, r, origin)
		}
	}
	if got := m.Clip(0, 255).Sample(2, 1, 1); got != 255 {
		t.Errorf("clip: got %v want 255", got)
	}

	c := m.Clone()
	if c.Rect != m.Rect {
		t.Fatalf("clone: got %v want %v", c.Rect, m.Rect)
	}
	if c.Sample(4, 4, 1) != 300 {
		t.Fatalf("clone: got %v want 300", c.Sample(4, 4, 1))
	}
}
