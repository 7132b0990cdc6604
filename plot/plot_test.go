package plot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"floatimg/fimage"
	"floatimg/imgio"
	"floatimg/palette"
)

type recordDisplay struct {
	shown []image.Image
}

func (r *recordDisplay) Show(img image.Image) error {
	r.shown = append(r.shown, img)
	return nil
}

func TestImageClipsToBytes(t *testing.T) {
	m := fimage.New(image.Rect(0, 0, 2, 1), 3)
	copy(m.Pix, []float32{-5, 128.6, 400, 10, 20, 30})

	var d recordDisplay
	if err := Image(&d, m); err != nil {
		t.Fatal(err)
	}
	if len(d.shown) != 1 {
		t.Fatalf("shown: got %d want 1", len(d.shown))
	}
	got := color.RGBAModel.Convert(d.shown[0].At(0, 0)).(color.RGBA)
	want := color.RGBA{R: 0, G: 128, B: 255, A: 255}
	if got != want {
		t.Fatalf("pixel: got %v want %v", got, want)
	}
}

func TestPNGDisplay(t *testing.T) {
	m := fimage.New(image.Rect(0, 0, 3, 2), 1)
	var buf bytes.Buffer
	if err := Image(PNGDisplay{W: &buf}, m); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
}

func TestColorizeSingleChannel(t *testing.T) {
	m := fimage.New(image.Rect(0, 0, 2, 1), 1)
	copy(m.Pix, []float32{0, 1})
	out := colorize(m, palette.FromPalette(color.Palette{color.Black, color.White}))
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("low: got %v", got)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("high: got %v", got)
	}
}

func TestColorizeRGB(t *testing.T) {
	m := fimage.New(image.Rect(0, 0, 1, 1), 3)
	copy(m.Pix, []float32{1, 0.5, 0})
	got := colorize(m, nil).NRGBAAt(0, 0)
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestInterpolate(t *testing.T) {
	small := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	out := interpolate(small, 64)
	if out.Bounds() != image.Rect(0, 0, 64, 32) {
		t.Fatalf("bounds: got %v", out.Bounds())
	}

	big := image.NewNRGBA(image.Rect(0, 0, 100, 10))
	if interpolate(big, 64) != image.Image(big) {
		t.Fatal("large image should not be rescaled")
	}
}

func TestGradient(t *testing.T) {
	grad := fimage.New(image.Rect(0, 0, 8, 4), 1)
	for i := range grad.Pix {
		grad.Pix[i] = float32(i) - 10
	}

	var d recordDisplay
	if err := Gradient(&d, grad, WithTitle("gradient"), WithResolution(32)); err != nil {
		t.Fatal(err)
	}
	if len(d.shown) != 1 {
		t.Fatalf("shown: got %d want 1", len(d.shown))
	}
	b := d.shown[0].Bounds()
	if b.Dx() <= b.Dy() {
		t.Fatalf("expected a landscape plot, got %v", b)
	}
}

func TestGradientEmpty(t *testing.T) {
	var d recordDisplay
	if err := Gradient(&d, fimage.New(image.Rectangle{}, 1)); err == nil {
		t.Fatal("expected error")
	}
}

func TestDirDisplay(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	d, err := NewDirDisplay(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	m := fimage.New(image.Rect(0, 0, 2, 2), 3)
	for range 2 {
		if err := Image(d, m); err != nil {
			t.Fatal(err)
		}
	}
	paths := d.Paths()
	want := []string{filepath.Join(dir, "plot-0001.png"), filepath.Join(dir, "plot-0002.png")}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Fatalf("paths: got %v want %v", paths, want)
	}
}

func TestFileDisplayFormats(t *testing.T) {
	dir := t.TempDir()
	m := fimage.New(image.Rect(0, 0, 3, 2), 1)
	for name, want := range map[string]string{"a.png": "png", "b.bmp": "bmp", "c.jpg": "jpeg", "noext": "png"} {
		path := filepath.Join(dir, name)
		if err := Image(FileDisplay(path), m); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		conf, format, err := imgio.DecodeConfig(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if format != want || conf.Width != 3 || conf.Height != 2 {
			t.Errorf("%s: got %s %dx%d want %s 3x2", name, format, conf.Width, conf.Height, want)
		}
	}

	if err := Image(FileDisplay(filepath.Join(dir, "d.xyz")), m); err == nil {
		t.Fatal("expected error for unknown extension")
	}
}
