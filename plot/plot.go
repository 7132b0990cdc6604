// Package plot renders float images for viewing: plain images are shown
// as their 8-bit rendition, gradients are normalized and drawn through a
// colormap on a gonum plot.
package plot

import (
	"fmt"
	"image"
	"image/color"

	"floatimg/fimage"
	"floatimg/palette"

	xdraw "golang.org/x/image/draw"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Image shows img after clipping it to [0, 255] and truncating to bytes.
func Image(d Display, img *fimage.Image) error {
	if err := d.Show(img.ToBytes()); err != nil {
		return fmt.Errorf("could not show image: %w", err)
	}
	return nil
}

// titleSpace is the room added above the image when a title is set.
const titleSpace = vg.Inch / 2

type gradientOptions struct {
	colormap   palette.Colormap
	width      vg.Length
	resolution int
	title      string
}

type GradientOption func(*gradientOptions)

// WithColormap sets the colormap used for single-channel gradients.
func WithColormap(cm palette.Colormap) GradientOption {
	return func(o *gradientOptions) { o.colormap = cm }
}

// WithWidth sets the width of the plot; the height follows the image aspect.
func WithWidth(w vg.Length) GradientOption {
	return func(o *gradientOptions) { o.width = w }
}

// WithResolution sets the number of pixels the longer image side is
// interpolated to before plotting.
func WithResolution(px int) GradientOption {
	return func(o *gradientOptions) { o.resolution = px }
}

func WithTitle(title string) GradientOption {
	return func(o *gradientOptions) { o.title = title }
}

// Gradient normalizes grad to [0, 1] and shows it with bilinear
// interpolation. One-channel (and gray with alpha) gradients go through the
// colormap, three and four channels are drawn as RGB and RGBA.
func Gradient(d Display, grad *fimage.Image, opts ...GradientOption) error {
	o := gradientOptions{
		width:      6 * vg.Inch,
		resolution: 512,
	}
	for _, apply := range opts {
		apply(&o)
	}
	if o.colormap == nil {
		o.colormap = palette.Default()
	}

	h, w, _ := grad.Shape()
	if w == 0 || h == 0 {
		return fmt.Errorf("cannot plot empty gradient")
	}

	colored := colorize(grad.Normalize(), o.colormap)
	smooth := interpolate(colored, o.resolution)

	p := gonumplot.New()
	p.HideAxes()
	p.Title.Text = o.title
	p.Add(plotter.NewImage(smooth, 0, 0, float64(w), float64(h)))
	p.X.Min, p.X.Max = 0, float64(w)
	p.Y.Min, p.Y.Max = 0, float64(h)

	height := o.width * vg.Length(h) / vg.Length(w)
	if o.title != "" {
		height += titleSpace
	}
	c := vgimg.New(o.width, height)
	p.Draw(draw.New(c))

	if err := d.Show(c.Image()); err != nil {
		return fmt.Errorf("could not show gradient: %w", err)
	}
	return nil
}

// colorize expects samples in [0, 1].
func colorize(norm *fimage.Image, cm palette.Colormap) *image.NRGBA {
	h, w, channels := norm.Shape()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := norm.Pix[norm.PixOffset(x, y):]
			switch channels {
			case 1, 2:
				out.Set(x, y, cm.At(float64(s[0])))
			case 3:
				out.SetNRGBA(x, y, color.NRGBA{R: unit(s[0]), G: unit(s[1]), B: unit(s[2]), A: 0xff})
			default:
				out.SetNRGBA(x, y, color.NRGBA{R: unit(s[0]), G: unit(s[1]), B: unit(s[2]), A: unit(s[3])})
			}
		}
	}
	return out
}

func unit(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

// interpolate upscales img with bilinear filtering so that its longer side
// reaches size pixels. Larger images are returned as is.
func interpolate(img image.Image, size int) image.Image {
	b := img.Bounds()
	long := max(b.Dx(), b.Dy())
	if long >= size {
		return img
	}
	r := image.Rect(0, 0, b.Dx()*size/long, b.Dy()*size/long)
	dst := image.NewNRGBA(r)
	xdraw.BiLinear.Scale(dst, r, img, b, xdraw.Src, nil)
	return dst
}
