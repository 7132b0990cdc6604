package palette

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	plotpalette "gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Colormap maps a value in [0, 1] to a color. Values outside are clamped.
type Colormap interface {
	At(v float64) color.Color
}

// DefaultName is the colormap used when none is requested.
const DefaultName = "kindlmann"

var builtins = map[string]func() Colormap{
	"blackbody": func() Colormap { return fromColorMap(moreland.ExtendedBlackBody()) },
	"kindlmann": func() Colormap { return fromColorMap(moreland.ExtendedKindlmann()) },
	"coolwarm":  func() Colormap { return fromColorMap(moreland.SmoothBlueRed()) },
	"gray":      func() Colormap { return FromPalette(color.Palette{color.Black, color.White}) },
}

func Default() Colormap {
	return builtins[DefaultName]()
}

// Builtin returns the named builtin colormap.
func Builtin(name string) (Colormap, bool) {
	f, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// BuiltinNames lists the builtin colormaps in alphabetical order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample evaluates cm at n evenly spaced points from 0 to 1.
func Sample(cm Colormap, n int) color.Palette {
	pal := make(color.Palette, n)
	for i := range n {
		v := 0.0
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		pal[i] = color.RGBAModel.Convert(cm.At(v))
	}
	return pal
}

// LoadColormap returns a builtin colormap by name, or builds one from the
// colors of a RIFF PAL file.
func LoadColormap(nameOrPath string) (Colormap, error) {
	if cm, ok := Builtin(nameOrPath); ok {
		return cm, nil
	}

	f, err := os.Open(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("unknown colormap %q: %w", nameOrPath, err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", nameOrPath, err)
	}

	var all color.Palette
	for _, pal := range pals {
		all = append(all, pal...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", nameOrPath)
	}
	return FromPalette(all), nil
}

type gonumColormap struct {
	cm plotpalette.ColorMap
}

func fromColorMap(cm plotpalette.ColorMap) Colormap {
	cm.SetMax(1)
	cm.SetMin(0)
	return gonumColormap{cm: cm}
}

func (g gonumColormap) At(v float64) color.Color {
	c, err := g.cm.At(clamp01(v))
	if err != nil {
		return color.Black
	}
	return c
}

// Gradient interpolates linearly between evenly spaced palette entries.
type Gradient []colorful.Color

func FromPalette(pal color.Palette) Gradient {
	g := make(Gradient, 0, len(pal))
	for _, c := range pal {
		cf, _ := colorful.MakeColor(c)
		g = append(g, cf)
	}
	return g
}

func (g Gradient) At(v float64) color.Color {
	switch len(g) {
	case 0:
		return color.Black
	case 1:
		return g[0].Clamped()
	}

	pos := clamp01(v) * float64(len(g)-1)
	i := int(pos)
	if i >= len(g)-1 {
		return g[len(g)-1].Clamped()
	}
	return g[i].BlendRgb(g[i+1], pos-float64(i)).Clamped()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0, math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}
