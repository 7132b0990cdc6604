package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"floatimg/imgio"
	"floatimg/palette"
	"floatimg/plot"

	"github.com/alecthomas/kong"
	"gonum.org/v1/plot/vg"
)

type PlotCmd struct {
	Input string `arg:"" help:"Image to plot" type:"existingfile"`
	Out   string `help:"File to write, encoded by its extension. Defaults to <input>.plot.png next to the input."`
}

func (c *PlotCmd) Validate(kctx *kong.Context) error {
	if c.Out == "" {
		c.Out = plotName(c.Input, "plot")
	}
	_, err := imgio.FormatFromExt(c.Out)
	return err
}

func (c *PlotCmd) Run(logger *slog.Logger) error {
	img, err := imgio.Load(c.Input)
	if err != nil {
		return err
	}
	if err := plot.Image(plot.FileDisplay(c.Out), img); err != nil {
		return err
	}
	logger.Info("plotted", "file", c.Input, "out", c.Out)
	return nil
}

type GradientCmd struct {
	Input      string  `arg:"" help:"Image holding the gradient" type:"existingfile"`
	Out        string  `help:"File to write, encoded by its extension. Defaults to <input>.gradient.png next to the input."`
	Channel    int     `help:"Plot only this channel; -1 plots all channels" default:"-1"`
	Colormap   string  `help:"Builtin colormap (blackbody, coolwarm, gray, kindlmann) or RIFF PAL file, used for single-channel gradients" default:"kindlmann" env:"FLOATIMG_COLORMAP"`
	Title      string  `help:"Plot title"`
	Resolution int     `help:"Pixels the longer side is interpolated to" default:"512"`
	Width      float64 `help:"Plot width in inches" default:"6"`

	colormap palette.Colormap `kong:"-"`
}

func (c *GradientCmd) Validate(kctx *kong.Context) error {
	if c.Out == "" {
		c.Out = plotName(c.Input, "gradient")
	}
	if _, err := imgio.FormatFromExt(c.Out); err != nil {
		return err
	}
	if c.Resolution < 1 {
		return fmt.Errorf("invalid resolution: %d", c.Resolution)
	}
	if c.Width <= 0 {
		return fmt.Errorf("invalid plot width: %g", c.Width)
	}

	var err error
	if c.colormap, err = palette.LoadColormap(c.Colormap); err != nil {
		return err
	}
	return nil
}

func (c *GradientCmd) Run(logger *slog.Logger) error {
	grad, err := imgio.Load(c.Input)
	if err != nil {
		return err
	}
	if c.Channel >= 0 {
		if grad, err = grad.Channel(c.Channel); err != nil {
			return err
		}
	}

	err = plot.Gradient(plot.FileDisplay(c.Out), grad,
		plot.WithColormap(c.colormap),
		plot.WithTitle(c.Title),
		plot.WithResolution(c.Resolution),
		plot.WithWidth(vg.Length(c.Width)*vg.Inch),
	)
	if err != nil {
		return err
	}
	logger.Info("plotted gradient", "file", c.Input, "out", c.Out, "min", grad.Min(), "max", grad.Max())
	return nil
}

func plotName(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s.%s.png", base, suffix)
}
