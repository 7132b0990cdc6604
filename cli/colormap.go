package cli

import (
	"bufio"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"floatimg/palette"

	"github.com/alecthomas/kong"
)

type ColormapCmd struct {
	Name    string `arg:"" help:"Builtin colormap (blackbody, coolwarm, gray, kindlmann) or RIFF PAL file to resample"`
	Out     string `help:"RIFF PAL file to write. Defaults to <name>-<entries>.pal in the current folder."`
	Entries int    `help:"Number of colors to sample" default:"256"`

	colormap palette.Colormap `kong:"-"`
}

func (c *ColormapCmd) Validate(kctx *kong.Context) error {
	if c.Entries < 1 || c.Entries > 0xffff {
		return fmt.Errorf("invalid number of entries: %d", c.Entries)
	}
	if c.Out == "" {
		base := filepath.Base(c.Name)
		c.Out = fmt.Sprintf("%s-%d.pal", strings.TrimSuffix(base, filepath.Ext(base)), c.Entries)
	}

	var err error
	if c.colormap, err = palette.LoadColormap(c.Name); err != nil {
		return err
	}
	return nil
}

func (c *ColormapCmd) Run(logger *slog.Logger) (err error) {
	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", c.Out, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", c.Out, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	n, err := palette.WriteTo(w, []color.Palette{palette.Sample(c.colormap, c.Entries)})
	if err != nil {
		return fmt.Errorf("could not write %q: %w", c.Out, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("could not write %q: %w", c.Out, err)
	}

	logger.Info("wrote colormap", "name", c.Name, "out", c.Out, "colors", n)
	return nil
}
