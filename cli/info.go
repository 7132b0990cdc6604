package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"floatimg/imgio"
)

type InfoCmd struct {
	Files []string `arg:"" help:"Images to describe" type:"existingfile"`
}

func (c *InfoCmd) Run(logger *slog.Logger) error {
	return c.run(logger, os.Stdout)
}

func (c *InfoCmd) run(logger *slog.Logger, w io.Writer) error {
	var errCount int
	for _, name := range c.Files {
		_, format, err := imgio.DecodeConfig(name)
		if err != nil {
			errCount++
			logger.Error("unknown image format", "file", name, "error", err)
			continue
		}
		img, err := imgio.Load(name)
		if err != nil {
			errCount++
			logger.Error("could not load image", "file", name, "error", err)
			continue
		}
		h, w2, ch := img.Shape()
		fmt.Fprintf(w, "%s\t%s\t%dx%dx%d\tmin=%g\tmax=%g\n", name, format, h, w2, ch, img.Min(), img.Max())
	}

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}
