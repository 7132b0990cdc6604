package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"floatimg/imgio"
	"floatimg/parallel"
	"floatimg/rescale"

	"github.com/alecthomas/kong"
)

type ResizeCmd struct {
	Scan       string  `help:"Source image or folder to scan" default:"." env:"FLOATIMG_SCAN"`
	Dest       string  `help:"Destination folder for resized images. Relative to the scan folder if not absolute." default:"resized" env:"FLOATIMG_DEST"`
	Factor     float64 `help:"Scale factor applied to both dimensions, e.g. 0.5 to halve"`
	Height     int     `help:"Exact target height" group:"size"`
	Width      int     `help:"Exact target width" group:"size"`
	Filter     string  `help:"Resampling filter (lanczos, nearest, box, bilinear, hamming, bicubic, catmullrom)" default:"lanczos" env:"FLOATIMG_FILTER"`
	Format     string  `help:"Output format" enum:"jpeg,png,gif,bmp,tiff" default:"jpeg" env:"FLOATIMG_FORMAT"`
	Quality    int     `help:"JPEG quality" default:"75"`
	AutoOrient bool    `help:"Apply EXIF orientation when loading" default:"false"`

	scanFiles []string        `kong:"-"`
	opts      rescale.Options `kong:"-"`
	format    imgio.Format    `kong:"-"`
}

func (c *ResizeCmd) Validate(kctx *kong.Context) error {
	scan, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		info, err = os.Stat(scan)
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scan

	baseDir := scan
	if info.IsDir() {
		files, err := os.ReadDir(scan)
		if err != nil {
			return fmt.Errorf("unable to read folder %q: %w", scan, err)
		}
		c.scanFiles = c.scanFiles[:0]
		for _, file := range files {
			if !file.IsDir() {
				c.scanFiles = append(c.scanFiles, filepath.Join(scan, file.Name()))
			}
		}
	} else {
		baseDir = filepath.Dir(scan)
		c.scanFiles = []string{scan}
	}

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(baseDir, c.Dest)
	}

	switch {
	case c.Factor < 0:
		return fmt.Errorf("invalid resize factor: %g", c.Factor)
	case c.Factor > 0:
		c.opts.Factor = c.Factor
	case c.Height < 0:
		return fmt.Errorf("invalid resize height: %d", c.Height)
	case c.Width < 0:
		return fmt.Errorf("invalid resize width: %d", c.Width)
	case c.Height == 0 || c.Width == 0:
		return fmt.Errorf("no resize target given, need --factor or both --height and --width")
	default:
		c.opts.Size = &rescale.Size{Height: c.Height, Width: c.Width}
	}

	if c.opts.Filter, err = rescale.ParseFilter(c.Filter); err != nil {
		return err
	}
	if c.format, err = imgio.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("invalid JPEG quality: %d", c.Quality)
	}

	return nil
}

func (c *ResizeCmd) Run(logger *slog.Logger, pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	var loadOpts []imgio.LoadOption
	if c.AutoOrient {
		loadOpts = append(loadOpts, imgio.WithAutoOrient())
	}

	var processedCount, errCount atomic.Uint64
	for _, filePath := range c.scanFiles {
		pool.Do(func() {
			logger := logger.With("file", filePath)

			img, err := imgio.Load(filePath, loadOpts...)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not load image", "error", err)
				return
			}

			resized, err := rescale.Resize(img, c.opts)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not resize image", "error", err)
				return
			}

			h, w, _ := resized.Shape()
			dest := filepath.Join(c.Dest, destName(filePath, c.format))
			logger.Info("resized", "height", h, "width", w, "dest", dest)

			if err = imgio.Save(resized, dest, imgio.WithFormat(c.format), imgio.WithQuality(c.Quality)); err != nil {
				errCount.Add(1)
				logger.Error("could not save image", "dir", c.Dest, "error", err)
				return
			}
			processedCount.Add(1)
		})
	}

	pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	logger.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func destName(src string, format imgio.Format) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + format.Ext()
}
