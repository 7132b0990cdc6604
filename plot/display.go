package plot

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"

	"floatimg/imgio"
)

// Display shows a rendered image somewhere: a stream, a file, a viewer.
type Display interface {
	Show(img image.Image) error
}

// PNGDisplay encodes every shown image as PNG on W.
type PNGDisplay struct {
	W io.Writer
}

func (d PNGDisplay) Show(img image.Image) error {
	return imgio.EncodePNG(d.W, img)
}

// FileDisplay writes the shown image to a single file, replacing it on
// every call. The encoder follows the file extension, PNG when there is none.
type FileDisplay string

func (d FileDisplay) Show(img image.Image) error {
	name := string(d)
	format := imgio.PNG
	if filepath.Ext(name) != "" {
		var err error
		if format, err = imgio.FormatFromExt(name); err != nil {
			return err
		}
	}
	return writeFile(name, img, format)
}

// DirDisplay writes every shown image as a numbered PNG file in Dir.
type DirDisplay struct {
	Dir    string
	Prefix string

	mu    sync.Mutex
	paths []string
}

func NewDirDisplay(dir, prefix string) (*DirDisplay, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create display folder %q: %w", dir, err)
	}
	if prefix == "" {
		prefix = "plot"
	}
	return &DirDisplay{Dir: dir, Prefix: prefix}, nil
}

func (d *DirDisplay) Show(img image.Image) error {
	d.mu.Lock()
	name := filepath.Join(d.Dir, fmt.Sprintf("%s-%04d.png", d.Prefix, len(d.paths)+1))
	d.paths = append(d.paths, name)
	d.mu.Unlock()

	return writeFile(name, img, imgio.PNG)
}

// Paths returns the files written so far, in order.
func (d *DirDisplay) Paths() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.paths...)
}

func writeFile(name string, img image.Image, format imgio.Format) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", name, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if err = imgio.EncodeImage(w, img, format, imgio.DefaultQuality); err != nil {
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	return w.Flush()
}
