package imgio

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

const (
	GIF  Format = "gif"
	JPEG Format = "jpeg"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the encoders Save supports.
var Formats = []Format{GIF, JPEG, PNG, BMP, TIFF}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case GIF, JPEG, PNG, BMP, TIFF:
		return f, nil
	case "jpg":
		return JPEG, nil
	case "tif":
		return TIFF, nil
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}

// FormatFromExt picks the encoder matching a file name extension.
func FormatFromExt(name string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "", fmt.Errorf("no extension in %q", name)
	}
	return ParseFormat(ext)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + string(f)
}
