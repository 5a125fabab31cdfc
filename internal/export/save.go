package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/cimviz/internal/scene"
)

// ErrUnknownFormat indicates an output extension without an encoder.
var ErrUnknownFormat = errors.New("export: unknown image format")

// Options fixes the size and resolution of a saved figure.
type Options struct {
	// Size is the side of the square figure in inches.
	Size float64
	DPI  int
}

// Formats lists the supported output extensions.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf"}

// FormatOf returns the lower-case extension of path without the dot.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func Supported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// WriteTo encodes s in format to w.
func WriteTo(w io.Writer, s *scene.Scene, format string, opts Options) error {
	side := vg.Length(opts.Size) * vg.Inch
	p := NewPlot(s)

	var wt io.WriterTo
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(side, side), vgimg.UseDPI(opts.DPI))
		Draw(p, draw.New(c), s.EqualAspect)
		switch format {
		case "png":
			wt = vgimg.PngCanvas{Canvas: c}
		case "jpg", "jpeg":
			wt = vgimg.JpegCanvas{Canvas: c}
		default:
			wt = vgimg.TiffCanvas{Canvas: c}
		}
	case "svg":
		c := vgsvg.New(side, side)
		Draw(p, draw.New(c), s.EqualAspect)
		wt = c
	case "pdf":
		c := vgpdf.New(side, side)
		Draw(p, draw.New(c), s.EqualAspect)
		wt = c
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}

	_, err := wt.WriteTo(w)
	return err
}

// Save writes s to path; the extension selects the encoder.
func Save(path string, s *scene.Scene, opts Options) error {
	format := FormatOf(path)
	if !Supported(format) {
		return fmt.Errorf("%w: %q from %s (supported: %s)", ErrUnknownFormat, format, path, strings.Join(Formats, ", "))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTo(file, s, format, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
