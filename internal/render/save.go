package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrOutputName is returned when the output file name is not a PNG name.
var ErrOutputName = errors.New("render: output filename must end in png")

// DefaultOutput is the file name used when none is given.
const DefaultOutput = "temp.png"

// Size describes the raster image.
type Size struct {
	Width  float64 // inches
	Height float64 // inches
	DPI    int
}

// ValidateName checks that name can be used as an output file name.
func ValidateName(name string) error {
	if !strings.HasSuffix(name, ".png") || strings.TrimSuffix(filepath.Base(name), ".png") == "" {
		return fmt.Errorf("%w: %q", ErrOutputName, name)
	}
	return nil
}

// Save renders p into dir/name and returns the written path. Missing
// directories are created. The image is written to a temporary file first and
// renamed into place, so a failed render leaves no partial file behind.
func Save(p *plot.Plot, dir, name string, size Size) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	target := filepath.Dir(path)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch),
		vgimg.UseDPI(size.DPI),
	)
	p.Draw(draw.New(canvas))

	tmp, err := os.CreateTemp(target, ".quickplt-*.png")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmp.Name())
	}()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write png: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("chmod png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close png: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename png: %w", err)
	}
	return path, nil
}
