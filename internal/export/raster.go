package export

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Format is a raster encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatWebP, FormatJPEG:
		return f, nil
	case "jpg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("unknown raster format: %q", s)
}

type RasterOptions struct {
	Size        int
	Supersample int
	View        View
	Quality     int
}

func DefaultRasterOptions() RasterOptions {
	return RasterOptions{Size: 512, Supersample: 2, View: ViewCarousel, Quality: 90}
}

// Rasterize draws the snapshot at Size*Supersample pixels and filters it
// down to Size.
func Rasterize(s Snapshot, opts RasterOptions) (image.Image, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("raster size must be positive, got %d", opts.Size)
	}
	ss := max(1, opts.Supersample)
	full := opts.Size * ss

	dc := gg.NewContext(full, full)
	defer dc.Close()
	dc.ClearWithColor(gg.Hex(background))

	k := float64(ss)
	for _, sh := range plan(s, opts.View, float64(opts.Size)) {
		dc.SetHexColor(withAlpha(sh.color, sh.alpha))
		var err error
		switch sh.kind {
		case shapeLine:
			dc.SetLineWidth(sh.width * k)
			dc.DrawLine(sh.x1*k, sh.y1*k, sh.x2*k, sh.y2*k)
			err = dc.Stroke()
		case shapeDisc:
			dc.DrawCircle(sh.x1*k, sh.y1*k, sh.r*k)
			err = dc.Fill()
		case shapeRing:
			dc.SetLineWidth(sh.width * k)
			dc.DrawCircle(sh.x1*k, sh.y1*k, sh.r*k)
			err = dc.Stroke()
		}
		if err != nil {
			return nil, fmt.Errorf("draw: %w", err)
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	src := dc.Image()
	if ss == 1 {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatPNG, FormatJPEG:
		dc := gg.NewContextForImage(img)
		defer dc.Close()
		if format == FormatJPEG {
			if quality <= 0 || quality > 100 {
				quality = 90
			}
			return dc.EncodeJPEG(w, quality)
		}
		return dc.EncodePNG(w)
	}
	return fmt.Errorf("unknown raster format: %q", format)
}

// WriteRaster renders and encodes a snapshot in one step.
func WriteRaster(w io.Writer, s Snapshot, format Format, opts RasterOptions) error {
	img, err := Rasterize(s, opts)
	if err != nil {
		return err
	}
	return Encode(w, img, format, opts.Quality)
}

func withAlpha(hex string, alpha float64) string {
	if alpha >= 1 || len(hex) != 7 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, int(max(0, alpha)*255))
}
