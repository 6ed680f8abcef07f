// Package image turns placeholder SVG documents into raster images and
// encodes them as PNG, JPEG or WebP.
package image

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Supported output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatWebP = "webp"
)

// ParseFormat normalises a format name given on the command line or in
// config. "jpg" is accepted as an alias for "jpeg".
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatSVG, FormatPNG, FormatJPEG, FormatWebP:
		return f, nil
	case "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want svg, png, jpeg or webp)", s)
	}
}

// Extension returns the file extension (without dot) for a format name.
func Extension(format string) string {
	switch format {
	case FormatJPEG:
		return "jpg"
	default:
		return format
	}
}

// Rasterize renders svg onto a width x height canvas and draws label
// centered on top. The canvas is first flooded with background so that the
// result does not depend on how much of the markup oksvg understands; label
// is drawn separately because oksvg skips <text> elements.
//
// The label face is basicfont.Face7x13, which only has glyphs for ASCII and
// Latin-1. Any other rune is drawn as the U+FFFD replacement glyph, so raster
// labels can differ from the SVG text for such categories.
func Rasterize(svg []byte, width, height int, background, label, labelColor string) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster dimensions %dx%d", width, height)
	}

	bg, err := parseColor(background)
	if err != nil {
		return nil, fmt.Errorf("parsing fill color: %w", err)
	}
	fg, err := parseColor(labelColor)
	if err != nil {
		return nil, fmt.Errorf("parsing label color: %w", err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, dst, dst.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)

	drawLabel(dst, label, image.NewUniform(fg))
	return dst, nil
}

// parseColor accepts any SVG color; "none" and the empty string are rejected
// because a raster canvas needs a concrete paint.
func parseColor(s string) (color.Color, error) {
	c, err := oksvg.ParseSVGColor(s)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%q is not a paintable color", s)
	}
	return c, nil
}

// drawLabel writes text horizontally and vertically centered on dst.
func drawLabel(dst draw.Image, text string, src image.Image) {
	face := basicfont.Face7x13
	b := dst.Bounds()
	m := face.Metrics()

	advance := font.MeasureString(face, text).Round()
	x := b.Min.X + (b.Dx()-advance)/2
	y := b.Min.Y + (b.Dy()+m.Ascent.Round()-m.Descent.Round())/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Encode writes img to w in the given raster format.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case FormatWebP:
		if err := webp.Encode(w, img, webp.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding webp: %w", err)
		}
	case FormatPNG:
		if err := imaging.Encode(w, img, imaging.PNG); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	case FormatJPEG:
		if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return fmt.Errorf("encoding jpeg: %w", err)
		}
	default:
		return fmt.Errorf("cannot encode raster format %q", format)
	}
	return nil
}
