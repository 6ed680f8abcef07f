package image

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/aellingwood/placeholders/internal/render"
	"github.com/gen2brain/webp"
)

func rasterizeTest(t *testing.T, w, h int, fill, label string) image.Image {
	t.Helper()
	svg := render.SVG(w, h, fill, label)
	img, err := Rasterize([]byte(svg), w, h, fill, label, render.LabelColor)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{"PNG", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{" jpeg ", FormatJPEG, false},
		{"webp", FormatWebP, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		FormatSVG:  "svg",
		FormatPNG:  "png",
		FormatJPEG: "jpg",
		FormatWebP: "webp",
	}
	for in, want := range tests {
		if got := Extension(in); got != want {
			t.Errorf("Extension(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestRasterizeSizeAndFill(t *testing.T) {
	img := rasterizeTest(t, 60, 40, "#C5B5A0", "FARMS 60x40")

	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Fatalf("bounds = %v; want 60x40", b)
	}

	// Corners sit outside the label, so they carry the fill color.
	want := color.RGBA{R: 0xC5, G: 0xB5, B: 0xA0, A: 0xFF}
	for _, p := range []image.Point{{0, 0}, {59, 0}, {0, 39}, {59, 39}} {
		got := color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA)
		if got != want {
			t.Errorf("pixel %v = %v; want %v", p, got, want)
		}
	}
}

func TestRasterizeDrawsLabel(t *testing.T) {
	img := rasterizeTest(t, 200, 60, "#FFFFFF", "EVENTS 200x60")

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	inked := 0
	for y := 20; y < 40; y++ {
		for x := 40; x < 160; x++ {
			if color.RGBAModel.Convert(img.At(x, y)).(color.RGBA) != white {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("expected label pixels near the center of the canvas")
	}
}

func TestRasterizeNonASCIILabel(t *testing.T) {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for _, label := range []string{"ÉVÉNEMENTS 200x60", "写真 200x60"} {
		img := rasterizeTest(t, 200, 60, "#FFFFFF", label)
		inked := false
		for y := 20; y < 40 && !inked; y++ {
			for x := 40; x < 160; x++ {
				if color.RGBAModel.Convert(img.At(x, y)).(color.RGBA) != white {
					inked = true
					break
				}
			}
		}
		if !inked {
			t.Errorf("label %q: expected glyphs near the center of the canvas", label)
		}
	}
}

func TestRasterizeErrors(t *testing.T) {
	svg := []byte(render.SVG(10, 10, "#000000", "X"))
	if _, err := Rasterize(svg, 0, 10, "#000000", "X", render.LabelColor); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := Rasterize(svg, 10, 10, "definitely-not-a-color", "X", render.LabelColor); err == nil {
		t.Error("expected error for malformed fill color")
	}
	if _, err := Rasterize(svg, 10, 10, "none", "X", render.LabelColor); err == nil {
		t.Error("expected error for unpaintable fill color")
	}
}

func TestEncode(t *testing.T) {
	img := rasterizeTest(t, 32, 24, "#7D7050", "P")

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, img, FormatPNG, 75); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		decoded, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("png.Decode: %v", err)
		}
		if decoded.Bounds().Dx() != 32 || decoded.Bounds().Dy() != 24 {
			t.Errorf("bounds = %v", decoded.Bounds())
		}
	})

	t.Run("jpeg", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, img, FormatJPEG, 80); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		decoded, err := jpeg.Decode(&buf)
		if err != nil {
			t.Fatalf("jpeg.Decode: %v", err)
		}
		if decoded.Bounds().Dx() != 32 {
			t.Errorf("width = %d; want 32", decoded.Bounds().Dx())
		}
	})

	t.Run("webp", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, img, FormatWebP, 80); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		decoded, err := webp.Decode(&buf)
		if err != nil {
			t.Fatalf("webp.Decode: %v", err)
		}
		if decoded.Bounds().Dy() != 24 {
			t.Errorf("height = %d; want 24", decoded.Bounds().Dy())
		}
	})

	t.Run("svg rejected", func(t *testing.T) {
		if err := Encode(&bytes.Buffer{}, img, FormatSVG, 75); err == nil {
			t.Error("expected error encoding svg as raster")
		}
	})
}
