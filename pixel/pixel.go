package pixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"

	"github.com/chromakit/chroma"
)

// At samples the color at pixel (x, y). Coordinates outside the image
// bounds are an error.
func At(img image.Image, x, y int) (chroma.RGBA[uint8], error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return chroma.RGBA[uint8]{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return FromColor(img.At(x, y)), nil
}

// FromColor converts a standard library color to an 8-bit RGBA color,
// keeping the top byte of each 16-bit component.
func FromColor(c color.Color) chroma.RGBA[uint8] {
	r, g, b, a := c.RGBA()
	return chroma.NewRGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// ToColor converts an 8-bit RGBA color to a standard library color.
func ToColor(c chroma.RGBA[uint8]) color.RGBA {
	rgb := c.Color()
	return color.RGBA{R: rgb.Red(), G: rgb.Green(), B: rgb.Blue(), A: c.Alpha()}
}

// Map applies fn to every pixel and returns the result as a new image.
// The input is normalized to 8-bit RGBA first and is not modified.
func Map(img image.Image, fn func(chroma.RGBA[uint8]) chroma.RGBA[uint8]) *image.RGBA {
	out := clone.AsRGBA(img)
	pix := out.Pix

	for i := 0; i+3 < len(pix); i += 4 {
		c := fn(chroma.NewRGBA(pix[i], pix[i+1], pix[i+2], pix[i+3]))
		vals := c.AsSlice()
		copy(pix[i:i+4], vals)
	}
	return out
}

// Unpack flattens an image into row-major RGBA channel data, four bytes
// per pixel.
func Unpack(img image.Image) []uint8 {
	rgba := clone.AsRGBA(img)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	out := make([]uint8, 0, w*h*4)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		out = append(out, row...)
	}
	return out
}

// Pack builds an image from row-major RGBA channel data. The data length
// must be exactly width*height*4.
func Pack(width, height int, vals []uint8) (*image.RGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if len(vals) != width*height*4 {
		return nil, fmt.Errorf("channel data length %d does not match %dx%d pixels", len(vals), width, height)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		copy(out.Pix[y*out.Stride:], vals[y*width*4:(y+1)*width*4])
	}
	return out, nil
}
