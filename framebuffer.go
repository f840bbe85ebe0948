package membuf

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// pixelStride is the byte width of one framebuffer pixel (RGBA).
const pixelStride = 4

// DoubleFramebuffer holds two equally-sized RGBA pixel buffers. Writes go
// to the back buffer; reads come from the front buffer only, so callers
// never observe a partially-drawn frame. Swap propagates the back buffer's
// bytes over the front buffer (content copy, not pointer exchange) and
// clears the dirty flag.
//
// Pixel (x,y) maps to byte offset (y*width+x)*4. Out-of-range coordinates
// make SetPixel a failed no-op and GetPixel return a zeroed Pixel.
type DoubleFramebuffer struct {
	width  int
	height int
	front  *RawBuffer // presented; read-only to callers between swaps
	back   *RawBuffer // write target
	dirty  bool       // back buffer has unflushed writes since last swap
}

// NewDoubleFramebuffer creates a framebuffer with zeroed (transparent
// black) front and back buffers.
func NewDoubleFramebuffer(width, height int) (*DoubleFramebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("membuf: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	front, err := NewRawBuffer(width * height * pixelStride)
	if err != nil {
		return nil, err
	}
	back, err := NewRawBuffer(width * height * pixelStride)
	if err != nil {
		return nil, err
	}
	return &DoubleFramebuffer{width: width, height: height, front: front, back: back}, nil
}

// Width returns the framebuffer width in pixels.
func (f *DoubleFramebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *DoubleFramebuffer) Height() int {
	return f.height
}

// IsDirty reports whether the back buffer has writes not yet swapped in.
func (f *DoubleFramebuffer) IsDirty() bool {
	return f.dirty
}

// inBounds reports whether (x,y) addresses a pixel.
func (f *DoubleFramebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// SetPixel writes one pixel into the back buffer and marks it dirty.
// Returns false, leaving both buffers and the dirty flag unchanged, when
// (x,y) is out of range.
func (f *DoubleFramebuffer) SetPixel(x, y int, p Pixel) bool {
	if !f.inBounds(x, y) {
		return false
	}
	i := (y*f.width + x) * pixelStride
	data := f.back.Bytes()
	data[i+0] = p.R
	data[i+1] = p.G
	data[i+2] = p.B
	data[i+3] = p.A
	f.dirty = true
	return true
}

// GetPixel reads one pixel from the front buffer. The back buffer is never
// consulted: callers observe only swapped-in content. Out-of-range
// coordinates return a zeroed Pixel.
func (f *DoubleFramebuffer) GetPixel(x, y int) Pixel {
	if !f.inBounds(x, y) {
		return Pixel{}
	}
	i := (y*f.width + x) * pixelStride
	data := f.front.Bytes()
	return Pixel{R: data[i+0], G: data[i+1], B: data[i+2], A: data[i+3]}
}

// Clear fills the entire back buffer with the given pixel and marks it dirty.
func (f *DoubleFramebuffer) Clear(p Pixel) {
	data := f.back.Bytes()
	for i := 0; i < len(data); i += pixelStride {
		data[i+0] = p.R
		data[i+1] = p.G
		data[i+2] = p.B
		data[i+3] = p.A
	}
	f.dirty = true
}

// DrawLine rasterizes the segment from (x1,y1) to (x2,y2) inclusive into
// the back buffer using Bresenham's integer algorithm: error accumulator
// err = dx - dy with doubled-error branch comparisons, no floating point.
// Pixels falling outside the framebuffer are skipped by SetPixel's bounds
// check; the walk itself always terminates at (x2,y2).
func (f *DoubleFramebuffer) DrawLine(x1, y1, x2, y2 int, p Pixel) {
	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		f.SetPixel(x1, y1, p)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawRect outlines the axis-aligned rectangle with corners (x1,y1) and
// (x2,y2) in the back buffer.
func (f *DoubleFramebuffer) DrawRect(x1, y1, x2, y2 int, p Pixel) {
	f.DrawLine(x1, y1, x2, y1, p)
	f.DrawLine(x2, y1, x2, y2, p)
	f.DrawLine(x2, y2, x1, y2, p)
	f.DrawLine(x1, y2, x1, y1, p)
}

// DrawString renders s into the back buffer with the built-in 7x13 bitmap
// face. (x,y) is the baseline origin of the first glyph.
func (f *DoubleFramebuffer) DrawString(x, y int, s string, p Pixel) {
	d := &font.Drawer{
		Dst:  &backImage{fb: f},
		Src:  image.NewUniform(p.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Swap propagates the back buffer into the front buffer if the back buffer
// is dirty, clears the flag, and returns true. When nothing was drawn since
// the last swap it is a no-op returning false.
func (f *DoubleFramebuffer) Swap() bool {
	if !f.dirty {
		return false
	}
	f.front.CopyFrom(f.back)
	f.dirty = false
	Logger().Debug("framebuffer swapped", "width", f.width, "height", f.height,
		"bytes", f.front.Len())
	return true
}

// ColorModel implements the image.Image interface.
func (f *DoubleFramebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (f *DoubleFramebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements the image.Image interface, reading the front buffer.
func (f *DoubleFramebuffer) At(x, y int) color.Color {
	p := f.GetPixel(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Image returns a snapshot of the front buffer as an image.RGBA.
func (f *DoubleFramebuffer) Image() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	copy(img.Pix, f.front.Bytes())
	return img
}

// Thumbnail returns a nearest-neighbor scaled snapshot of the front buffer.
// Returns nil for non-positive dimensions.
func (f *DoubleFramebuffer) Thumbnail(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), f, f.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG saves the front buffer to a PNG file.
func (f *DoubleFramebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return png.Encode(file, f.Image())
}

// backImage adapts the back buffer to draw.Image so x/image text and
// compositing routines can target it. Set goes through SetPixel, keeping
// bounds leniency and dirty tracking; At reads the back buffer because
// compositing blends against the surface being drawn, not the presented one.
type backImage struct {
	fb *DoubleFramebuffer
}

func (b *backImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *backImage) Bounds() image.Rectangle {
	return b.fb.Bounds()
}

func (b *backImage) At(x, y int) color.Color {
	if !b.fb.inBounds(x, y) {
		return color.RGBA{}
	}
	i := (y*b.fb.width + x) * pixelStride
	data := b.fb.back.Bytes()
	return color.RGBA{R: data[i+0], G: data[i+1], B: data[i+2], A: data[i+3]}
}

func (b *backImage) Set(x, y int, c color.Color) {
	b.fb.SetPixel(x, y, FromColor(c))
}

// absInt returns the absolute value of x.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
