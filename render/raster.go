package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/factset/pagemark/model"
)

// Raster paints marker rectangles into an in-memory image with anti-aliased
// edges. Device coordinates map directly to pixels: the rectangle's X/Y is
// its top-left corner, matching the viewport package's device space.
type Raster struct {
	dst draw.Image
}

// NewRaster creates a surface painting into dst. The image is typically a
// rendered page; markers composite over its existing pixels.
func NewRaster(dst draw.Image) *Raster {
	return &Raster{dst: dst}
}

// FillRect paints the rectangle's interior. Transparent colors paint
// nothing.
func (s *Raster) FillRect(r model.BBox, c model.Color) error {
	if c.IsTransparent() || r.IsEmpty() {
		return nil
	}

	z := s.newRasterizer()
	addRect(z, r)
	s.rasterize(z, c)
	return nil
}

// StrokeRect paints the rectangle's outline as a band of the given width
// centered on the edge. A band too wide for the rectangle degenerates to a
// filled rectangle.
func (s *Raster) StrokeRect(r model.BBox, c model.Color, width float64) error {
	if c.IsTransparent() || width <= 0 || r.IsEmpty() {
		return nil
	}

	outer := r.Expand(width / 2)
	inner := r.Expand(-width / 2)

	z := s.newRasterizer()
	addRect(z, outer)
	if inner.IsEmpty() {
		s.rasterize(z, c)
		return nil
	}
	addRectReversed(z, inner) // opposite winding cuts the hole
	s.rasterize(z, c)
	return nil
}

func (s *Raster) newRasterizer() *vector.Rasterizer {
	b := s.dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (s *Raster) rasterize(z *vector.Rasterizer, c model.Color) {
	b := s.dst.Bounds()
	src := image.NewUniform(c.NRGBA())
	z.Draw(s.dst, b, src, image.Point{})
}

func addRect(z *vector.Rasterizer, r model.BBox) {
	z.MoveTo(float32(r.Left()), float32(r.Bottom()))
	z.LineTo(float32(r.Right()), float32(r.Bottom()))
	z.LineTo(float32(r.Right()), float32(r.Top()))
	z.LineTo(float32(r.Left()), float32(r.Top()))
	z.ClosePath()
}

func addRectReversed(z *vector.Rasterizer, r model.BBox) {
	z.MoveTo(float32(r.Left()), float32(r.Bottom()))
	z.LineTo(float32(r.Left()), float32(r.Top()))
	z.LineTo(float32(r.Right()), float32(r.Top()))
	z.LineTo(float32(r.Right()), float32(r.Bottom()))
	z.ClosePath()
}
