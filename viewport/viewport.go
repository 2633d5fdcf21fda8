package viewport

import (
	"errors"
	"fmt"

	"github.com/factset/pagemark/model"
)

// ErrPageOutOfRange is wrapped by errors for page indexes a document does
// not have.
var ErrPageOutOfRange = errors.New("page out of range")

// Document supplies unrotated page sizes by page index.
type Document interface {
	PageCount() int
	PageSize(page int) (model.Size, error)
}

// StaticDocument is an in-memory Document over a fixed list of page sizes.
// It is useful for tests and for callers that already know their page
// geometry.
type StaticDocument []model.Size

// PageCount returns the number of pages.
func (d StaticDocument) PageCount() int { return len(d) }

// PageSize returns the unrotated size of a page.
func (d StaticDocument) PageSize(page int) (model.Size, error) {
	if page < 0 || page >= len(d) {
		return model.Size{}, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, page, len(d))
	}
	return d[page], nil
}

// Viewport maps document-space rectangles to device coordinates for one
// displayed document. It composes the current display rotation, a zoom
// factor, and a device offset (scroll position) into a single affine
// transform per page.
//
// Device coordinates are top-left-origin with Y increasing downward, the
// convention of raster images and screens. A Viewport is not safe for
// concurrent mutation; configure it before sharing.
type Viewport struct {
	doc      Document
	rotation model.Rotation
	zoom     float64
	offsetX  float64
	offsetY  float64
}

// New creates a viewport over a document with no rotation, unit zoom, and
// zero offset.
func New(doc Document) *Viewport {
	return &Viewport{doc: doc, zoom: 1}
}

// SetRotation sets the display rotation.
func (v *Viewport) SetRotation(r model.Rotation) { v.rotation = r }

// SetZoom sets the zoom factor. Non-positive factors are rejected.
func (v *Viewport) SetZoom(zoom float64) error {
	if zoom <= 0 {
		return fmt.Errorf("zoom %v must be positive", zoom)
	}
	v.zoom = zoom
	return nil
}

// SetOffset sets the device-space offset added after rotation and zoom,
// typically the negated scroll position.
func (v *Viewport) SetOffset(x, y float64) {
	v.offsetX = x
	v.offsetY = y
}

// DisplayRotation returns the current display rotation.
func (v *Viewport) DisplayRotation() model.Rotation { return v.rotation }

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// PageSize returns the unrotated size of a page, as stored by the document.
func (v *Viewport) PageSize(page int) (model.Size, error) {
	return v.doc.PageSize(page)
}

// frameToDevice maps the current rotation frame of a page (bottom-left
// origin, rotated extent) to device coordinates: flip Y over the rotated
// page height, zoom, then offset.
func (v *Viewport) frameToDevice(page int) (model.Matrix, error) {
	pageSize, err := v.doc.PageSize(page)
	if err != nil {
		return model.Matrix{}, err
	}
	rotated := model.TranslateSize(pageSize, v.rotation)

	flip := model.Scale(1, -1).Multiply(model.Translate(0, rotated.Height))
	return flip.Multiply(model.Scale(v.zoom, v.zoom)).
		Multiply(model.Translate(v.offsetX, v.offsetY)), nil
}

// PageToDevice returns the full transform from a page's unrotated
// bottom-left-origin coordinates to device coordinates, rotation included.
func (v *Viewport) PageToDevice(page int) (model.Matrix, error) {
	pageSize, err := v.doc.PageSize(page)
	if err != nil {
		return model.Matrix{}, err
	}
	frame, err := v.frameToDevice(page)
	if err != nil {
		return model.Matrix{}, err
	}
	return rotationMatrix(pageSize, v.rotation).Multiply(frame), nil
}

// DeviceBounds translates a document-space rectangle, already expressed in
// the current display frame, to device coordinates.
func (v *Viewport) DeviceBounds(page int, docRect model.BBox) (model.BBox, error) {
	m, err := v.frameToDevice(page)
	if err != nil {
		return model.BBox{}, err
	}
	return transformBBox(m, docRect), nil
}

// DocumentBounds is the inverse of DeviceBounds: it translates a device
// rectangle back to the current display frame of the page. This is how a
// selection dragged on screen becomes an authored marker rectangle.
func (v *Viewport) DocumentBounds(page int, deviceRect model.BBox) (model.BBox, error) {
	m, err := v.frameToDevice(page)
	if err != nil {
		return model.BBox{}, err
	}
	inv, err := m.Inverse()
	if err != nil {
		return model.BBox{}, err
	}
	return transformBBox(inv, deviceRect), nil
}

// rotationMatrix maps a page's unrotated bottom-left-origin coordinates into
// the rotated frame, translated so the rotated extent starts at the origin.
func rotationMatrix(pageSize model.Size, r model.Rotation) model.Matrix {
	lin := model.QuarterRotation(r)
	switch r {
	case model.Rotate90:
		return lin.Multiply(model.Translate(0, pageSize.Width))
	case model.Rotate180:
		return lin.Multiply(model.Translate(pageSize.Width, pageSize.Height))
	case model.Rotate270:
		return lin.Multiply(model.Translate(pageSize.Height, 0))
	default:
		return lin
	}
}

// transformBBox maps both opposite corners through the matrix and rebuilds a
// canonical box; the matrix may flip or swap the corners' ordering.
func transformBBox(m model.Matrix, b model.BBox) model.BBox {
	p1 := m.Transform(b.BottomLeft())
	p2 := m.Transform(b.TopRight())
	return model.NewBBoxFromPoints(p1, p2)
}
