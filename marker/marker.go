package marker

import "github.com/factset/pagemark/model"

// Marker is a rectangular annotation overlay on a document page.
//
// Bounds is expressed in the bottom-left-origin frame the page was displayed
// under when the marker was authored, recorded in RotationAtCreation. The
// bounds are only meaningful together with that rotation and the page's
// unrotated size; the three determine the marker's physical location on the
// page no matter how the page is displayed later.
//
// Markers are immutable values. They may be shared read-only across
// concurrent draw operations without synchronization.
type Marker struct {
	// Page is the zero-based index of the page the marker belongs to.
	// The marker does not own the page; its size is looked up from the
	// document at draw time.
	Page int

	// Bounds is the marker rectangle in the frame of RotationAtCreation.
	Bounds model.BBox

	// Fill is the interior color.
	Fill model.Color

	// Border is the outline color, used when BorderWidth > 0.
	Border model.Color

	// BorderWidth is the outline width in page units. Zero means no border.
	BorderWidth float64

	// RotationAtCreation is the display rotation in effect when Bounds
	// was authored.
	RotationAtCreation model.Rotation
}

// New creates a marker from two diagonally opposite corners of its
// rectangle, in the frame of the given creation rotation.
func New(page int, p1, p2 model.Point, rotation model.Rotation) Marker {
	return Marker{
		Page:               page,
		Bounds:             model.NewBBoxFromPoints(p1, p2),
		RotationAtCreation: rotation,
	}
}

// CurrentBounds re-expresses the marker's rectangle in the frame of the
// given display rotation.
//
// The rotation is applied against the page size as it appeared at creation
// time, not the raw unrotated size: a marker authored on a sideways page was
// authored against swapped width/height, and rotating its bounds inside the
// wrong extent would land it on the wrong physical region.
func (m Marker) CurrentBounds(display model.Rotation, unrotatedPageSize model.Size) model.BBox {
	pageSizeAtCreation := model.TranslateSize(unrotatedPageSize, m.RotationAtCreation)
	delta := model.DiffRotation(m.RotationAtCreation, display)
	return model.RotateBBox(m.Bounds, pageSizeAtCreation, delta)
}
