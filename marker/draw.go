package marker

import (
	"errors"
	"fmt"

	"github.com/factset/pagemark/model"
)

// ErrInvalidArgument is wrapped by the argument errors returned from Draw.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrNilContext is returned when Draw is called without a render context.
	ErrNilContext = fmt.Errorf("%w: nil render context", ErrInvalidArgument)

	// ErrNilSurface is returned when Draw is called without a paint surface.
	ErrNilSurface = fmt.Errorf("%w: nil surface", ErrInvalidArgument)
)

// RenderContext describes the display the marker is drawn into. It is the
// document/viewer side of the drawing operation: it knows page sizes and how
// the current rotation, zoom, and scroll place a page rectangle on the
// device.
type RenderContext interface {
	// PageSize returns the unrotated size of a page.
	PageSize(page int) (model.Size, error)

	// DisplayRotation returns the rotation the document is currently
	// displayed under.
	DisplayRotation() model.Rotation

	// DeviceBounds translates a document-space rectangle, expressed in the
	// current display frame, to device coordinates.
	DeviceBounds(page int, docRect model.BBox) (model.BBox, error)
}

// Surface accepts paint requests in device coordinates.
type Surface interface {
	FillRect(r model.BBox, c model.Color) error
	StrokeRect(r model.BBox, c model.Color, width float64) error
}

// Draw paints the marker onto the surface.
//
// The marker's bounds are first re-expressed in the current display frame,
// then translated to device coordinates by the render context. The fill is
// always painted; the border only when BorderWidth is positive, so a drawn
// marker issues exactly one or two paint calls.
//
// Errors from the context or surface propagate to the caller unchanged in
// cause; nothing is retried or suppressed.
func Draw(m Marker, ctx RenderContext, surface Surface) error {
	if ctx == nil {
		return ErrNilContext
	}
	if surface == nil {
		return ErrNilSurface
	}

	pageSize, err := ctx.PageSize(m.Page)
	if err != nil {
		return fmt.Errorf("page %d size: %w", m.Page, err)
	}

	bounds := m.CurrentBounds(ctx.DisplayRotation(), pageSize)

	deviceRect, err := ctx.DeviceBounds(m.Page, bounds)
	if err != nil {
		return fmt.Errorf("page %d device bounds: %w", m.Page, err)
	}

	if err := surface.FillRect(deviceRect, m.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if m.BorderWidth > 0 {
		if err := surface.StrokeRect(deviceRect, m.Border, m.BorderWidth); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	return nil
}
