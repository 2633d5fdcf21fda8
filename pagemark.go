// Package pagemark renders rectangular annotation overlays ("markers") on
// pages of a document whose display rotation can change independently of
// when each marker was authored.
//
// Basic usage:
//
//	doc := viewport.StaticDocument{{Width: 612, Height: 792}}
//	m := marker.Marker{
//	    Bounds: model.NewBBox(50, 50, 100, 50),
//	    Fill:   model.RGBA(1, 0.92, 0, 0.4),
//	}
//
//	err := pagemark.View(doc).
//	    Rotation(model.Rotate90).
//	    Zoom(1.5).
//	    Add(m).
//	    Draw(surface)
//
// Markers stay anchored to the same physical page region no matter how the
// display rotation changes between authoring and drawing; the marker and
// model packages carry that guarantee and are usable on their own for
// callers that do not want the fluent API.
package pagemark

import (
	"fmt"

	"github.com/factset/pagemark/marker"
	"github.com/factset/pagemark/model"
	"github.com/factset/pagemark/viewport"
)

// Overlay accumulates markers and display configuration for one document and
// draws them onto a surface. Configuration errors are deferred and returned
// from the terminal Draw calls, so calls chain without intermediate checks.
type Overlay struct {
	doc     viewport.Document
	opts    viewOptions
	markers []marker.Marker
	err     error
}

// View creates an overlay for a document with no rotation, unit zoom, and
// zero offset.
func View(doc viewport.Document) *Overlay {
	return &Overlay{
		doc:  doc,
		opts: defaultViewOptions(),
	}
}

// Rotation sets the display rotation the markers are drawn under.
func (o *Overlay) Rotation(r model.Rotation) *Overlay {
	o.opts.rotation = r
	return o
}

// Zoom sets the zoom factor. Non-positive values are an error, reported by
// the terminal Draw call.
func (o *Overlay) Zoom(zoom float64) *Overlay {
	if zoom <= 0 {
		o.setErr(fmt.Errorf("zoom %v must be positive", zoom))
		return o
	}
	o.opts.zoom = zoom
	return o
}

// Offset sets the device offset added after rotation and zoom, typically
// the negated scroll position.
func (o *Overlay) Offset(x, y float64) *Overlay {
	o.opts.offsetX = x
	o.opts.offsetY = y
	return o
}

// Add appends markers to the overlay.
func (o *Overlay) Add(markers ...marker.Marker) *Overlay {
	o.markers = append(o.markers, markers...)
	return o
}

// Markers returns the markers added so far.
func (o *Overlay) Markers() []marker.Marker {
	return o.markers
}

// Draw paints every marker onto the surface, in the order added. The first
// failure stops the walk and is returned.
func (o *Overlay) Draw(surface marker.Surface) error {
	return o.draw(surface, func(marker.Marker) bool { return true })
}

// DrawPage paints only the markers on the given page.
func (o *Overlay) DrawPage(surface marker.Surface, page int) error {
	return o.draw(surface, func(m marker.Marker) bool { return m.Page == page })
}

func (o *Overlay) draw(surface marker.Surface, keep func(marker.Marker) bool) error {
	if o.err != nil {
		return o.err
	}

	vp := viewport.New(o.doc)
	vp.SetRotation(o.opts.rotation)
	if err := vp.SetZoom(o.opts.zoom); err != nil {
		return err
	}
	vp.SetOffset(o.opts.offsetX, o.opts.offsetY)

	for i, m := range o.markers {
		if !keep(m) {
			continue
		}
		if err := marker.Draw(m, vp, surface); err != nil {
			return fmt.Errorf("marker %d: %w", i, err)
		}
	}
	return nil
}

func (o *Overlay) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
