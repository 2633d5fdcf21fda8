package render

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/factset/pagemark/model"
)

// HTMLOverlay records paint requests and serializes them as an HTML overlay:
// a relatively-positioned container with one absolutely-positioned <div> per
// request. Layered over a page image of the same device size, the divs cover
// the same regions the Raster surface would paint.
type HTMLOverlay struct {
	width  float64
	height float64
	divs   []*html.Node
}

// NewHTMLOverlay creates an overlay for a device area of the given size in
// CSS pixels.
func NewHTMLOverlay(width, height float64) *HTMLOverlay {
	return &HTMLOverlay{width: width, height: height}
}

// FillRect records a filled rectangle. Transparent colors record nothing.
func (s *HTMLOverlay) FillRect(r model.BBox, c model.Color) error {
	if c.IsTransparent() || r.IsEmpty() {
		return nil
	}
	style := fmt.Sprintf("%s;background:%s", positionStyle(r), cssColor(c))
	s.divs = append(s.divs, overlayDiv("pagemark-fill", style))
	return nil
}

// StrokeRect records a stroked rectangle as a border-only div. The border
// is drawn centered on the rectangle edge, like the Raster surface's stroke.
func (s *HTMLOverlay) StrokeRect(r model.BBox, c model.Color, width float64) error {
	if c.IsTransparent() || width <= 0 || r.IsEmpty() {
		return nil
	}
	// the div box is the outer stroke extent; the CSS border fills it inward
	outer := r.Expand(width / 2)
	style := fmt.Sprintf("%s;border:%spx solid %s;box-sizing:border-box",
		positionStyle(outer), cssLength(width), cssColor(c))
	s.divs = append(s.divs, overlayDiv("pagemark-stroke", style))
	return nil
}

// Len returns the number of recorded paint requests.
func (s *HTMLOverlay) Len() int { return len(s.divs) }

// Render writes the overlay as an HTML fragment.
func (s *HTMLOverlay) Render(w io.Writer) error {
	container := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr: []html.Attribute{
			{Key: "class", Val: "pagemark-overlay"},
			{Key: "style", Val: fmt.Sprintf("position:relative;width:%spx;height:%spx",
				cssLength(s.width), cssLength(s.height))},
		},
	}
	for _, div := range s.divs {
		container.AppendChild(div)
	}
	return html.Render(w, container)
}

func overlayDiv(class, style string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr: []html.Attribute{
			{Key: "class", Val: class},
			{Key: "style", Val: style},
		},
	}
}

func positionStyle(r model.BBox) string {
	return fmt.Sprintf("position:absolute;left:%spx;top:%spx;width:%spx;height:%spx",
		cssLength(r.X), cssLength(r.Y), cssLength(r.Width), cssLength(r.Height))
}

func cssLength(v float64) string {
	return fmt.Sprintf("%g", v)
}

func cssColor(c model.Color) string {
	n := c.NRGBA()
	if n.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, c.A)
}
