// Package marker defines rectangular page annotations and the logic that
// keeps them anchored to the correct physical page region as the display
// rotation changes.
//
// A [Marker] records the rectangle a user drew, the page it belongs to, and
// the display rotation in effect at the time. When the page is later shown
// under a different rotation, [Marker.CurrentBounds] re-expresses the
// rectangle in the new frame using the pure transforms from the model
// package.
//
// [Draw] is the single entry point for painting: it computes current-frame
// bounds, asks a [RenderContext] for the device rectangle, and issues fill
// and stroke requests to a [Surface]. Both collaborators are narrow
// interfaces so the package can be exercised against fakes; the viewport and
// render packages provide production implementations.
package marker
