// Package viewport maps document-space rectangles to device coordinates.
//
// A [Viewport] holds the view state of one displayed document — rotation,
// zoom, scroll offset — and implements the render context consumed by the
// marker package. [Document] is the only thing it needs from the document
// side; [StaticDocument] satisfies it without any file parsing.
package viewport
