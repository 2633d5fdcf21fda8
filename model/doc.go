// Package model provides the geometric value types used throughout the
// library.
//
// All types in this package are plain immutable values with no identity
// beyond their fields. Every function is pure and safe for unrestricted
// concurrent use.
//
// # Coordinate System
//
// Page coordinates are bottom-left-origin with Y increasing upward, the
// convention used by PDF page content. Device coordinates (top-left origin)
// only appear after a [Matrix] built by the viewport package has been
// applied; nothing in this package assumes them.
//
// # Geometry
//
//   - [Point] - 2D point
//   - [Size] - page width and height
//   - [BBox] - bounding box with two-corner construction, intersection and
//     containment tests
//   - [Matrix] - 2D affine transformation matrix
//   - [Color] - device-RGB color with alpha
//
// # Rotation Frames
//
// A [Rotation] is one of four clockwise quarter-turn values. A rectangle
// authored while a page was displayed under one rotation can be re-expressed
// in the frame of another rotation with the pure transform functions:
//
//   - [TranslateSize] - apparent page size under a rotation
//   - [DiffRotation] - additional rotation between two frames
//   - [RotatePoint], [RotateBBox] - clockwise rotation within a page extent
//
// These four functions carry the coordinate consistency guarantees the rest
// of the library is built on; see the marker package for how they compose.
package model
