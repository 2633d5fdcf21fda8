// Package render provides paint surfaces for marker drawing.
//
// [Raster] paints into any draw.Image with anti-aliased coverage and is the
// surface to use when compositing markers over a rendered page bitmap.
// [HTMLOverlay] records the same requests as absolutely-positioned HTML
// elements for viewers that layer markers over a page in a browser.
//
// Both types satisfy the marker package's Surface interface.
package render
