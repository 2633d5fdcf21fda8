//go:build ocr

// Package ocr extracts the text underneath a marker.
//
// Given a rendered page image and a marker's device-space bounds, the
// [Client] crops the marked region and runs it through the Tesseract OCR
// engine via gosseract. It requires Tesseract to be installed on the
// system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/factset/pagemark/model"
)

// regionPadding is the margin, in device pixels, added around a marker's
// bounds before recognition. Tesseract performs poorly when glyphs touch
// the image edge.
const regionPadding = 4

// Client wraps Tesseract for text recognition under markers.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeRegion recognizes the text inside a device-space rectangle of a
// rendered page image, typically a marker's device bounds as returned by the
// viewport. The result is trimmed and normalized to NFC.
func (c *Client) RecognizeRegion(page image.Image, region model.BBox) (string, error) {
	cropped, err := crop(page, region.Expand(regionPadding))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return "", fmt.Errorf("failed to encode region: %w", err)
	}

	if err := c.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return norm.NFC.String(strings.TrimSpace(text)), nil
}

// crop extracts the part of the page covered by the region, clipped to the
// page bounds.
func crop(page image.Image, region model.BBox) (image.Image, error) {
	r := image.Rect(
		int(region.Left()), int(region.Bottom()),
		int(region.Right())+1, int(region.Top())+1,
	).Intersect(page.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("region %+v is outside the page image", region)
	}

	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	if s, ok := page.(subImager); ok {
		return s.SubImage(r), nil
	}

	out := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out.Set(x, y, page.At(x, y))
		}
	}
	return out, nil
}
