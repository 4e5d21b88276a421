// component/movement.go
package component

import "image"

// MidBottom returns a w×h rectangle whose bottom edge is centred on (x, y).
func MidBottom(x, y, w, h int) image.Rectangle {
	return image.Rect(x-w/2, y-h, x-w/2+w, y)
}

// Center returns the centre point of r.
func Center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}
