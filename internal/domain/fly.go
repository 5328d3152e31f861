package domain

// Rect is the on-screen bounding box of the element that started an action
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
}

// Point is a screen coordinate
type Point struct {
	X float64 `json:"left"`
	Y float64 `json:"top"`
}

// OriginEvent describes the UI event that triggered an add-to-cart
type OriginEvent struct {
	Target *Rect `json:"target,omitempty"`
}

// Center returns the center of the target's bounding box.
// ok is false when the event has no resolvable position.
func (e *OriginEvent) Center() (Point, bool) {
	if e == nil || e.Target == nil {
		return Point{}, false
	}
	return Point{
		X: e.Target.Left + e.Target.Width/2,
		Y: e.Target.Top + e.Target.Height/2,
	}, true
}

// FlySignal drives the "fly to cart" effect in the presentation layer.
// Consumers detect a new animation by observing SequenceID change.
type FlySignal struct {
	SequenceID uint64 `json:"id"`
	Origin     *Point `json:"rect"`
	ImageRef   string `json:"img"`
}
