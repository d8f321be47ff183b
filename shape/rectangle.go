// Package shape holds the rectangle value type and its codec binding.
package shape

import (
	"github.com/reoring/selkit/codec"
)

// TypeName identifies Rectangle in a codec.Registry.
const TypeName = "rectangle"

// Rectangle is a plain width/height pair. Area is derived on demand and
// never serialized.
type Rectangle struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func New(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

func (r Rectangle) Area() float64 { return r.Width * r.Height }

// Decode builds a Rectangle from decoded fields by name.
func Decode(f codec.Fields) (Rectangle, error) {
	if err := f.Require("width", "height"); err != nil {
		return Rectangle{}, err
	}
	w, err := f.Float("width")
	if err != nil {
		return Rectangle{}, err
	}
	h, err := f.Float("height")
	if err != nil {
		return Rectangle{}, err
	}
	return New(w, h), nil
}

// Register binds Decode to TypeName.
func Register(r *codec.Registry) {
	r.Register(TypeName, func(f codec.Fields) (any, error) { return Decode(f) })
}
