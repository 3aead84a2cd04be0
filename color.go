package sparkline

import (
	"image/color"

	"github.com/icza/gox/imagex/colorx"
)

// ParseColor reads a series color written as #rrggbb or #rgb.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorx.ParseHexColor(hex)
	if err != nil {
		return color.RGBA{}, err
	}

	// Series colors are plain RGB triples
	c.A = 0xff

	return c, nil
}
