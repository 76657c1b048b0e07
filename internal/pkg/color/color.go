// Package color converts between hex color strings and the normalized-float
// RGB representation used by the Google Slides API.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	slidespb "google.golang.org/api/slides/v1"
)

// ErrInvalidColor reports a malformed hex string or an out-of-range channel.
var ErrInvalidColor = errors.New("invalid color")

// HexToRGB converts a hex color string (#RRGGBB, RRGGBB, or #RGB shorthand)
// to RGB float values in [0, 1]. A 3-digit shorthand is expanded by
// duplicating each digit ("F53" -> "FF5533").
func HexToRGB(hex string) (*slidespb.RgbColor, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) == 3 {
		var sb strings.Builder
		for _, c := range hex {
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		hex = sb.String()
	}

	if len(hex) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	channels := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		channels[i] = float64(v) / 255
	}

	return &slidespb.RgbColor{
		Red:   channels[0],
		Green: channels[1],
		Blue:  channels[2],
	}, nil
}

// RGBToHex converts normalized RGB floats to an uppercase "#RRGGBB" string.
// A nil input is treated as black. Channels outside [0, 1] are rejected.
func RGBToHex(rgb *slidespb.RgbColor) (string, error) {
	var r, g, b float64
	if rgb != nil {
		r, g, b = rgb.Red, rgb.Green, rgb.Blue
	}

	for name, v := range map[string]float64{"red": r, "green": g, "blue": b} {
		if v < 0 || v > 1 {
			return "", fmt.Errorf("%w: %s value %v out of range [0, 1]", ErrInvalidColor, name, v)
		}
	}

	return fmt.Sprintf("#%02X%02X%02X",
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)),
	), nil
}

// SolidFill builds a solid fill descriptor from a hex color and opacity.
// Alpha is the opacity in [0, 1]; validation of the hex string is delegated
// to HexToRGB.
func SolidFill(hex string, alpha float64) (*slidespb.SolidFill, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return nil, err
	}
	return &slidespb.SolidFill{
		Color: &slidespb.OpaqueColor{RgbColor: rgb},
		Alpha: alpha,
	}, nil
}
