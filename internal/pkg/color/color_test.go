package color

import (
	"errors"
	"math"
	"testing"

	slidespb "google.golang.org/api/slides/v1"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		r, g, b float64
		wantErr bool
	}{
		{"black", "#000000", 0, 0, 0, false},
		{"white", "#FFFFFF", 1, 1, 1, false},
		{"red", "#FF0000", 1, 0, 0, false},
		{"no hash", "FF8800", 1, 0x88 / 255.0, 0, false},
		{"lowercase", "#ff8800", 1, 0x88 / 255.0, 0, false},
		{"mixed case", "#Ff8800", 1, 0x88 / 255.0, 0, false},
		{"shorthand", "#F53", 1, 0x55 / 255.0, 0x33 / 255.0, false},
		{"shorthand no hash", "FFF", 1, 1, 1, false},
		{"not hex", "ZZZZZZ", 0, 0, 0, true},
		{"too short", "#FF55", 0, 0, 0, true},
		{"too long", "#FFFFFFFF", 0, 0, 0, true},
		{"empty", "", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rgb, err := HexToRGB(tt.hex)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("err = %v, want ErrInvalidColor", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(rgb.Red-tt.r) > 0.002 || math.Abs(rgb.Green-tt.g) > 0.002 || math.Abs(rgb.Blue-tt.b) > 0.002 {
				t.Errorf("got (%f, %f, %f), want (%f, %f, %f)", rgb.Red, rgb.Green, rgb.Blue, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHexToRGBShorthandExpansion(t *testing.T) {
	short, err := HexToRGB("F53")
	if err != nil {
		t.Fatalf("shorthand: %v", err)
	}
	full, err := HexToRGB("FF5533")
	if err != nil {
		t.Fatalf("full form: %v", err)
	}
	if short.Red != full.Red || short.Green != full.Green || short.Blue != full.Blue {
		t.Errorf("F53 = %+v, FF5533 = %+v, want equal channels", short, full)
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		name    string
		rgb     *slidespb.RgbColor
		want    string
		wantErr bool
	}{
		{"white", &slidespb.RgbColor{Red: 1, Green: 1, Blue: 1}, "#FFFFFF", false},
		{"black", &slidespb.RgbColor{}, "#000000", false},
		{"nil defaults to black", nil, "#000000", false},
		{"orange", &slidespb.RgbColor{Red: 1, Green: 0x88 / 255.0}, "#FF8800", false},
		{"red too high", &slidespb.RgbColor{Red: 1.5}, "", true},
		{"negative channel", &slidespb.RgbColor{Blue: -0.1}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RGBToHex(tt.rgb)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("err = %v, want ErrInvalidColor", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#FF5733", "#123456", "#A1B2C3"} {
		rgb, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%q): %v", hex, err)
		}
		got, err := RGBToHex(rgb)
		if err != nil {
			t.Fatalf("RGBToHex after %q: %v", hex, err)
		}
		if got != hex {
			t.Errorf("round trip of %q = %q", hex, got)
		}
	}
}

func TestSolidFill(t *testing.T) {
	fill, err := SolidFill("#FF0000", 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fill.Alpha != 0.5 {
		t.Errorf("alpha = %v, want 0.5", fill.Alpha)
	}
	if fill.Color == nil || fill.Color.RgbColor == nil || fill.Color.RgbColor.Red != 1 {
		t.Errorf("fill color = %+v, want red", fill.Color)
	}

	if _, err := SolidFill("nope", 1); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("err = %v, want ErrInvalidColor", err)
	}
}
