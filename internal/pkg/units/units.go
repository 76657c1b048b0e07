// Package units converts between human-friendly measurements and EMU
// (English Metric Units), the native linear unit of the Google Slides API.
package units

import "math"

// EMU conversion constants.
const (
	EMUPerInch       = 914400
	EMUPerPoint      = 12700
	EMUPerCentimeter = 360000
	EMUPerPixel96DPI = 9525
)

// Standard slide dimensions in EMU. 16:9 widescreen is the API default.
const (
	SlideWidthEMU      = 9144000 // 10 inches
	SlideHeight16x9EMU = 5143500 // 5.625 inches
	SlideHeight4x3EMU  = 6858000 // 7.5 inches
	SlideHeight16x10   = 5715000 // 6.25 inches
)

// InchesToEMU converts inches to EMU, rounded to the nearest integer EMU.
func InchesToEMU(inches float64) int64 {
	return int64(math.Round(inches * EMUPerInch))
}

// EMUToInches converts EMU to inches.
func EMUToInches(emu int64) float64 {
	return float64(emu) / EMUPerInch
}

// PointsToEMU converts points to EMU. Points are commonly used for font sizes.
func PointsToEMU(points float64) int64 {
	return int64(math.Round(points * EMUPerPoint))
}

// EMUToPoints converts EMU to points.
func EMUToPoints(emu int64) float64 {
	return float64(emu) / EMUPerPoint
}

// CentimetersToEMU converts centimeters to EMU.
func CentimetersToEMU(cm float64) int64 {
	return int64(math.Round(cm * EMUPerCentimeter))
}

// EMUToCentimeters converts EMU to centimeters.
func EMUToCentimeters(emu int64) float64 {
	return float64(emu) / EMUPerCentimeter
}

// PixelsToEMU converts pixels to EMU at the given DPI.
// Pass 96 for the standard screen resolution.
func PixelsToEMU(pixels float64, dpi int) int64 {
	if dpi == 96 {
		return int64(math.Round(pixels * EMUPerPixel96DPI))
	}
	return int64(math.Round(pixels * EMUPerInch / float64(dpi)))
}

// EMUToPixels converts EMU to pixels at the given DPI.
func EMUToPixels(emu int64, dpi int) float64 {
	if dpi == 96 {
		return float64(emu) / EMUPerPixel96DPI
	}
	return float64(emu) * float64(dpi) / EMUPerInch
}
