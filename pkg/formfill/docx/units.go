package docx

import "math"

// TwipsPerPoint is the number of twentieths of a point per point.
// WordprocessingML measures page geometry in twips.
const TwipsPerPoint = 20

// PointsPerInch is the number of typographic points per inch.
const PointsPerInch = 72

// MillimetersPerInch is the number of millimeters per inch.
const MillimetersPerInch = 25.4

// PointsToHalfPoints converts a font size in points to the half-point unit
// used by w:sz.
func PointsToHalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

// MillimetersToTwips converts a length in millimeters to twips.
func MillimetersToTwips(mm float64) int {
	return int(math.Round(mm / MillimetersPerInch * PointsPerInch * TwipsPerPoint))
}
