// ABOUTME: BMI category enum and the classifier that derives it from a BMI value.
// ABOUTME: Thresholds are half-open: <18.5, <25, <30, else Obese.
package models

import "math"

// BMICategory is the derived body-mass-index classification of a respondent.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"

	// BMIMissing marks a respondent without a BMI value.
	BMIMissing BMICategory = ""
)

// BMICategories is the fixed display order used by every BMI grouping.
var BMICategories = []BMICategory{
	BMIUnderweight, BMINormal, BMIOverweight, BMIObese,
}

// Upper bounds (exclusive) of the first three categories.
const (
	underweightBelow = 18.5
	normalBelow      = 25.0
	overweightBelow  = 30.0
)

// ClassifyBMI maps a BMI value to its category. A nil or NaN value yields
// BMIMissing.
func ClassifyBMI(bmi *float64) BMICategory {
	if bmi == nil || math.IsNaN(*bmi) {
		return BMIMissing
	}
	switch v := *bmi; {
	case v < underweightBelow:
		return BMIUnderweight
	case v < normalBelow:
		return BMINormal
	case v < overweightBelow:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// IsMissing reports whether the category is absent.
func (c BMICategory) IsMissing() bool {
	return c == BMIMissing
}

// IsValidBMICategory checks if a string names one of the four categories.
func IsValidBMICategory(s string) bool {
	for _, c := range BMICategories {
		if string(c) == s {
			return true
		}
	}
	return false
}
