// ABOUTME: Respondent model for one row of the BRFSS Gen Z extract.
// ABOUTME: Optional fields are pointers; nil means the survey cell was empty.
package models

// Field names a column of the survey extract.
type Field string

const (
	FieldGender      Field = "GENDER"
	FieldSmoker      Field = "SMOKER"
	FieldDrinker     Field = "DRINKER"
	FieldExercise    Field = "EXERCISE"
	FieldBMI         Field = "BMI"
	FieldMentHlth    Field = "MENTHLTH"
	FieldBMICategory Field = "BMI_CATEGORY"
)

// RequiredFields are the columns every source file must carry.
var RequiredFields = []Field{
	FieldGender, FieldSmoker, FieldDrinker, FieldExercise, FieldBMI, FieldMentHlth,
}

// FilterFields are the categorical columns a user can filter on, in display order.
var FilterFields = []Field{
	FieldGender, FieldSmoker, FieldDrinker, FieldExercise,
}

// Label returns the display label of a field ("GENDER" -> "Gender").
func (f Field) Label() string {
	switch f {
	case FieldGender:
		return "Gender"
	case FieldSmoker:
		return "Smoker"
	case FieldDrinker:
		return "Drinker"
	case FieldExercise:
		return "Exercise"
	case FieldBMI:
		return "BMI"
	case FieldMentHlth:
		return "Poor Mental Health Days"
	case FieldBMICategory:
		return "BMI Category"
	}
	return string(f)
}

// Respondent is one survey participant.
type Respondent struct {
	Gender   *string
	Smoker   *string
	Drinker  *string
	Exercise *string
	BMI      *float64
	MentHlth *float64

	// BMICategory is derived from BMI once, at load time.
	BMICategory BMICategory

	// Raw holds the source cells in column order, excluding the derived
	// BMI_CATEGORY column. Empty string means missing.
	Raw []string
}

// Value returns the categorical value for a field, or nil when absent.
// Numeric fields are not categorical and always return nil.
func (r *Respondent) Value(f Field) *string {
	switch f {
	case FieldGender:
		return r.Gender
	case FieldSmoker:
		return r.Smoker
	case FieldDrinker:
		return r.Drinker
	case FieldExercise:
		return r.Exercise
	case FieldBMICategory:
		if r.BMICategory.IsMissing() {
			return nil
		}
		s := string(r.BMICategory)
		return &s
	}
	return nil
}

// HasMentHlth reports whether the poor-mental-health-days count is present.
func (r *Respondent) HasMentHlth() bool {
	return r.MentHlth != nil
}

// StringOr dereferences s, returning fallback when s is nil.
func StringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
