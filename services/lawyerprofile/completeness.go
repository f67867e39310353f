package lawyerprofile

import "lawroute/models"

// computeProfileCompleted derives the completeness flag. A profile is
// complete when the professional title, bio, and practice areas are set
// and the total years of experience is a non-negative number. This must be
// recomputed on every successful update, never cached.
func computeProfileCompleted(profile *models.LawyerProfile) bool {
	years, ok := asNumber(profile.Experience["totalYearsExperience"])
	if !ok || years < 0 {
		return false
	}
	areas, ok := profile.BasicInfo["practiceAreas"].([]any)
	if !ok || len(areas) == 0 {
		return false
	}
	return truthy(profile.BasicInfo["professionalTitle"]) && truthy(profile.BasicInfo["bio"])
}

// asNumber coerces the numeric types a decoded JSON or BSON document may
// carry.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// truthy mirrors the loose boolean coercion the platform's clients rely
// on: empty strings, zero numbers, false, and nil are all false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	default:
		if n, ok := asNumber(v); ok {
			return n != 0
		}
		return true
	}
}
