package lawyerprofile

import "lawroute/models"

// Payload adapters. An inbound update is tried against each adapter in
// order; the first adapter that applies at least one field wins and the
// rest are skipped. Fields outside the allow-lists are silently ignored —
// this is a merge-patch, not a replace.

type payloadAdapter interface {
	Name() string
	// Apply copies recognized fields from the payload into the profile
	// and reports whether anything was applied.
	Apply(profile *models.LawyerProfile, payload map[string]any) bool
}

var adapters = []payloadAdapter{
	structuredAdapter{},
	legacyAdapter{},
}

var allowedBasicFields = []string{
	"profilePhoto", "professionalTitle", "contactInfo", "bio",
	"languages", "practiceAreas",
}

var allowedExperienceFields = []string{"totalYearsExperience", "workHistory"}

var allowedEducationFields = []string{
	"education", "certifications", "barRegistrationNumber", "memberships",
}

// structuredAdapter handles the nested payload shape: basicInfo,
// experience, and educationQualifications objects with allow-listed
// fields, plus isFree at the root or inside basicInfo.
type structuredAdapter struct{}

func (structuredAdapter) Name() string { return "structured" }

func (structuredAdapter) Apply(profile *models.LawyerProfile, payload map[string]any) bool {
	applied := false

	if section, ok := payload["basicInfo"].(map[string]any); ok {
		if copyAllowedFields(section, allowedBasicFields, profile.BasicInfo) {
			applied = true
		}
		if v, ok := section["isFree"]; ok {
			profile.IsFree = truthy(v)
			applied = true
		}
	}
	if section, ok := payload["experience"].(map[string]any); ok {
		if copyAllowedFields(section, allowedExperienceFields, profile.Experience) {
			applied = true
		}
	}
	if section, ok := payload["educationQualifications"].(map[string]any); ok {
		if copyAllowedFields(section, allowedEducationFields, profile.EducationQualifications) {
			applied = true
		}
	}
	if v, ok := payload["isFree"]; ok {
		profile.IsFree = truthy(v)
		applied = true
	}

	return applied
}

// legacyAdapter handles the flat payload shape older clients still send.
// It is only consulted when the structured adapter applied nothing.
type legacyAdapter struct{}

func (legacyAdapter) Name() string { return "legacy" }

var legacyBasicFields = []string{"professionalTitle", "profilePhoto", "languages", "bio"}

func (legacyAdapter) Apply(profile *models.LawyerProfile, payload map[string]any) bool {
	applied := false

	for _, field := range legacyBasicFields {
		if v, ok := payload[field]; ok {
			profile.BasicInfo[field] = v
			applied = true
		}
	}

	if applyLegacyContactInfo(profile, payload) {
		applied = true
	}

	if v, ok := payload["practiceAreas"]; ok {
		profile.BasicInfo["practiceAreas"] = normalizePracticeAreas(v)
		applied = true
	}

	if v, ok := payload["yearsOfExperience"]; ok {
		profile.Experience["totalYearsExperience"] = v
		applied = true
	}

	return applied
}

// applyLegacyContactInfo merges phone, officeAddress, and location into a
// single contactInfo bag. The merge is additive: fields already present
// and not in the payload are kept.
func applyLegacyContactInfo(profile *models.LawyerProfile, payload map[string]any) bool {
	_, hasPhone := payload["phone"]
	_, hasAddress := payload["officeAddress"]
	_, hasLocation := payload["location"]
	if !hasPhone && !hasAddress && !hasLocation {
		return false
	}

	contactInfo, ok := profile.BasicInfo["contactInfo"].(map[string]any)
	if !ok {
		contactInfo = map[string]any{}
	}
	if hasPhone {
		contactInfo["phone"] = payload["phone"]
	}
	if hasAddress {
		contactInfo["officeAddress"] = payload["officeAddress"]
	}
	if hasLocation {
		contactInfo["location"] = payload["location"]
	}
	profile.BasicInfo["contactInfo"] = contactInfo
	return true
}

// normalizePracticeAreas turns plain strings into {name, level} records
// with a default level. Entries that are already records pass through.
// A non-list value collapses to an empty list.
func normalizePracticeAreas(v any) []any {
	areas, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(areas))
	for _, item := range areas {
		if name, ok := item.(string); ok {
			out = append(out, map[string]any{"name": name, "level": "intermediate"})
			continue
		}
		out = append(out, item)
	}
	return out
}

// copyAllowedFields copies present allow-listed fields from source into
// target and reports whether anything was copied.
func copyAllowedFields(source map[string]any, allowed []string, target map[string]any) bool {
	applied := false
	for _, field := range allowed {
		if v, ok := source[field]; ok {
			target[field] = v
			applied = true
		}
	}
	return applied
}
