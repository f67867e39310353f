package models

import "time"

// Lawyer expertise areas.
var Expertises = []string{
	"general", "civil", "criminal", "commercial", "corporate", "family",
	"land", "labour", "tax", "constitutional", "administrative",
	"environmental", "intellectual_property",
}

// ValidExpertise reports whether the given expertise is a member of the enum.
func ValidExpertise(expertise string) bool {
	for _, e := range Expertises {
		if e == expertise {
			return true
		}
	}
	return false
}

// LawyerProfile holds a lawyer's public profile. The three sections are
// flexible bags of named fields; only allow-listed fields are ever written
// into them. ProfileCompleted is derived and recomputed on every update.
type LawyerProfile struct {
	ID                      string         `bson:"id" json:"id"`
	AccountID               string         `bson:"accountId" json:"accountId"`
	Expertise               string         `bson:"expertise" json:"expertise"`
	IsVerified              bool           `bson:"isVerified" json:"isVerified"`
	IsFree                  bool           `bson:"isFree" json:"isFree"`
	BasicInfo               map[string]any `bson:"basicInfo" json:"basicInfo"`
	Experience              map[string]any `bson:"experience" json:"experience"`
	EducationQualifications map[string]any `bson:"educationQualifications" json:"educationQualifications"`
	ProfileCompleted        bool           `bson:"profileCompleted" json:"profileCompleted"`
	CreatedAt               time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// EnsureSections initializes any nil section map so merge-patches can write
// into them directly.
func (p *LawyerProfile) EnsureSections() {
	if p.BasicInfo == nil {
		p.BasicInfo = map[string]any{}
	}
	if p.Experience == nil {
		p.Experience = map[string]any{}
	}
	if p.EducationQualifications == nil {
		p.EducationQualifications = map[string]any{}
	}
}

func (p *LawyerProfile) Kind() string       { return KindLawyerProfile }
func (p *LawyerProfile) OwnerID() string    { return p.AccountID }
func (p *LawyerProfile) AssigneeID() string { return "" }
