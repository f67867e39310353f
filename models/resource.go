package models

// Resource kinds used by the access guard's rule table.
const (
	KindCivilIssue    = "civil_issue"
	KindLawyerRequest = "lawyer_request"
	KindLawyerProfile = "lawyer_profile"
	KindArticle       = "article"
)
