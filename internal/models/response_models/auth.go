package response_models

// SessionUser is the user half of the persisted session pair. The token and
// the user are written and removed together, never one without the other.
type SessionUser struct {
	Email              string `json:"email"`
	HasCompletedSurvey bool   `json:"has_completed_survey"`
}

// AuthResult is what the backend returns from /auth/login and /auth/register.
type AuthResult struct {
	Token              string `json:"token"`
	HasCompletedSurvey bool   `json:"has_completed_survey"`
}
