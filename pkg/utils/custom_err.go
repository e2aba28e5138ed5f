package utils

import "errors"

var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrQuestionUnanswered = errors.New("current question not answered")
	ErrInvalidOption      = errors.New("invalid option index")
	ErrSurveyIncomplete   = errors.New("survey not on final question")
	ErrEmptyMessage       = errors.New("empty chat message")
	ErrGiftNotFound       = errors.New("gift not found")
	ErrNoGiftSelected     = errors.New("no gift selected")
)

// AuthError carries the backend-provided failure message from a login or
// register attempt so the form can show it verbatim.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
