package request_models

// SurveyOption is one selectable answer. Amount carries the upper-bound
// dollar value for numeric questions (the budget question) and is what gets
// recorded instead of Value when IsNumeric is set.
type SurveyOption struct {
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Amount float64 `json:"amount,omitempty"`
}

// SurveyQuestion is static configuration, defined once and never mutated.
type SurveyQuestion struct {
	ID        string         `json:"id"`
	Category  string         `json:"category"`
	Question  string         `json:"question"`
	Options   []SurveyOption `json:"options"`
	IsNumeric bool           `json:"is_numeric"`
}

type AnswerRequest struct {
	Option int `form:"option" binding:"min=0"`
}
