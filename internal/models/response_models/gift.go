package response_models

// Gift is one recommendation as shown to the user. Server-assigned ids are
// numeric on the wire; ids synthesized for chat-extracted gifts are strings.
// Deduplication across merges is by Name, not by ID.
type Gift struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Score       float64 `json:"score"`
}

// CategoryGroup is a view model for one collapsible section of the
// recommendations page. Groups and gifts keep first-seen order.
type CategoryGroup struct {
	Category string
	Gifts    []Gift
	Expanded bool
}
