package response_models

const (
	ChatMessageUser = "user"
	ChatMessageBot  = "bot"
)

// ChatMessage is one entry of the assistant transcript. The transcript is
// append-only and rendered in insertion order.
type ChatMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ChatReply is the payload returned to the chat widget after a send.
type ChatReply struct {
	Reply      string `json:"reply"`
	AddedGifts int    `json:"added_gifts"`
}
