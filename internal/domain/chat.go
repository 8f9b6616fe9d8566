package domain

// ChatTurn is one message of a chat-widget conversation as submitted by the
// client. Sender "user" marks an end-user turn; anything else is treated as
// an assistant turn when forwarded upstream.
type ChatTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// FromUser reports whether this turn was authored by the end user.
func (t ChatTurn) FromUser() bool {
	return t.Sender == "user"
}
