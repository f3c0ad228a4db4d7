package models

// ChatRequest is the body of POST /api/chat. A missing message is tolerated
// and flows through as the empty string.
type ChatRequest struct {
	Message        string `json:"message"`
	HasAttachments bool   `json:"hasAttachments"`
}

// ChatReply is the single-field chat response. The reply text is never empty.
type ChatReply struct {
	Reply string `json:"reply"`
}
