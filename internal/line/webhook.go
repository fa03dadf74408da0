package line

// WebhookBody is the inbound event batch posted by the platform.
type WebhookBody struct {
	Events []Event `json:"events"`
}

type Event struct {
	Type       string       `json:"type"`
	ReplyToken string       `json:"replyToken"`
	Source     EventSource  `json:"source"`
	Message    EventMessage `json:"message"`
}

type EventSource struct {
	UserID string `json:"userId"`
}

type EventMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
