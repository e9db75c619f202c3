package responses

type Thread struct {
	ID            string   `json:"id"`
	Subject       string   `json:"subject"`
	Participants  []string `json:"participants"`
	Patient       *Patient `json:"patient,omitempty"`
	LastMessageAt string   `json:"last_message_at"`
}

type Message struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	SenderID string `json:"sender_id"`
	Body     string `json:"body"`
	SentAt   string `json:"sent_at"`
}
