package models

import "time"

type MessageThread struct {
	ID            string    `bson:"_id,omitempty"`
	Subject       string    `bson:"subject"`
	Participants  []string  `bson:"participants"`
	PatientID     string    `bson:"patientId,omitempty"`
	LastMessageAt time.Time `bson:"lastMessageAt"`
	TimeModel     `bson:",inline"`
}

// HasParticipant reports whether userID is a member of the thread's
// participants set. The creator is always a member.
func (t *MessageThread) HasParticipant(userID string) bool {
	for _, id := range t.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

type Message struct {
	ID        string    `bson:"_id,omitempty"`
	ThreadID  string    `bson:"threadId"`
	SenderID  string    `bson:"senderId"`
	Body      string    `bson:"body"`
	SentAt    time.Time `bson:"sentAt"`
	TimeModel `bson:",inline"`
}
