package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one turn in a chat transcript. Append-only: messages are never
// mutated or deleted, and their order defines the generation context.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MessageID string             `bson:"message_id" json:"id"` // uuid v4
	ChatID    string             `bson:"chat_id" json:"chat_id"`
	Sender    string             `bson:"sender" json:"sender"` // "user" | "bot"
	Text      string             `bson:"text" json:"text"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
