package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat is one portfolio-generation session: one resume, one evolving page.
// ResumeURL is set at creation and never changes; PageURL is empty until the
// first successful deploy and overwritten on every redeploy.
type Chat struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ChatID string             `bson:"chat_id" json:"id"` // uuid v4
	UserID string             `bson:"user_id" json:"user_id"`

	Title                 string `bson:"title" json:"title"`
	AdditionalDescription string `bson:"additional_description" json:"additional_description"`
	ResumeURL             string `bson:"resume_url" json:"resume_url"`
	PageURL               string `bson:"page_url" json:"page_url"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ChatSummary is the list-view projection: the chat plus its latest message.
// LastMessage/LastUpdated are empty when the chat has no messages yet.
type ChatSummary struct {
	ChatID      string `json:"id"`
	Title       string `json:"title"`
	PageURL     string `json:"page_url"`
	LastMessage string `json:"lastMessage"`
	LastUpdated string `json:"lastUpdated"`
}
