package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chats := db.Collection("chats")
	_, err := chats.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "chat_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_chat_id").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_user_created"),
		},
	})
	if err != nil {
		return err
	}

	messages := db.Collection("messages")
	_, err = messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "message_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_message_id").
				SetUnique(true),
		},
		// Context assembly reads messages per chat in chronological order.
		{
			Keys:    bson.D{{Key: "chat_id", Value: 1}, {Key: "timestamp", Value: 1}},
			Options: options.Index().SetName("by_chat_ts"),
		},
	})
	return err
}
