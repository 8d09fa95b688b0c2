package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/foliochat/foliochat/internal/models"
	"github.com/foliochat/foliochat/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatRepository interface {
	Insert(ctx context.Context, c *models.Chat) error
	GetByChatID(ctx context.Context, chatID string) (*models.Chat, error)
	ListByUser(ctx context.Context, userID string) ([]models.Chat, error)
	SetPageURL(ctx context.Context, chatID, pageURL string) error
}

type chatRepo struct {
	col *mongo.Collection
}

func NewChatRepo(db *mongo.Database) ChatRepository {
	return &chatRepo{col: db.Collection("chats")}
}

func (r *chatRepo) Insert(ctx context.Context, c *models.Chat) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *chatRepo) GetByChatID(ctx context.Context, chatID string) (*models.Chat, error) {
	var c models.Chat
	err := r.col.FindOne(ctx, bson.M{"chat_id": chatID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *chatRepo) ListByUser(ctx context.Context, userID string) ([]models.Chat, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Chat
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *chatRepo) SetPageURL(ctx context.Context, chatID, pageURL string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"chat_id": chatID},
		bson.M{"$set": bson.M{"page_url": pageURL}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
