package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/foliochat/foliochat/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository interface {
	Insert(ctx context.Context, m *models.Message) error
	// ListByChat returns the full transcript in chronological order.
	ListByChat(ctx context.Context, chatID string) ([]models.Message, error)
	LatestByChat(ctx context.Context, chatID string) (*models.Message, error)
}

type messageRepo struct {
	col *mongo.Collection
}

func NewMessageRepo(db *mongo.Database) MessageRepository {
	return &messageRepo{col: db.Collection("messages")}
}

func (r *messageRepo) Insert(ctx context.Context, m *models.Message) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *messageRepo) ListByChat(ctx context.Context, chatID string) ([]models.Message, error) {
	// _id as tiebreak: ObjectIDs carry a per-process counter, so two appends
	// landing on the same timestamp still sort deterministically.
	cur, err := r.col.Find(ctx,
		bson.M{"chat_id": chatID},
		options.Find().SetSort(bson.D{
			{Key: "timestamp", Value: 1},
			{Key: "_id", Value: 1},
		}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Message
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *messageRepo) LatestByChat(ctx context.Context, chatID string) (*models.Message, error) {
	var m models.Message
	err := r.col.FindOne(ctx,
		bson.M{"chat_id": chatID},
		options.FindOne().SetSort(bson.D{
			{Key: "timestamp", Value: -1},
			{Key: "_id", Value: -1},
		}),
	).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
