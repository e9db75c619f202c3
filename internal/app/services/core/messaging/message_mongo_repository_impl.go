package messaging

import (
	"context"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Client, dbName string) contracts.MessageRepository {
	return &MessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMessages),
	}
}

func (r *MessageMongoRepository) CreateMessage(ctx context.Context, message *models.Message) (string, error) {
	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByThread returns messages ascending by sentAt. Equal timestamps fall
// back to the store-assigned id, which keeps the order stable.
func (r *MessageMongoRepository) FindByThread(ctx context.Context, threadID string, limit int) ([]models.Message, error) {
	filter := bson.M{"threadId": threadID}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "sentAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}
