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

type ThreadMongoRepository struct {
	Collection *mongo.Collection
}

func NewThreadMongoRepository(db *mongo.Client, dbName string) contracts.ThreadRepository {
	return &ThreadMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMessageThreads),
	}
}

func (r *ThreadMongoRepository) CreateThread(ctx context.Context, thread *models.MessageThread) (string, error) {
	now := time.Now()
	thread.CreatedAt = now
	thread.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, thread)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ThreadMongoRepository) FindByID(ctx context.Context, threadID string) (*models.MessageThread, error) {
	objectID, err := primitive.ObjectIDFromHex(threadID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var thread models.MessageThread
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&thread)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &thread, nil
}

func (r *ThreadMongoRepository) FindByParticipant(ctx context.Context, userID string, limit int) ([]models.MessageThread, error) {
	filter := bson.M{"participants": userID}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "lastMessageAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var threads []models.MessageThread
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return threads, nil
}

func (r *ThreadMongoRepository) UpdateLastMessageAt(ctx context.Context, threadID string, lastMessageAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(threadID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"lastMessageAt": lastMessageAt,
		"updatedAt":     time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
