package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindUpcoming lists appointments starting no earlier than one hour ago,
// soonest first, matching the dashboard's upcoming panel.
func (r *AppointmentMongoRepository) FindUpcoming(ctx context.Context, limit int) ([]models.Appointment, error) {
	lookback := time.Now().Add(-time.Duration(constvars.UpcomingApptLookbackMinutes) * time.Minute)
	filter := bson.M{"startsAt": bson.M{"$gte": lookback}}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "startsAt", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) CountAppointments(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
