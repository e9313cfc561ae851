package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/websap/websap-api/internal/core/domain"
)

const collectionReservations = "reservas"

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection(collectionReservations)}
}

// Insert persists a new reservation.
func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, res)
	return err
}

// List returns reservations newest first. A non-zero restaurantID
// scopes the listing to that restaurant plus reservations with no
// restaurant assigned, matching how walk-in WhatsApp reservations are
// stored before assignment.
func (r *ReservationRepository) List(ctx context.Context, restaurantID int64) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if restaurantID != 0 {
		filter["$or"] = bson.A{
			bson.M{"restaurante_id": restaurantID},
			bson.M{"restaurante_id": bson.M{"$exists": false}},
			bson.M{"restaurante_id": 0},
		}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "creado_en", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reservations := []domain.Reservation{}
	if err := cur.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// EnsureIndexes creates the indexes the listing queries rely on.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "restaurante_id", Value: 1}}},
		{Keys: bson.D{{Key: "creado_en", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
