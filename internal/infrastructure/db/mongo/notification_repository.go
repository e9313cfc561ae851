package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/websap/websap-api/internal/core/domain"
)

const collectionNotifications = "notificaciones"

type NotificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{col: db.Collection(collectionNotifications)}
}

// Insert persists a notification, minting an id when absent.
func (r *NotificationRepository) Insert(ctx context.Context, n *domain.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if n.ID == "" {
		n.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, n)
	return err
}

// ListUnread returns unread notifications of the given type addressed
// to the user or to everyone (no usuario_id), newest first.
func (r *NotificationRepository) ListUnread(ctx context.Context, notifType string, userID int64) ([]domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, r.unreadFilter(notifType, userID),
		options.Find().SetSort(bson.D{{Key: "creado_en", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notifications := []domain.Notification{}
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks all matching unread notifications as read.
func (r *NotificationRepository) MarkRead(ctx context.Context, notifType string, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx, r.unreadFilter(notifType, userID),
		bson.M{"$set": bson.M{"leido": true}})
	return err
}

// EnsureSchema creates the collection indexes. Runs once at startup;
// the request path assumes the schema exists.
func (r *NotificationRepository) EnsureSchema(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tipo", Value: 1}}},
		{Keys: bson.D{{Key: "usuario_id", Value: 1}}},
		{Keys: bson.D{{Key: "leido", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *NotificationRepository) unreadFilter(notifType string, userID int64) bson.M {
	return bson.M{
		"tipo":  notifType,
		"leido": false,
		"$or": bson.A{
			bson.M{"usuario_id": userID},
			bson.M{"usuario_id": bson.M{"$exists": false}},
			bson.M{"usuario_id": 0},
		},
	}
}
