package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katsuchip/functions/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type idDocument struct {
	ID string `bson:"_id"`
}

// FindOrder - ищет заказ в основной коллекции, затем (если включено) в коллекциях пользователей
func (r *Repository) FindOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := r.findOrderIn(ctx, r.db.Collection(ordersCollection), orderID)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, model.ErrOrderNotFound) || !r.legacyLookup {
		return nil, err
	}

	return r.findLegacyOrder(ctx, orderID)
}

func (r *Repository) findOrderIn(ctx context.Context, coll *mongo.Collection, orderID string) (*model.Order, error) {
	var order model.Order

	err := coll.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order in %s: %w", coll.Name(), err)
	}

	order.Collection = coll.Name()

	return &order, nil
}

// findLegacyOrder - линейный обход всех пользователей, O(users)
func (r *Repository) findLegacyOrder(ctx context.Context, orderID string) (*model.Order, error) {
	cursor, err := r.db.Collection(usersCollection).Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user idDocument
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}

		order, err := r.findOrderIn(ctx, r.db.Collection(legacyOrdersCollection(user.ID)), orderID)
		if err == nil {
			r.lg.Infow("order found in legacy collection", "order_id", orderID, "uid", user.ID)
			return order, nil
		}
		if !errors.Is(err, model.ErrOrderNotFound) {
			return nil, err
		}
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return nil, model.ErrOrderNotFound
}

// UpdateOrderPayment - применяет результат уведомления к документу заказа
func (r *Repository) UpdateOrderPayment(ctx context.Context, order *model.Order, update model.PaymentUpdate) error {
	collection := order.Collection
	if collection == "" {
		collection = ordersCollection
	}

	currentDate := bson.M{"updatedAt": true}
	if update.MarkPaid {
		currentDate["paidAt"] = true
	}

	result, err := r.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": order.ID},
		bson.M{
			"$set": bson.M{
				"status":               update.Status,
				"paymentStatus":        update.PaymentStatus,
				"midtransNotification": update.Notification,
			},
			"$currentDate": currentDate,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

// FindCompletedOrdersBefore - id завершённых заказов с completedAt строго раньше cutoff
func (r *Repository) FindCompletedOrdersBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	return r.findOrderIDs(ctx, bson.M{
		"deliveryStatus": model.OrderStatusCompleted,
		"completedAt":    bson.M{"$lt": cutoff},
	})
}

func (r *Repository) FindAllOrderIDs(ctx context.Context) ([]string, error) {
	return r.findOrderIDs(ctx, bson.M{})
}

func (r *Repository) findOrderIDs(ctx context.Context, filter bson.M) ([]string, error) {
	cursor, err := r.db.Collection(ordersCollection).Find(ctx, filter,
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	var docs []idDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}

	return ids, nil
}

// DeleteOrders - удаляет заказы пачками по MaxBatchSize
func (r *Repository) DeleteOrders(ctx context.Context, ids []string) (int64, error) {
	coll := r.db.Collection(ordersCollection)

	deleted, err := deleteInBatches(ctx, ids, MaxBatchSize, func(ctx context.Context, chunk []string) (int64, error) {
		models := make([]mongo.WriteModel, 0, len(chunk))
		for _, id := range chunk {
			models = append(models, mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": id}))
		}

		result, err := coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))

		var n int64
		if result != nil {
			n = result.DeletedCount
		}
		if err != nil {
			return n, fmt.Errorf("failed to commit delete batch: %w", err)
		}

		return n, nil
	})
	if err != nil {
		r.lg.Errorw("batch delete partially failed", "requested", len(ids), "deleted", deleted, "error", err)
		return deleted, err
	}

	return deleted, nil
}
