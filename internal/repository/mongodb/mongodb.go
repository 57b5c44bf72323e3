package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	ordersCollection = "orders"
	usersCollection  = "users"

	// legacy-заказы хранятся в коллекции пользователя: users.<uid>.orders
	legacyOrdersCollectionFormat = "users.%s.orders"

	connectTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type Repository struct {
	client       *mongo.Client
	db           *mongo.Database
	lg           *zap.SugaredLogger
	legacyLookup bool
}

func New(uri, dbName string, legacyLookup bool, lg *zap.SugaredLogger) (*Repository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)

	// индекс под выборку завершённых заказов для очистки
	_, err = db.Collection(ordersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "deliveryStatus", Value: 1},
			{Key: "completedAt", Value: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &Repository{
		client:       client,
		db:           db,
		lg:           lg,
		legacyLookup: legacyLookup,
	}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (r *Repository) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return r.client.Disconnect(ctx)
}

func legacyOrdersCollection(uid string) string {
	return fmt.Sprintf(legacyOrdersCollectionFormat, uid)
}
