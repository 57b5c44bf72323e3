package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/katsuchip/functions/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *Repository) GetUser(ctx context.Context, uid string) (*model.User, error) {
	var user model.User

	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
